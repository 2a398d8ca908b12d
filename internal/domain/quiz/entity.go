package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tipos de quiz disponíveis no catálogo.
const (
	TypeCapitals = "CAPITALS"
	TypeFlags    = "FLAGS"
	TypeBorders  = "BORDERS"
)

var (
	ErrTituloObrigatorio = errors.New("o título é obrigatório")
	ErrTipoInvalido      = errors.New("o tipo deve ser CAPITALS, FLAGS ou BORDERS")
	ErrSemPerguntas      = errors.New("o quiz deve ter pelo menos uma pergunta")
)

// Quiz representa um conjunto de perguntas do catálogo, chaveado por tipo.
// O catálogo é somente leitura do ponto de vista das salas: cada sala copia
// as perguntas no momento da criação.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type"` // CAPITALS | FLAGS | BORDERS
	Questions []Question `json:"questions,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewQuiz cria um quiz do catálogo com validações.
func NewQuiz(title, quizType string, questions []Question) (*Quiz, error) {
	if title == "" {
		return nil, ErrTituloObrigatorio
	}
	if !isValidType(quizType) {
		return nil, ErrTipoInvalido
	}
	if len(questions) == 0 {
		return nil, ErrSemPerguntas
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}

	return &Quiz{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      quizType,
		Questions: questions,
		CreatedAt: time.Now(),
	}, nil
}

func isValidType(t string) bool {
	return t == TypeCapitals || t == TypeFlags || t == TypeBorders
}
