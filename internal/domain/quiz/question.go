package quiz

import "errors"

var (
	ErrEnunciadoObrigatorio  = errors.New("o enunciado da pergunta é obrigatório")
	ErrAlternativasInvalidas = errors.New("a pergunta deve ter exatamente 4 alternativas preenchidas")
	ErrRespostaForaDasOpcoes = errors.New("a resposta correta deve ser uma das alternativas")
)

// Question representa uma pergunta de múltipla escolha do catálogo.
// A resposta correta é armazenada como texto e comparada com o texto da
// alternativa escolhida, preservando a correção mesmo se as alternativas
// forem reordenadas.
type Question struct {
	QuestionText  string   `json:"questionText"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Validate verifica se a pergunta é válida.
func (q Question) Validate() error {
	if q.QuestionText == "" {
		return ErrEnunciadoObrigatorio
	}
	if len(q.Options) != 4 {
		return ErrAlternativasInvalidas
	}
	for _, opt := range q.Options {
		if opt == "" {
			return ErrAlternativasInvalidas
		}
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return ErrRespostaForaDasOpcoes
}
