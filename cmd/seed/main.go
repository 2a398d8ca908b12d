// Popula o banco com o catálogo de quizzes (CAPITALS, FLAGS, BORDERS) e
// três usuários de teste. Idempotente apenas num banco vazio: rode após
// apagar o arquivo sqlite.
package main

import (
	"context"
	"os"

	"github.com/vrstep/geomaster/internal/adapters/persistence"
	"github.com/vrstep/geomaster/internal/adapters/security"
	"github.com/vrstep/geomaster/internal/domain/quiz"
	"github.com/vrstep/geomaster/internal/domain/user"
	"github.com/vrstep/geomaster/internal/infra/config"
	infraDB "github.com/vrstep/geomaster/internal/infra/db"
	"github.com/vrstep/geomaster/internal/infra/logger"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := infraDB.NewSQLiteConnection(cfg.Database.DSN)
	if err != nil {
		os.Exit(1)
	}
	defer db.Close()

	if err := infraDB.RunMigrations(db, "migrations"); err != nil {
		logger.Error("Falha na migração", "erro", err)
		os.Exit(1)
	}

	ctx := context.Background()
	quizRepo := persistence.NewSQLiteQuizRepository(db)
	userRepo := persistence.NewSQLiteUserRepository(db)
	hasher := security.NewBcryptHasher()

	for _, q := range catalog() {
		if err := quizRepo.Save(ctx, q); err != nil {
			logger.Error("Falha ao gravar quiz", "tipo", q.Type, "erro", err)
			os.Exit(1)
		}
		logger.Info("Quiz gravado", "tipo", q.Type, "perguntas", len(q.Questions))
	}

	testUsers := []struct{ username, email string }{
		{"GeoMaster", "geomaster@test.com"},
		{"QuizWhiz", "quizwhiz@test.com"},
		{"MapExplorer", "mapexplorer@test.com"},
	}
	for _, t := range testUsers {
		u, err := user.NewUser(t.username, t.email, "password123")
		if err != nil {
			logger.Error("Falha ao criar usuário de teste", "username", t.username, "erro", err)
			os.Exit(1)
		}
		hash, err := hasher.HashPassword("password123")
		if err != nil {
			os.Exit(1)
		}
		u.SetPassword(hash)
		if err := userRepo.Create(ctx, u); err != nil {
			logger.Error("Falha ao gravar usuário de teste", "username", t.username, "erro", err)
			os.Exit(1)
		}
		logger.Info("Usuário de teste criado", "username", t.username)
	}

	logger.Info("Seed concluído", "quizzes", 3, "usuarios", len(testUsers))
}

func catalog() []*quiz.Quiz {
	capitals := mustQuiz("World Capitals", quiz.TypeCapitals, []quiz.Question{
		{
			QuestionText:  "What is the capital of France?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e6/Paris_Night.jpg/640px-Paris_Night.jpg",
			Options:       []string{"Berlin", "Madrid", "Paris", "Rome"},
			CorrectAnswer: "Paris",
		},
		{
			QuestionText:  "What is the capital of Japan?",
			Options:       []string{"Seoul", "Beijing", "Tokyo", "Bangkok"},
			CorrectAnswer: "Tokyo",
		},
		{
			QuestionText:  "What is the capital of Australia?",
			Options:       []string{"Sydney", "Melbourne", "Canberra", "Brisbane"},
			CorrectAnswer: "Canberra",
		},
		{
			QuestionText:  "What is the capital of Brazil?",
			Options:       []string{"Rio de Janeiro", "São Paulo", "Brasília", "Salvador"},
			CorrectAnswer: "Brasília",
		},
		{
			QuestionText:  "What is the capital of Canada?",
			Options:       []string{"Toronto", "Vancouver", "Montreal", "Ottawa"},
			CorrectAnswer: "Ottawa",
		},
		{
			QuestionText:  "What is the capital of Egypt?",
			Options:       []string{"Cairo", "Alexandria", "Giza", "Luxor"},
			CorrectAnswer: "Cairo",
		},
		{
			QuestionText:  "What is the capital of Germany?",
			Options:       []string{"Munich", "Hamburg", "Berlin", "Frankfurt"},
			CorrectAnswer: "Berlin",
		},
		{
			QuestionText:  "What is the capital of India?",
			Options:       []string{"Mumbai", "New Delhi", "Bangalore", "Kolkata"},
			CorrectAnswer: "New Delhi",
		},
		{
			QuestionText:  "What is the capital of South Korea?",
			Options:       []string{"Busan", "Seoul", "Incheon", "Daegu"},
			CorrectAnswer: "Seoul",
		},
		{
			QuestionText:  "What is the capital of Turkey?",
			Options:       []string{"Istanbul", "Ankara", "Izmir", "Bursa"},
			CorrectAnswer: "Ankara",
		},
	})

	flags := mustQuiz("World Flags", quiz.TypeFlags, []quiz.Question{
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/en/thumb/a/a4/Flag_of_the_United_States.svg/640px-Flag_of_the_United_States.svg.png",
			Options:       []string{"USA", "Liberia", "Malaysia", "Chile"},
			CorrectAnswer: "USA",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/en/thumb/c/c3/Flag_of_France.svg/640px-Flag_of_France.svg.png",
			Options:       []string{"Netherlands", "France", "Russia", "Luxembourg"},
			CorrectAnswer: "France",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/en/thumb/9/9e/Flag_of_Japan.svg/640px-Flag_of_Japan.svg.png",
			Options:       []string{"South Korea", "China", "Japan", "Bangladesh"},
			CorrectAnswer: "Japan",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/b/ba/Flag_of_Germany.svg/640px-Flag_of_Germany.svg.png",
			Options:       []string{"Belgium", "Germany", "Austria", "Netherlands"},
			CorrectAnswer: "Germany",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fa/Flag_of_the_People%27s_Republic_of_China.svg/640px-Flag_of_the_People%27s_Republic_of_China.svg.png",
			Options:       []string{"Vietnam", "China", "North Korea", "Myanmar"},
			CorrectAnswer: "China",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/0/05/Flag_of_Brazil.svg/640px-Flag_of_Brazil.svg.png",
			Options:       []string{"Portugal", "Brazil", "Cape Verde", "Mozambique"},
			CorrectAnswer: "Brazil",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d9/Flag_of_Canada_%28Pantone%29.svg/640px-Flag_of_Canada_%28Pantone%29.svg.png",
			Options:       []string{"Canada", "Peru", "Austria", "Lebanon"},
			CorrectAnswer: "Canada",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/4/41/Flag_of_India.svg/640px-Flag_of_India.svg.png",
			Options:       []string{"Ireland", "Italy", "India", "Mexico"},
			CorrectAnswer: "India",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b9/Flag_of_Australia.svg/640px-Flag_of_Australia.svg.png",
			Options:       []string{"New Zealand", "Australia", "Fiji", "United Kingdom"},
			CorrectAnswer: "Australia",
		},
		{
			QuestionText:  "Which country does this flag belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f3/Flag_of_Russia.svg/640px-Flag_of_Russia.svg.png",
			Options:       []string{"Slovenia", "Slovakia", "Russia", "Serbia"},
			CorrectAnswer: "Russia",
		},
	})

	borders := mustQuiz("Country Borders", quiz.TypeBorders, []quiz.Question{
		{
			QuestionText:  "Which country does this outline belong to?",
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/thumb/3/3e/Italy_location_map.svg/640px-Italy_location_map.svg.png",
			Options:       []string{"Greece", "Spain", "Italy", "Croatia"},
			CorrectAnswer: "Italy",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Thailand", "Vietnam", "Myanmar", "Laos"},
			CorrectAnswer: "Thailand",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Argentina", "Chile", "Peru", "Colombia"},
			CorrectAnswer: "Chile",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Sweden", "Finland", "Norway", "Denmark"},
			CorrectAnswer: "Norway",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Egypt", "Sudan", "Libya", "Algeria"},
			CorrectAnswer: "Egypt",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"South Africa", "Nigeria", "Kenya", "Ethiopia"},
			CorrectAnswer: "South Africa",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Turkey", "Iran", "Iraq", "Saudi Arabia"},
			CorrectAnswer: "Turkey",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Indonesia", "Philippines", "Malaysia", "Papua New Guinea"},
			CorrectAnswer: "Indonesia",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Poland", "Ukraine", "Romania", "Hungary"},
			CorrectAnswer: "Poland",
		},
		{
			QuestionText:  "Which country does this outline belong to?",
			Options:       []string{"Mexico", "Colombia", "Venezuela", "Peru"},
			CorrectAnswer: "Mexico",
		},
	})

	return []*quiz.Quiz{capitals, flags, borders}
}

func mustQuiz(title, quizType string, questions []quiz.Question) *quiz.Quiz {
	q, err := quiz.NewQuiz(title, quizType, questions)
	if err != nil {
		logger.Error("Catálogo inválido", "titulo", title, "erro", err)
		os.Exit(1)
	}
	return q
}
