package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contém as configurações da aplicação.
type Config struct {
	Port      string
	Database  DatabaseConfig
	JWTSecret string

	// RoundDelayMs é a pausa (em milissegundos) entre todos responderem
	// e a próxima pergunta aparecer.
	RoundDelayMs int
}

type DatabaseConfig struct {
	Driver string
	DSN    string // Data Source Name (caminho do arquivo SQLite)
}

// Load carrega as configurações das variáveis de ambiente ou usa padrões.
func Load() *Config {
	// Carrega .env se existir (ambiente local); em produção as variáveis
	// já vêm do orquestrador.
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite3"), // ncruces usa "sqlite3"
			DSN:    getEnv("DB_DSN", "./geomaster.db"),
		},
		JWTSecret:    getEnv("JWT_SECRET", "segredo_padrao_para_desenvolvimento"),
		RoundDelayMs: getEnvInt("ROUND_DELAY_MS", 1500),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
