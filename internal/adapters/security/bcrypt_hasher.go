package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implementa PasswordHasher com bcrypt. As senhas dos
// jogadores nunca são persistidas em claro; apenas o hash vai para a
// tabela de usuários.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// HashPassword gera o hash da senha com o custo padrão do bcrypt.
func (h *BcryptHasher) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePassword verifica a senha informada no login contra o hash
// armazenado. Retorna nil quando conferem.
func (h *BcryptHasher) ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
