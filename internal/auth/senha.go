package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// NormalizarEmail prepara o email digitado para a busca no banco.
func NormalizarEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// NormalizarSenha remove espaços acidentais em volta da senha digitada.
func NormalizarSenha(senha string) string {
	return strings.TrimSpace(senha)
}

// SenhaEHash diz se o valor armazenado já é um hash bcrypt.
// Cadastros antigos guardavam a senha em texto puro.
func SenhaEHash(armazenada string) bool {
	return strings.HasPrefix(armazenada, "$2")
}

// VerificarSenha compara a senha digitada (já normalizada) com o valor
// armazenado, aceitando tanto hash bcrypt quanto o formato legado.
func VerificarSenha(armazenada, digitada string) bool {
	if SenhaEHash(armazenada) {
		return bcrypt.CompareHashAndPassword([]byte(armazenada), []byte(digitada)) == nil
	}
	return armazenada == digitada
}

// GerarHash produz o hash bcrypt usado nos cadastros novos e na
// migração das senhas legadas no primeiro login.
func GerarHash(senha string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
