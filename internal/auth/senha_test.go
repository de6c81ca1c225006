package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarEmail(t *testing.T) {
	assert.Equal(t, "ana@escola.br", NormalizarEmail("  Ana@Escola.BR "))
}

func TestNormalizarSenha(t *testing.T) {
	assert.Equal(t, "Secr3t!", NormalizarSenha(" Secr3t! "))
}

func TestSenhaEHash(t *testing.T) {
	assert.True(t, SenhaEHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, SenhaEHash("$2b$12$abcdefghijklmnopqrstuv"))
	assert.False(t, SenhaEHash("senha123"))
	assert.False(t, SenhaEHash(""))
}

func TestVerificarSenhaLegada(t *testing.T) {
	// Cadastro antigo com senha em texto puro
	assert.True(t, VerificarSenha("Secr3t!", NormalizarSenha(" Secr3t! ")))
	assert.False(t, VerificarSenha("Secr3t!", "secr3t!"))
	assert.False(t, VerificarSenha("Secr3t!", ""))
}

func TestVerificarSenhaComHash(t *testing.T) {
	h, err := GerarHash("Secr3t!")
	require.NoError(t, err)
	require.True(t, SenhaEHash(h))

	assert.True(t, VerificarSenha(h, "Secr3t!"))
	assert.False(t, VerificarSenha(h, "outra"))
}
