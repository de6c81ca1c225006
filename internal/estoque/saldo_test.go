package estoque

import (
	"testing"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAplicarMovimentacaoEntrada(t *testing.T) {
	r := AplicarMovimentacao(10, 4, 6, models.MovimentacaoEntrada, 3)

	assert.Equal(t, 13.0, r.Entradas)
	assert.Equal(t, 4.0, r.Saidas)
	assert.Equal(t, 9.0, r.Saldo)
	assert.False(t, r.Ajustado)
}

func TestAplicarMovimentacaoSaida(t *testing.T) {
	r := AplicarMovimentacao(10, 2, 8, models.MovimentacaoSaida, 5)

	assert.Equal(t, 10.0, r.Entradas)
	assert.Equal(t, 7.0, r.Saidas)
	assert.Equal(t, 3.0, r.Saldo)
	assert.False(t, r.Ajustado)
}

func TestAplicarMovimentacaoSaidaMaiorQueSaldo(t *testing.T) {
	// Saída de 8 sobre saldo 5: saldo trava em zero mas a saída
	// acumulada registra os 8 pedidos
	r := AplicarMovimentacao(5, 0, 5, models.MovimentacaoSaida, 8)

	assert.Equal(t, 8.0, r.Saidas)
	assert.Equal(t, 0.0, r.Saldo)
	assert.True(t, r.Ajustado)
}

func TestAplicarMovimentacaoSaidaExata(t *testing.T) {
	r := AplicarMovimentacao(5, 0, 5, models.MovimentacaoSaida, 5)

	assert.Equal(t, 0.0, r.Saldo)
	assert.False(t, r.Ajustado)
}
