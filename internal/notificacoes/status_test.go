package notificacoes

import (
	"testing"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecidirTransicaoAprovada(t *testing.T) {
	qtd, err := DecidirTransicao(models.NotificacaoPendente, models.NotificacaoAprovada, 10, nil)

	require.NoError(t, err)
	assert.Equal(t, 10.0, qtd)
}

func TestDecidirTransicaoRejeitada(t *testing.T) {
	qtd, err := DecidirTransicao(models.NotificacaoPendente, models.NotificacaoRejeitada, 10, nil)

	require.NoError(t, err)
	assert.Zero(t, qtd)
}

func TestDecidirTransicaoParcial(t *testing.T) {
	aprovada := 4.0
	qtd, err := DecidirTransicao(models.NotificacaoPendente, models.NotificacaoParcial, 10, &aprovada)

	require.NoError(t, err)
	assert.Equal(t, 4.0, qtd)
}

func TestDecidirTransicaoParcialForaDaFaixa(t *testing.T) {
	casos := []*float64{nil, ptr(0.0), ptr(-1.0), ptr(10.0), ptr(15.0)}
	for _, aprovada := range casos {
		_, err := DecidirTransicao(models.NotificacaoPendente, models.NotificacaoParcial, 10, aprovada)
		assert.ErrorIs(t, err, ErrQuantidadeParcial)
	}
}

func TestDecidirTransicaoJaDecidida(t *testing.T) {
	for _, atual := range []models.StatusNotificacao{
		models.NotificacaoAprovada,
		models.NotificacaoParcial,
		models.NotificacaoRejeitada,
	} {
		_, err := DecidirTransicao(atual, models.NotificacaoAprovada, 10, nil)
		assert.ErrorIs(t, err, ErrJaDecidida)
	}
}

func TestDecidirTransicaoStatusInvalido(t *testing.T) {
	_, err := DecidirTransicao(models.NotificacaoPendente, models.NotificacaoPendente, 10, nil)
	assert.ErrorIs(t, err, ErrStatusInvalido)

	_, err = DecidirTransicao(models.NotificacaoPendente, models.StatusNotificacao("qualquer"), 10, nil)
	assert.ErrorIs(t, err, ErrStatusInvalido)
}

func ptr(v float64) *float64 { return &v }

func TestMovimentacaoDaDecisao(t *testing.T) {
	n := models.Notificacao{
		ID:                   12,
		SolicitanteNome:      "Maria",
		ProdutoNome:          "Caneta",
		QuantidadeSolicitada: 10,
	}

	mov := movimentacaoDaDecisao(n, 3, 7, 4)

	assert.Equal(t, uint(3), mov.ProdutoID)
	assert.Equal(t, uint(7), mov.UsuarioID)
	assert.Equal(t, models.MovimentacaoSaida, mov.Tipo)
	assert.Equal(t, 4.0, mov.Quantidade)
	assert.Equal(t, "Solicitação #12 de Maria", mov.Observacao)
	assert.False(t, mov.Data.IsZero())
}
