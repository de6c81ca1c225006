package notificacoes

import (
	"errors"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
)

var (
	ErrJaDecidida        = errors.New("solicitação já foi decidida")
	ErrStatusInvalido    = errors.New("status de destino inválido")
	ErrQuantidadeParcial = errors.New("quantidade parcial deve ficar entre zero e a solicitada")
)

// DecidirTransicao valida a mudança de status de uma solicitação e devolve
// a quantidade aprovada efetiva. Só se decide a partir de "pendente":
// aprovada libera tudo, parcial exige quantidade entre 0 e a solicitada,
// rejeitada não libera nada.
func DecidirTransicao(atual, novo models.StatusNotificacao, solicitada float64, aprovada *float64) (float64, error) {
	if atual != models.NotificacaoPendente {
		return 0, ErrJaDecidida
	}

	switch novo {
	case models.NotificacaoAprovada:
		return solicitada, nil
	case models.NotificacaoParcial:
		if aprovada == nil || *aprovada <= 0 || *aprovada >= solicitada {
			return 0, ErrQuantidadeParcial
		}
		return *aprovada, nil
	case models.NotificacaoRejeitada:
		return 0, nil
	default:
		return 0, ErrStatusInvalido
	}
}
