package notificacoes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/estoque"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/listagem"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/validacao"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificacaoResponse struct {
	ID                   uint     `json:"id"`
	SolicitanteNome      string   `json:"solicitante_nome"`
	SolicitanteCargo     string   `json:"solicitante_cargo"`
	ProdutoNome          string   `json:"produto_nome"`
	QuantidadeSolicitada float64  `json:"quantidade_solicitada"`
	Status               string   `json:"status"`
	QuantidadeAprovada   *float64 `json:"quantidade_aprovada"`
	Observacao           string   `json:"observacao"`
	CriadaEm             string   `json:"criada_em"`
}

type CreateNotificacaoRequest struct {
	SolicitanteNome      string  `json:"solicitante_nome" validate:"required,min=2,max=100"`
	SolicitanteCargo     string  `json:"solicitante_cargo" validate:"max=50"`
	ProdutoNome          string  `json:"produto_nome" validate:"required,min=2,max=100"`
	QuantidadeSolicitada float64 `json:"quantidade_solicitada" validate:"required,gt=0"`
	Observacao           string  `json:"observacao" validate:"max=255"`
}

type DecidirNotificacaoRequest struct {
	Status             string   `json:"status" validate:"required,oneof=aprovada parcial rejeitada"`
	QuantidadeAprovada *float64 `json:"quantidade_aprovada"`
	Observacao         string   `json:"observacao" validate:"max=255"`
}

func notificacaoParaResponse(n models.Notificacao) NotificacaoResponse {
	return NotificacaoResponse{
		ID:                   n.ID,
		SolicitanteNome:      n.SolicitanteNome,
		SolicitanteCargo:     n.SolicitanteCargo,
		ProdutoNome:          n.ProdutoNome,
		QuantidadeSolicitada: n.QuantidadeSolicitada,
		Status:               string(n.Status),
		QuantidadeAprovada:   n.QuantidadeAprovada,
		Observacao:           n.Observacao,
		CriadaEm:             n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func comparadorNotificacao(ordem string, dir listagem.Direcao) listagem.Comparador[NotificacaoResponse] {
	switch ordem {
	case "quantidade":
		return listagem.PorNumero(func(n NotificacaoResponse) float64 { return n.QuantidadeSolicitada }, dir)
	case "solicitante":
		return listagem.PorTexto(func(n NotificacaoResponse) string { return n.SolicitanteNome }, dir)
	default:
		return listagem.PorDataOuNumero(func(n NotificacaoResponse) string { return n.CriadaEm }, dir)
	}
}

// GET /api/notificacoes?busca=&status=pendente&ordem=criada_em&direcao=desc&pagina=1
func ListNotificacoesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var notificacoes []models.Notificacao
		if err := database.DB.Order("created_at desc").Find(&notificacoes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar notificações")
		}

		itens := make([]NotificacaoResponse, 0, len(notificacoes))
		for _, n := range notificacoes {
			itens = append(itens, notificacaoParaResponse(n))
		}

		dir := listagem.Descendente
		if c.Query("direcao") == "asc" {
			dir = listagem.Ascendente
		}

		resultado := listagem.Processar(itens, listagem.Parametros[NotificacaoResponse]{
			Termo: c.Query("busca"),
			Acessores: []listagem.Acessor[NotificacaoResponse]{
				func(n NotificacaoResponse) string { return n.SolicitanteNome },
				func(n NotificacaoResponse) string { return n.ProdutoNome },
				func(n NotificacaoResponse) string { return n.Observacao },
			},
			Faceta:              func(n NotificacaoResponse) string { return n.Status },
			FacetasSelecionadas: listagem.SepararFacetas(c.Query("status")),
			ValorNumerico:       func(n NotificacaoResponse) float64 { return n.QuantidadeSolicitada },
			FaixaMin:            listagem.QueryFloat(c, "quantidade_min"),
			FaixaMax:            listagem.QueryFloat(c, "quantidade_max"),
			Comparador:          comparadorNotificacao(c.Query("ordem"), dir),
			Pagina:              c.QueryInt("pagina", 1),
		})

		return c.JSON(listagem.RespostaLista(resultado, c.Query("busca")))
	}
}

// POST /api/notificacoes
func CreateNotificacaoHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateNotificacaoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.SolicitanteNome = strings.TrimSpace(body.SolicitanteNome)
		body.ProdutoNome = strings.TrimSpace(body.ProdutoNome)
		body.Observacao = strings.TrimSpace(body.Observacao)

		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		n := models.Notificacao{
			SolicitanteNome:      body.SolicitanteNome,
			SolicitanteCargo:     strings.TrimSpace(body.SolicitanteCargo),
			ProdutoNome:          body.ProdutoNome,
			QuantidadeSolicitada: body.QuantidadeSolicitada,
			Status:               models.NotificacaoPendente,
			Observacao:           body.Observacao,
		}

		if err := database.DB.Create(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar notificação")
		}

		if hub != nil {
			hub.Broadcast(Evento{
				Tipo:          "criada",
				NotificacaoID: n.ID,
				Status:        string(n.Status),
				ProdutoNome:   n.ProdutoNome,
				Quantidade:    n.QuantidadeSolicitada,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(notificacaoParaResponse(n))
	}
}

// movimentacaoDaDecisao monta a saída de estoque gerada por uma aprovação
// total ou parcial.
func movimentacaoDaDecisao(n models.Notificacao, produtoID, autorID uint, quantidade float64) models.Movimentacao {
	return models.Movimentacao{
		ProdutoID:  produtoID,
		UsuarioID:  autorID,
		Tipo:       models.MovimentacaoSaida,
		Quantidade: quantidade,
		Data:       time.Now(),
		Observacao: fmt.Sprintf("Solicitação #%d de %s", n.ID, n.SolicitanteNome),
	}
}

// PUT /api/admin/notificacoes/:id/status (somente admin)
// Aprovação total ou parcial gera a saída correspondente no estoque
// quando o produto pedido existe no catálogo.
func DecidirNotificacaoHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var n models.Notificacao
		if err := database.DB.First(&n, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Notificação não encontrada")
		}

		var body DecidirNotificacaoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		novoStatus := models.StatusNotificacao(body.Status)
		quantidade, err := DecidirTransicao(n.Status, novoStatus, n.QuantidadeSolicitada, body.QuantidadeAprovada)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// A saída gerada pela aprovação leva o aprovador como responsável;
		// sem ele identificado não há como registrar a decisão.
		autorID, autorNome, err := audit.Autor(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida")
		}

		antes := n

		n.Status = novoStatus
		if novoStatus == models.NotificacaoRejeitada {
			n.QuantidadeAprovada = nil
		} else {
			n.QuantidadeAprovada = &quantidade
		}
		if obs := strings.TrimSpace(body.Observacao); obs != "" {
			n.Observacao = obs
		}

		// Decisão e saída de estoque na mesma transação: a solicitação não
		// pode ficar marcada como decidida sem a movimentação correspondente.
		var mov *models.Movimentacao
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&n).Error; err != nil {
				return err
			}

			// Saída para o que foi liberado, se o produto existir no
			// catálogo (o pedido é texto livre).
			if quantidade > 0 {
				var produto models.Produto
				err := tx.Where("LOWER(nome) = LOWER(?)", n.ProdutoNome).First(&produto).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				if err != nil {
					return err
				}

				m := movimentacaoDaDecisao(n, produto.ID, autorID, quantidade)
				if _, err := estoque.RegistrarMovimentacao(tx, &m); err != nil {
					return err
				}
				mov = &m
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar a decisão da solicitação")
		}

		if mov != nil {
			estoque.InvalidarCacheProdutos(c.Context())
		}

		_ = audit.WriteLog(audit.LogOptions{
			UsuarioID:   autorID,
			UsuarioNome: autorNome,
			Entidade:    "notificacao",
			EntidadeID:  n.ID,
			Acao:        models.AuditAtualizar,
			Descricao:   fmt.Sprintf("Solicitação #%d: %s", n.ID, n.Status),
			Antes:       antes,
			Depois:      n,
		})

		if hub != nil {
			hub.Broadcast(Evento{
				Tipo:          "decidida",
				NotificacaoID: n.ID,
				Status:        string(n.Status),
				ProdutoNome:   n.ProdutoNome,
				Quantidade:    quantidade,
			})
		}

		return c.JSON(notificacaoParaResponse(n))
	}
}

// DELETE /api/admin/notificacoes/:id
func DeleteNotificacaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var n models.Notificacao
		if err := database.DB.First(&n, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Notificação não encontrada")
		}

		if err := database.DB.Delete(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir notificação")
		}

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "notificacao",
				EntidadeID:  n.ID,
				Acao:        models.AuditExcluir,
				Descricao:   fmt.Sprintf("Solicitação #%d excluída", n.ID),
				Antes:       n,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
