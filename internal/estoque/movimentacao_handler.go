package estoque

import (
	"fmt"
	"strings"
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/auth"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/listagem"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/validacao"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateMovimentacaoRequest struct {
	ProdutoID  uint    `json:"produto_id" validate:"required"`
	TurmaID    *uint   `json:"turma_id"`
	Tipo       string  `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade float64 `json:"quantidade" validate:"required,gt=0"`
	Data       string  `json:"data"` // "2026-08-30"; vazio usa hoje
	Observacao string  `json:"observacao" validate:"max=255"`
}

type MovimentacaoResponse struct {
	ID            uint    `json:"id"`
	ProdutoID     uint    `json:"produto_id"`
	ProdutoNome   string  `json:"produto_nome"`
	UsuarioID     uint    `json:"usuario_id"`
	UsuarioNome   string  `json:"usuario_nome"`
	TurmaID       *uint   `json:"turma_id"`
	TurmaNome     string  `json:"turma_nome"`
	Tipo          string  `json:"tipo"`
	Quantidade    float64 `json:"quantidade"`
	Data          string  `json:"data"`
	Observacao    string  `json:"observacao"`
	SaldoProduto  float64 `json:"saldo_produto"`
	SaldoAjustado bool    `json:"saldo_ajustado"`
}

func movimentacaoParaResponse(m models.Movimentacao, saldo float64, ajustado bool) MovimentacaoResponse {
	turmaNome := ""
	if m.Turma != nil {
		turmaNome = m.Turma.Nome
	}
	return MovimentacaoResponse{
		ID:            m.ID,
		ProdutoID:     m.ProdutoID,
		ProdutoNome:   m.Produto.Nome,
		UsuarioID:     m.UsuarioID,
		UsuarioNome:   m.Usuario.Nome,
		TurmaID:       m.TurmaID,
		TurmaNome:     turmaNome,
		Tipo:          string(m.Tipo),
		Quantidade:    m.Quantidade,
		Data:          m.Data.Format("2006-01-02"),
		Observacao:    m.Observacao,
		SaldoProduto:  saldo,
		SaldoAjustado: ajustado,
	}
}

// RegistrarMovimentacao insere a movimentação e atualiza o produto na
// mesma transação. Saída acima do saldo não é rejeitada: o saldo trava
// em zero e o chamador recebe o aviso via ResultadoSaldo.Ajustado.
func RegistrarMovimentacao(db *gorm.DB, mov *models.Movimentacao) (ResultadoSaldo, error) {
	var resultado ResultadoSaldo

	err := db.Transaction(func(tx *gorm.DB) error {
		var produto models.Produto
		if err := tx.First(&produto, mov.ProdutoID).Error; err != nil {
			return err
		}

		resultado = AplicarMovimentacao(produto.Entradas, produto.Saidas, produto.Saldo, mov.Tipo, mov.Quantidade)

		produto.Entradas = resultado.Entradas
		produto.Saidas = resultado.Saidas
		produto.Saldo = resultado.Saldo
		if err := tx.Save(&produto).Error; err != nil {
			return err
		}

		return tx.Create(mov).Error
	})

	return resultado, err
}

// POST /api/movimentacoes
func CreateMovimentacaoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMovimentacaoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Observacao = strings.TrimSpace(body.Observacao)

		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		usuarioID, ok := c.Locals(auth.CtxUsuarioIDKey).(uint)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Sessão inválida")
		}

		var produto models.Produto
		if err := database.DB.First(&produto, body.ProdutoID).Error; err != nil {
			return validacao.Responder(c, map[string]string{"produto_id": "Produto não encontrado"})
		}

		if body.TurmaID != nil {
			var turma models.Turma
			if err := database.DB.First(&turma, *body.TurmaID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"turma_id": "Turma não encontrada"})
			}
		}

		data := time.Now()
		if body.Data != "" {
			d, err := time.Parse("2006-01-02", body.Data)
			if err != nil {
				return validacao.Responder(c, map[string]string{"data": "Data deve estar no formato AAAA-MM-DD"})
			}
			data = d
		}

		mov := models.Movimentacao{
			ProdutoID:  body.ProdutoID,
			UsuarioID:  usuarioID,
			TurmaID:    body.TurmaID,
			Tipo:       models.TipoMovimentacao(body.Tipo),
			Quantidade: body.Quantidade,
			Data:       data,
			Observacao: body.Observacao,
		}

		resultado, err := RegistrarMovimentacao(database.DB, &mov)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar movimentação")
		}

		cache.Invalidar(c.Context(), chaveProdutos)

		if autorID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   autorID,
				UsuarioNome: nome,
				Entidade:    "movimentacao",
				EntidadeID:  mov.ID,
				Acao:        models.AuditCriar,
				Descricao:   fmt.Sprintf("%s de %.2f: %s", mov.Tipo, mov.Quantidade, produto.Nome),
				Depois:      mov,
			})
		}

		database.DB.Preload("Produto").Preload("Usuario").Preload("Turma").First(&mov, mov.ID)
		return c.Status(fiber.StatusCreated).JSON(movimentacaoParaResponse(mov, resultado.Saldo, resultado.Ajustado))
	}
}

func comparadorMovimentacao(ordem string, dir listagem.Direcao) listagem.Comparador[MovimentacaoResponse] {
	switch ordem {
	case "quantidade":
		return listagem.PorNumero(func(m MovimentacaoResponse) float64 { return m.Quantidade }, dir)
	case "produto":
		return listagem.PorTexto(func(m MovimentacaoResponse) string { return m.ProdutoNome }, dir)
	default:
		return listagem.PorDataOuNumero(func(m MovimentacaoResponse) string { return m.Data }, dir)
	}
}

// GET /api/movimentacoes?busca=&tipo=entrada&quantidade_min=&quantidade_max=&ordem=data&direcao=desc&pagina=1
func ListMovimentacoesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var movs []models.Movimentacao
		if err := database.DB.
			Preload("Produto").
			Preload("Usuario").
			Preload("Turma").
			Order("data desc, id desc").
			Find(&movs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar movimentações")
		}

		itens := make([]MovimentacaoResponse, 0, len(movs))
		for _, m := range movs {
			itens = append(itens, movimentacaoParaResponse(m, m.Produto.Saldo, false))
		}

		dir := listagem.Descendente
		if c.Query("direcao") == "asc" {
			dir = listagem.Ascendente
		}

		resultado := listagem.Processar(itens, listagem.Parametros[MovimentacaoResponse]{
			Termo: c.Query("busca"),
			Acessores: []listagem.Acessor[MovimentacaoResponse]{
				func(m MovimentacaoResponse) string { return m.ProdutoNome },
				func(m MovimentacaoResponse) string { return m.UsuarioNome },
				func(m MovimentacaoResponse) string { return m.Observacao },
			},
			Faceta:              func(m MovimentacaoResponse) string { return m.Tipo },
			FacetasSelecionadas: listagem.SepararFacetas(c.Query("tipo")),
			ValorNumerico:       func(m MovimentacaoResponse) float64 { return m.Quantidade },
			FaixaMin:            listagem.QueryFloat(c, "quantidade_min"),
			FaixaMax:            listagem.QueryFloat(c, "quantidade_max"),
			Comparador:          comparadorMovimentacao(c.Query("ordem"), dir),
			Pagina:              c.QueryInt("pagina", 1),
		})

		return c.JSON(listagem.RespostaLista(resultado, c.Query("busca")))
	}
}
