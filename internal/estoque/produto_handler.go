package estoque

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/audit"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/listagem"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/validacao"

	"github.com/gofiber/fiber/v2"
)

type ProdutoResponse struct {
	ID          uint    `json:"id"`
	Nome        string  `json:"nome"`
	Codigo      string  `json:"codigo"`
	Localizacao string  `json:"localizacao"`
	MedidaID    *uint   `json:"medida_id"`
	Medida      string  `json:"medida"`
	Entradas    float64 `json:"entradas"`
	Saidas      float64 `json:"saidas"`
	Saldo       float64 `json:"saldo"`
	DataEntrada string  `json:"data_entrada"`
}

type CreateProdutoRequest struct {
	Nome           string  `json:"nome" validate:"required,min=2,max=100"`
	Codigo         string  `json:"codigo" validate:"max=50"`
	Localizacao    string  `json:"localizacao" validate:"max=100"`
	MedidaID       *uint   `json:"medida_id"`
	EntradaInicial float64 `json:"entrada_inicial" validate:"gte=0"`
	DataEntrada    string  `json:"data_entrada"` // "2026-08-30"; vazio usa hoje
}

type UpdateProdutoRequest struct {
	Nome        *string `json:"nome"`
	Codigo      *string `json:"codigo"`
	Localizacao *string `json:"localizacao"`
	MedidaID    *uint   `json:"medida_id"`
}

func produtoParaResponse(p models.Produto) ProdutoResponse {
	medida := ""
	if p.Medida != nil {
		medida = p.Medida.Sigla
	}
	return ProdutoResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Codigo:      p.Codigo,
		Localizacao: p.Localizacao,
		MedidaID:    p.MedidaID,
		Medida:      medida,
		Entradas:    p.Entradas,
		Saidas:      p.Saidas,
		Saldo:       p.Saldo,
		DataEntrada: p.DataEntrada.Format("2006-01-02"),
	}
}

// buscarProdutos carrega a tabela inteira, passando pelo cache quando há Redis.
func buscarProdutos(c *fiber.Ctx) ([]models.Produto, error) {
	if dados, ok := cache.Buscar(c.Context(), chaveProdutos); ok {
		var produtos []models.Produto
		if err := json.Unmarshal(dados, &produtos); err == nil {
			return produtos, nil
		}
	}

	var produtos []models.Produto
	if err := database.DB.Preload("Medida").Order("id asc").Find(&produtos).Error; err != nil {
		return nil, err
	}

	if dados, err := json.Marshal(produtos); err == nil {
		cache.Gravar(c.Context(), chaveProdutos, dados)
	}

	return produtos, nil
}

func comparadorProduto(ordem string, dir listagem.Direcao) listagem.Comparador[ProdutoResponse] {
	switch ordem {
	case "saldo":
		return listagem.PorNumero(func(p ProdutoResponse) float64 { return p.Saldo }, dir)
	case "entradas":
		return listagem.PorNumero(func(p ProdutoResponse) float64 { return p.Entradas }, dir)
	case "data_entrada":
		return listagem.PorDataOuNumero(func(p ProdutoResponse) string { return p.DataEntrada }, dir)
	case "codigo":
		return listagem.PorTexto(func(p ProdutoResponse) string { return p.Codigo }, dir)
	default:
		return listagem.PorTexto(func(p ProdutoResponse) string { return p.Nome }, dir)
	}
}

// GET /api/produtos?busca=&medida=un,kg&saldo_min=&saldo_max=&ordem=nome&direcao=asc&pagina=1
func ListProdutosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := buscarProdutos(c)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar produtos")
		}

		itens := make([]ProdutoResponse, 0, len(produtos))
		for _, p := range produtos {
			itens = append(itens, produtoParaResponse(p))
		}

		dir := listagem.Ascendente
		if c.Query("direcao") == "desc" {
			dir = listagem.Descendente
		}

		resultado := listagem.Processar(itens, listagem.Parametros[ProdutoResponse]{
			Termo: c.Query("busca"),
			Acessores: []listagem.Acessor[ProdutoResponse]{
				func(p ProdutoResponse) string { return p.Nome },
				func(p ProdutoResponse) string { return p.Codigo },
				func(p ProdutoResponse) string { return p.Localizacao },
			},
			Faceta:              func(p ProdutoResponse) string { return p.Medida },
			FacetasSelecionadas: listagem.SepararFacetas(c.Query("medida")),
			ValorNumerico:       func(p ProdutoResponse) float64 { return p.Saldo },
			FaixaMin:            listagem.QueryFloat(c, "saldo_min"),
			FaixaMax:            listagem.QueryFloat(c, "saldo_max"),
			Comparador:          comparadorProduto(c.Query("ordem"), dir),
			Pagina:              c.QueryInt("pagina", 1),
		})

		return c.JSON(listagem.RespostaLista(resultado, c.Query("busca")))
	}
}

// GET /api/produtos/:id
func GetProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Produto
		if err := database.DB.Preload("Medida").First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		return c.JSON(produtoParaResponse(p))
	}
}

// POST /api/admin/produtos (somente admin)
func CreateProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Nome = strings.TrimSpace(body.Nome)
		body.Codigo = strings.TrimSpace(body.Codigo)
		body.Localizacao = strings.TrimSpace(body.Localizacao)

		if erros := validacao.Validar(body); erros != nil {
			return validacao.Responder(c, erros)
		}

		// Código interno é único quando informado
		if body.Codigo != "" {
			var existente models.Produto
			if err := database.DB.Where("codigo = ?", body.Codigo).First(&existente).Error; err == nil {
				return validacao.Responder(c, map[string]string{"codigo": "Este código já está em uso"})
			}
		}

		if body.MedidaID != nil {
			var medida models.Medida
			if err := database.DB.First(&medida, *body.MedidaID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"medida_id": "Medida não encontrada"})
			}
		}

		dataEntrada := time.Now()
		if body.DataEntrada != "" {
			d, err := time.Parse("2006-01-02", body.DataEntrada)
			if err != nil {
				return validacao.Responder(c, map[string]string{"data_entrada": "Data deve estar no formato AAAA-MM-DD"})
			}
			dataEntrada = d
		}

		p := models.Produto{
			Nome:        body.Nome,
			Codigo:      body.Codigo,
			Localizacao: body.Localizacao,
			MedidaID:    body.MedidaID,
			Entradas:    body.EntradaInicial,
			Saldo:       body.EntradaInicial,
			DataEntrada: dataEntrada,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar produto")
		}

		cache.Invalidar(c.Context(), chaveProdutos)

		if usuarioID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   usuarioID,
				UsuarioNome: nome,
				Entidade:    "produto",
				EntidadeID:  p.ID,
				Acao:        models.AuditCriar,
				Descricao:   fmt.Sprintf("Produto criado: %s", p.Nome),
				Depois:      p,
			})
		}

		database.DB.Preload("Medida").First(&p, p.ID)
		return c.Status(fiber.StatusCreated).JSON(produtoParaResponse(p))
	}
}

// PUT /api/admin/produtos/:id
func UpdateProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Produto
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		antes := p

		var body UpdateProdutoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Nome != nil {
			nome := strings.TrimSpace(*body.Nome)
			if nome == "" {
				return validacao.Responder(c, map[string]string{"nome": "Campo obrigatório"})
			}
			p.Nome = nome
		}
		if body.Codigo != nil {
			p.Codigo = strings.TrimSpace(*body.Codigo)
		}
		if body.Localizacao != nil {
			p.Localizacao = strings.TrimSpace(*body.Localizacao)
		}
		if body.MedidaID != nil {
			var medida models.Medida
			if err := database.DB.First(&medida, *body.MedidaID).Error; err != nil {
				return validacao.Responder(c, map[string]string{"medida_id": "Medida não encontrada"})
			}
			p.MedidaID = body.MedidaID
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar produto")
		}

		cache.Invalidar(c.Context(), chaveProdutos)

		if usuarioID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   usuarioID,
				UsuarioNome: nome,
				Entidade:    "produto",
				EntidadeID:  p.ID,
				Acao:        models.AuditAtualizar,
				Descricao:   fmt.Sprintf("Produto atualizado: %s", p.Nome),
				Antes:       antes,
				Depois:      p,
			})
		}

		database.DB.Preload("Medida").First(&p, p.ID)
		return c.JSON(produtoParaResponse(p))
	}
}

// DELETE /api/admin/produtos/:id
func DeleteProdutoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Produto
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir produto")
		}

		cache.Invalidar(c.Context(), chaveProdutos)

		if usuarioID, nome, err := audit.Autor(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UsuarioID:   usuarioID,
				UsuarioNome: nome,
				Entidade:    "produto",
				EntidadeID:  p.ID,
				Acao:        models.AuditExcluir,
				Descricao:   fmt.Sprintf("Produto excluído: %s", p.Nome),
				Antes:       p,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
