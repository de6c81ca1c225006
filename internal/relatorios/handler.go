// Package relatorios exporta as tabelas do painel em PDF e Excel.
package relatorios

import (
	"fmt"
	"time"

	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/database"
	"github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

func carregarEstoque() ([]models.Produto, error) {
	var produtos []models.Produto
	err := database.DB.Preload("Medida").Order("nome asc").Find(&produtos).Error
	return produtos, err
}

// carregarMovimentacoes filtra por período quando inicio/fim vierem na query.
func carregarMovimentacoes(c *fiber.Ctx) ([]models.Movimentacao, error) {
	dbq := database.DB.Preload("Produto").Preload("Usuario").Order("data desc, id desc")

	if inicio := c.Query("inicio"); inicio != "" {
		d, err := time.Parse("2006-01-02", inicio)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "inicio deve estar no formato AAAA-MM-DD")
		}
		dbq = dbq.Where("data >= ?", d)
	}
	if fim := c.Query("fim"); fim != "" {
		d, err := time.Parse("2006-01-02", fim)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "fim deve estar no formato AAAA-MM-DD")
		}
		dbq = dbq.Where("data <= ?", d.AddDate(0, 0, 1).Add(-time.Second))
	}

	var movs []models.Movimentacao
	err := dbq.Find(&movs).Error
	return movs, err
}

func medidaDe(p models.Produto) string {
	if p.Medida != nil {
		return p.Medida.Sigla
	}
	return ""
}

// GET /api/relatorios/estoque.pdf
func EstoquePDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := carregarEstoque()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar produtos")
		}

		linhas := make([][]string, 0, len(produtos))
		for _, p := range produtos {
			linhas = append(linhas, []string{
				p.Nome,
				p.Codigo,
				medidaDe(p),
				fmt.Sprintf("%.2f", p.Entradas),
				fmt.Sprintf("%.2f", p.Saidas),
				fmt.Sprintf("%.2f", p.Saldo),
			})
		}

		dados, err := tabelaPDF(
			"Relatório de Estoque",
			[]string{"Produto", "Código", "Medida", "Entradas", "Saídas", "Saldo"},
			[]float64{60, 25, 20, 28, 28, 28},
			linhas,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar o PDF")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.pdf"`)
		return c.Send(dados)
	}
}

// GET /api/relatorios/estoque.xlsx
func EstoqueExcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		produtos, err := carregarEstoque()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar produtos")
		}

		linhas := make([][]any, 0, len(produtos))
		for _, p := range produtos {
			linhas = append(linhas, []any{p.Nome, p.Codigo, medidaDe(p), p.Entradas, p.Saidas, p.Saldo})
		}

		dados, err := tabelaExcel(
			"Estoque",
			[]string{"Produto", "Código", "Medida", "Entradas", "Saídas", "Saldo"},
			linhas,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.xlsx"`)
		return c.Send(dados)
	}
}

// GET /api/relatorios/movimentacoes.pdf?inicio=&fim=
func MovimentacoesPDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		movs, err := carregarMovimentacoes(c)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar movimentações")
		}

		linhas := make([][]string, 0, len(movs))
		for _, m := range movs {
			linhas = append(linhas, []string{
				m.Data.Format("02/01/2006"),
				m.Produto.Nome,
				string(m.Tipo),
				fmt.Sprintf("%.2f", m.Quantidade),
				m.Usuario.Nome,
			})
		}

		dados, err := tabelaPDF(
			"Relatório de Movimentações",
			[]string{"Data", "Produto", "Tipo", "Quantidade", "Responsável"},
			[]float64{25, 60, 22, 28, 54},
			linhas,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar o PDF")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes.pdf"`)
		return c.Send(dados)
	}
}

// GET /api/relatorios/movimentacoes.xlsx?inicio=&fim=
func MovimentacoesExcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		movs, err := carregarMovimentacoes(c)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao carregar movimentações")
		}

		linhas := make([][]any, 0, len(movs))
		for _, m := range movs {
			linhas = append(linhas, []any{
				m.Data.Format("2006-01-02"),
				m.Produto.Nome,
				string(m.Tipo),
				m.Quantidade,
				m.Usuario.Nome,
			})
		}

		dados, err := tabelaExcel(
			"Movimentações",
			[]string{"Data", "Produto", "Tipo", "Quantidade", "Responsável"},
			linhas,
		)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao gerar a planilha")
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes.xlsx"`)
		return c.Send(dados)
	}
}
