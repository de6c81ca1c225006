package listagem

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SepararFacetas quebra "un,kg" em valores de faceta; vazio vira nil
// (nenhuma seleção = tudo passa).
func SepararFacetas(valor string) []string {
	if strings.TrimSpace(valor) == "" {
		return nil
	}
	partes := strings.Split(valor, ",")
	facetas := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			facetas = append(facetas, p)
		}
	}
	return facetas
}

// QueryFloat lê um parâmetro numérico opcional; ausente ou inválido vira nil.
func QueryFloat(c *fiber.Ctx, chave string) *float64 {
	s := c.Query(chave)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Direção a partir do query param; qualquer coisa diferente de "desc" é asc.
func DirecaoDaQuery(c *fiber.Ctx) Direcao {
	if c.Query("direcao") == "desc" {
		return Descendente
	}
	return Ascendente
}

// RespostaLista é o envelope comum das telas de listagem.
func RespostaLista[T any](r Resultado[T], termo string) fiber.Map {
	mensagem := ""
	if r.SemResultados {
		if strings.TrimSpace(termo) != "" {
			mensagem = "Nenhum resultado para \"" + strings.TrimSpace(termo) + "\""
		} else {
			mensagem = "Nenhum resultado para os filtros aplicados"
		}
	} else if r.TotalGeral == 0 {
		mensagem = "Nenhum item cadastrado"
	}

	return fiber.Map{
		"itens":          r.Itens,
		"pagina":         r.Pagina,
		"total_paginas":  r.TotalPaginas,
		"total_geral":    r.TotalGeral,
		"total_filtrado": r.TotalFiltrado,
		"mensagem_vazia": mensagem,
	}
}
