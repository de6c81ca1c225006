// Package listagem implementa o processamento compartilhado das telas de
// listagem do painel: busca por termo, filtros de faceta e faixa numérica,
// ordenação estável e paginação de 25 em 25.
package listagem

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

type Direcao string

const (
	Ascendente  Direcao = "asc"
	Descendente Direcao = "desc"
)

// Comparador retorna negativo, zero ou positivo como em strings.Compare.
type Comparador[T any] func(a, b T) int

// Formatos de data aceitos pelo comparador de datas, do mais ao menos comum
// nos registros do painel.
var formatosData = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func aplicarDirecao(v int, dir Direcao) int {
	if dir == Descendente {
		return -v
	}
	return v
}

// PorTexto compara o valor do acessor em minúsculas, lexicograficamente.
func PorTexto[T any](acessor func(T) string, dir Direcao) Comparador[T] {
	return func(a, b T) int {
		va := strings.ToLower(acessor(a))
		vb := strings.ToLower(acessor(b))
		return aplicarDirecao(strings.Compare(va, vb), dir)
	}
}

// PorNumero compara valores numéricos diretamente.
func PorNumero[T any](acessor func(T) float64, dir Direcao) Comparador[T] {
	return func(a, b T) int {
		va, vb := acessor(a), acessor(b)
		switch {
		case va < vb:
			return aplicarDirecao(-1, dir)
		case va > vb:
			return aplicarDirecao(1, dir)
		default:
			return 0
		}
	}
}

// ParseNumero converte texto em número tratando vazio ou lixo como zero.
func ParseNumero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// PorDataOuNumero tenta interpretar o valor como data; se não der,
// compara como número (valor não numérico conta como zero).
func PorDataOuNumero[T any](acessor func(T) string, dir Direcao) Comparador[T] {
	return func(a, b T) int {
		va, okA := parseData(acessor(a))
		vb, okB := parseData(acessor(b))
		if okA && okB {
			switch {
			case va.Before(vb):
				return aplicarDirecao(-1, dir)
			case va.After(vb):
				return aplicarDirecao(1, dir)
			default:
				return 0
			}
		}
		na := ParseNumero(acessor(a))
		nb := ParseNumero(acessor(b))
		switch {
		case na < nb:
			return aplicarDirecao(-1, dir)
		case na > nb:
			return aplicarDirecao(1, dir)
		default:
			return 0
		}
	}
}

func parseData(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range formatosData {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Ordenar devolve uma cópia ordenada de forma estável: empates mantêm a
// ordem de inserção, então reordenar uma lista já ordenada não muda nada.
func Ordenar[T any](itens []T, cmp Comparador[T]) []T {
	ordenados := make([]T, len(itens))
	copy(ordenados, itens)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return cmp(ordenados[i], ordenados[j]) < 0
	})
	return ordenados
}
