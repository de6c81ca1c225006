package listagem

import "strings"

// Acessor extrai de um item o texto usado na busca.
type Acessor[T any] func(T) string

// FiltrarPorTermo mantém os itens em que algum acessor contém o termo
// (sem diferenciar maiúsculas). Termo vazio devolve a própria lista.
// Acessor que entra em pânico conta como "não casou" para aquele item.
func FiltrarPorTermo[T any](itens []T, termo string, acessores ...Acessor[T]) []T {
	termo = strings.ToLower(strings.TrimSpace(termo))
	if termo == "" {
		return itens
	}

	filtrados := make([]T, 0, len(itens))
	for _, item := range itens {
		for _, acessor := range acessores {
			if strings.Contains(strings.ToLower(valorSeguro(item, acessor)), termo) {
				filtrados = append(filtrados, item)
				break
			}
		}
	}
	return filtrados
}

func valorSeguro[T any](item T, acessor Acessor[T]) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()
	return acessor(item)
}
