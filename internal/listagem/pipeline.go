package listagem

// TamanhoPagina é fixo para todas as telas do painel.
const TamanhoPagina = 25

// Parametros descreve uma passada completa do pipeline. Campos nulos/vazios
// desligam a etapa correspondente; a ordem das etapas é sempre a mesma:
// termo -> faceta -> faixa numérica -> ordenação -> paginação.
type Parametros[T any] struct {
	Termo     string
	Acessores []Acessor[T]

	Faceta              Acessor[T]
	FacetasSelecionadas []string

	ValorNumerico func(T) float64
	FaixaMin      *float64
	FaixaMax      *float64

	Comparador Comparador[T]

	Pagina int
}

type Resultado[T any] struct {
	Itens         []T
	Pagina        int
	TotalPaginas  int
	TotalGeral    int // antes de qualquer filtro
	TotalFiltrado int
	// SemResultados indica que havia itens cadastrados mas os filtros
	// zeraram a lista ("nenhum resultado para o termo" na tela, diferente
	// de "nenhum item cadastrado").
	SemResultados bool
}

// Processar roda o pipeline completo sobre a coleção já carregada.
func Processar[T any](itens []T, p Parametros[T]) Resultado[T] {
	filtrados := FiltrarPorTermo(itens, p.Termo, p.Acessores...)
	filtrados = filtrarPorFaceta(filtrados, p.Faceta, p.FacetasSelecionadas)
	filtrados = filtrarPorFaixa(filtrados, p.ValorNumerico, p.FaixaMin, p.FaixaMax)

	if p.Comparador != nil {
		filtrados = Ordenar(filtrados, p.Comparador)
	}

	totalPaginas := TotalPaginas(len(filtrados), TamanhoPagina)
	pagina := ClampPagina(p.Pagina, totalPaginas)

	inicio := (pagina - 1) * TamanhoPagina
	fim := inicio + TamanhoPagina
	if fim > len(filtrados) {
		fim = len(filtrados)
	}
	if inicio > len(filtrados) {
		inicio = len(filtrados)
	}

	return Resultado[T]{
		Itens:         filtrados[inicio:fim],
		Pagina:        pagina,
		TotalPaginas:  totalPaginas,
		TotalGeral:    len(itens),
		TotalFiltrado: len(filtrados),
		SemResultados: len(filtrados) == 0 && len(itens) > 0,
	}
}

// filtrarPorFaceta mantém itens cujo valor de faceta está no conjunto
// selecionado; conjunto vazio deixa tudo passar.
func filtrarPorFaceta[T any](itens []T, faceta Acessor[T], selecionadas []string) []T {
	if faceta == nil || len(selecionadas) == 0 {
		return itens
	}

	conjunto := make(map[string]struct{}, len(selecionadas))
	for _, s := range selecionadas {
		conjunto[s] = struct{}{}
	}

	filtrados := make([]T, 0, len(itens))
	for _, item := range itens {
		if _, ok := conjunto[valorSeguro(item, faceta)]; ok {
			filtrados = append(filtrados, item)
		}
	}
	return filtrados
}

// filtrarPorFaixa mantém itens com min <= valor <= max (limites inclusivos).
func filtrarPorFaixa[T any](itens []T, valor func(T) float64, min, max *float64) []T {
	if valor == nil || (min == nil && max == nil) {
		return itens
	}

	filtrados := make([]T, 0, len(itens))
	for _, item := range itens {
		v := valor(item)
		if min != nil && v < *min {
			continue
		}
		if max != nil && v > *max {
			continue
		}
		filtrados = append(filtrados, item)
	}
	return filtrados
}

// TotalPaginas = max(1, ceil(n/tamanho)); lista vazia ainda tem página 1.
func TotalPaginas(totalItens, tamanho int) int {
	if totalItens <= 0 {
		return 1
	}
	return (totalItens + tamanho - 1) / tamanho
}

// ClampPagina traz a página pedida para dentro de [1, totalPaginas].
// Quando os filtros encolhem a lista, a página atual desce junto.
func ClampPagina(pagina, totalPaginas int) int {
	if pagina < 1 {
		return 1
	}
	if pagina > totalPaginas {
		return totalPaginas
	}
	return pagina
}
