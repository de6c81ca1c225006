package listagem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltrarPorTermoVazioDevolveAMesmaLista(t *testing.T) {
	itens := itensExemplo()
	acessor := func(i itemTeste) string { return i.Nome }

	assert.Equal(t, itens, FiltrarPorTermo(itens, "", acessor))
	assert.Equal(t, itens, FiltrarPorTermo(itens, "   ", acessor))
}

func TestFiltrarPorTermoOlhaTodosOsCampos(t *testing.T) {
	itens := itensExemplo()
	acessores := []Acessor[itemTeste]{
		func(i itemTeste) string { return i.Nome },
		func(i itemTeste) string { return i.Codigo },
	}

	// "XYZ-9" só existe no código do Lápis
	resultado := FiltrarPorTermo(itens, "xyz-9", acessores...)
	require.Len(t, resultado, 1)
	assert.Equal(t, "Lápis", resultado[0].Nome)

	// "cod" casa com dois códigos
	resultado = FiltrarPorTermo(itens, "COD", acessores...)
	assert.Len(t, resultado, 2)
}

func TestFiltrarPorTermoAcessorComPanico(t *testing.T) {
	itens := []*itemTeste{{Nome: "Caneta"}, nil}
	acessor := func(i *itemTeste) string { return i.Nome }

	// O item nil não derruba a busca, só não casa
	resultado := FiltrarPorTermo(itens, "caneta", acessor)
	require.Len(t, resultado, 1)
	assert.Equal(t, "Caneta", resultado[0].Nome)
}

func TestProcessarPaginacao(t *testing.T) {
	itens := make([]itemTeste, 30)
	for i := range itens {
		itens[i].Nome = fmt.Sprintf("Item %02d", i)
	}

	r := Processar(itens, Parametros[itemTeste]{Pagina: 1})
	assert.Equal(t, 2, r.TotalPaginas)
	assert.Len(t, r.Itens, 25)

	r = Processar(itens, Parametros[itemTeste]{Pagina: 2})
	assert.Len(t, r.Itens, 5)
	assert.Equal(t, "Item 25", r.Itens[0].Nome)

	// Página além do fim volta para a última
	r = Processar(itens, Parametros[itemTeste]{Pagina: 3})
	assert.Equal(t, 2, r.Pagina)
	assert.Len(t, r.Itens, 5)
}

func TestProcessarListaVaziaTemPaginaUm(t *testing.T) {
	r := Processar(nil, Parametros[itemTeste]{Pagina: 7})

	assert.Equal(t, 1, r.Pagina)
	assert.Equal(t, 1, r.TotalPaginas)
	assert.Empty(t, r.Itens)
	assert.False(t, r.SemResultados)
	assert.Zero(t, r.TotalGeral)
}

func TestProcessarFiltroZerouLista(t *testing.T) {
	itens := itensExemplo()

	r := Processar(itens, Parametros[itemTeste]{
		Termo:     "inexistente",
		Acessores: []Acessor[itemTeste]{func(i itemTeste) string { return i.Nome }},
		Pagina:    1,
	})

	assert.True(t, r.SemResultados)
	assert.Equal(t, 3, r.TotalGeral)
	assert.Zero(t, r.TotalFiltrado)
	assert.Equal(t, 1, r.Pagina)
}

func TestProcessarFacetaVaziaDeixaTudoPassar(t *testing.T) {
	itens := itensExemplo()

	r := Processar(itens, Parametros[itemTeste]{
		Faceta: func(i itemTeste) string { return i.Codigo },
		Pagina: 1,
	})

	assert.Equal(t, 3, r.TotalFiltrado)
}

func TestProcessarFacetaPorPertencimento(t *testing.T) {
	itens := itensExemplo()

	r := Processar(itens, Parametros[itemTeste]{
		Faceta:              func(i itemTeste) string { return i.Codigo },
		FacetasSelecionadas: []string{"XYZ-9", "COD-987"},
		Pagina:              1,
	})

	require.Equal(t, 2, r.TotalFiltrado)
	assert.Equal(t, "Caneta", itens[0].Nome) // original preservado
}

func TestProcessarFaixaInclusiva(t *testing.T) {
	itens := itensExemplo()
	min, max := 5.0, 8.0

	r := Processar(itens, Parametros[itemTeste]{
		ValorNumerico: func(i itemTeste) float64 { return i.Saldo },
		FaixaMin:      &min,
		FaixaMax:      &max,
		Pagina:        1,
	})

	// Limites entram: saldo 5 e saldo 8 ficam, saldo 10 sai
	require.Equal(t, 2, r.TotalFiltrado)
	for _, item := range r.Itens {
		assert.GreaterOrEqual(t, item.Saldo, min)
		assert.LessOrEqual(t, item.Saldo, max)
	}
}

func TestProcessarSomenteMinimo(t *testing.T) {
	itens := itensExemplo()
	min := 8.0

	r := Processar(itens, Parametros[itemTeste]{
		ValorNumerico: func(i itemTeste) float64 { return i.Saldo },
		FaixaMin:      &min,
		Pagina:        1,
	})

	assert.Equal(t, 2, r.TotalFiltrado)
}

func TestProcessarTermoFaixaEOrdenacao(t *testing.T) {
	// "á" acentuado não casa com "a"; Lápis fica de fora do termo
	itens := []itemTeste{
		{Nome: "Caneta", Saldo: 8},
		{Nome: "Lápis", Saldo: 5},
		{Nome: "Borracha", Saldo: 10},
		{Nome: "Apontador", Saldo: 3},
	}
	max := 9.0

	r := Processar(itens, Parametros[itemTeste]{
		Termo:         "a",
		Acessores:     []Acessor[itemTeste]{func(i itemTeste) string { return i.Nome }},
		ValorNumerico: func(i itemTeste) float64 { return i.Saldo },
		FaixaMax:      &max,
		Comparador:    PorNumero(func(i itemTeste) float64 { return i.Saldo }, Ascendente),
		Pagina:        1,
	})

	// Termo descarta Lápis, a faixa descarta Borracha (10 > 9)
	require.Equal(t, 2, r.TotalFiltrado)
	assert.Equal(t, "Apontador", r.Itens[0].Nome)
	assert.Equal(t, "Caneta", r.Itens[1].Nome)
}

func TestTotalPaginas(t *testing.T) {
	assert.Equal(t, 1, TotalPaginas(0, 25))
	assert.Equal(t, 1, TotalPaginas(1, 25))
	assert.Equal(t, 1, TotalPaginas(25, 25))
	assert.Equal(t, 2, TotalPaginas(26, 25))
	assert.Equal(t, 4, TotalPaginas(100, 25))
}

func TestClampPagina(t *testing.T) {
	assert.Equal(t, 1, ClampPagina(0, 3))
	assert.Equal(t, 1, ClampPagina(-2, 3))
	assert.Equal(t, 2, ClampPagina(2, 3))
	assert.Equal(t, 3, ClampPagina(9, 3))
}

func TestSepararFacetas(t *testing.T) {
	assert.Nil(t, SepararFacetas(""))
	assert.Nil(t, SepararFacetas("  "))
	assert.Equal(t, []string{"un", "kg"}, SepararFacetas("un, kg"))
	assert.Equal(t, []string{"un"}, SepararFacetas("un,,"))
}
