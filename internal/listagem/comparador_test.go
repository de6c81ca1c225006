package listagem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemTeste struct {
	Nome   string
	Codigo string
	Saldo  float64
	Data   string
}

func itensExemplo() []itemTeste {
	return []itemTeste{
		{Nome: "Caneta", Codigo: "COD-123", Saldo: 8, Data: "2026-02-10"},
		{Nome: "Lápis", Codigo: "XYZ-9", Saldo: 5, Data: "2026-01-05"},
		{Nome: "Borracha", Codigo: "COD-987", Saldo: 10, Data: "2026-03-20"},
	}
}

func TestOrdenarPorSaldoAscendente(t *testing.T) {
	itens := itensExemplo()
	cmp := PorNumero(func(i itemTeste) float64 { return i.Saldo }, Ascendente)

	ordenados := Ordenar(itens, cmp)

	require.Len(t, ordenados, 3)
	assert.Equal(t, "Lápis", ordenados[0].Nome)
	assert.Equal(t, "Caneta", ordenados[1].Nome)
	assert.Equal(t, "Borracha", ordenados[2].Nome)
}

func TestOrdenarPorTextoIgnoraMaiusculas(t *testing.T) {
	itens := []itemTeste{{Nome: "banana"}, {Nome: "Abacaxi"}, {Nome: "CAJU"}}
	cmp := PorTexto(func(i itemTeste) string { return i.Nome }, Ascendente)

	ordenados := Ordenar(itens, cmp)

	assert.Equal(t, "Abacaxi", ordenados[0].Nome)
	assert.Equal(t, "banana", ordenados[1].Nome)
	assert.Equal(t, "CAJU", ordenados[2].Nome)
}

func TestOrdenarDescendente(t *testing.T) {
	itens := itensExemplo()
	cmp := PorNumero(func(i itemTeste) float64 { return i.Saldo }, Descendente)

	ordenados := Ordenar(itens, cmp)

	assert.Equal(t, "Borracha", ordenados[0].Nome)
	assert.Equal(t, "Lápis", ordenados[2].Nome)
}

func TestOrdenarEIdempotente(t *testing.T) {
	itens := []itemTeste{
		{Nome: "A", Saldo: 5},
		{Nome: "B", Saldo: 5},
		{Nome: "C", Saldo: 5},
		{Nome: "D", Saldo: 2},
	}
	cmp := PorNumero(func(i itemTeste) float64 { return i.Saldo }, Ascendente)

	umaVez := Ordenar(itens, cmp)
	duasVezes := Ordenar(umaVez, cmp)

	// Empates mantêm a ordem de inserção; reordenar não muda nada
	assert.Equal(t, umaVez, duasVezes)
	assert.Equal(t, "D", umaVez[0].Nome)
	assert.Equal(t, "A", umaVez[1].Nome)
	assert.Equal(t, "B", umaVez[2].Nome)
	assert.Equal(t, "C", umaVez[3].Nome)
}

func TestOrdenarEPermutacao(t *testing.T) {
	itens := itensExemplo()
	cmp := PorTexto(func(i itemTeste) string { return i.Nome }, Descendente)

	ordenados := Ordenar(itens, cmp)

	require.Len(t, ordenados, len(itens))
	contagem := map[string]int{}
	for _, i := range itens {
		contagem[i.Nome]++
	}
	for _, i := range ordenados {
		contagem[i.Nome]--
	}
	for nome, c := range contagem {
		assert.Zero(t, c, "item %s ganhou ou sumiu na ordenação", nome)
	}

	// Original intocado
	assert.Equal(t, "Caneta", itens[0].Nome)
}

func TestPorDataOuNumeroComDatas(t *testing.T) {
	itens := itensExemplo()
	cmp := PorDataOuNumero(func(i itemTeste) string { return i.Data }, Ascendente)

	ordenados := Ordenar(itens, cmp)

	assert.Equal(t, "Lápis", ordenados[0].Nome)
	assert.Equal(t, "Caneta", ordenados[1].Nome)
	assert.Equal(t, "Borracha", ordenados[2].Nome)
}

func TestPorDataOuNumeroFallbackNumerico(t *testing.T) {
	// Valores que não parseiam como data caem na comparação numérica
	itens := []itemTeste{{Data: "30"}, {Data: "não é data"}, {Data: "7"}}
	cmp := PorDataOuNumero(func(i itemTeste) string { return i.Data }, Ascendente)

	ordenados := Ordenar(itens, cmp)

	// "não é data" vira zero e vai para o começo
	assert.Equal(t, "não é data", ordenados[0].Data)
	assert.Equal(t, "7", ordenados[1].Data)
	assert.Equal(t, "30", ordenados[2].Data)
}

func TestParseNumero(t *testing.T) {
	assert.Equal(t, 12.5, ParseNumero(" 12.5 "))
	assert.Equal(t, 0.0, ParseNumero(""))
	assert.Equal(t, 0.0, ParseNumero("abc"))
}
