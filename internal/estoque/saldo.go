package estoque

import "github.com/RyanB-Rezende/projeto-estoque-didatico-web-sub000/internal/models"

// ResultadoSaldo é o novo estado do produto após aplicar uma movimentação.
type ResultadoSaldo struct {
	Entradas float64
	Saidas   float64
	Saldo    float64
	// Ajustado indica que a saída pedia mais do que havia e o saldo foi
	// travado em zero. A quantidade registrada na movimentação não muda.
	Ajustado bool
}

// AplicarMovimentacao calcula entradas/saídas/saldo resultantes.
// Entrada soma em entradas e saldo; saída soma em saídas e subtrai do
// saldo, que nunca fica negativo.
func AplicarMovimentacao(entradas, saidas, saldo float64, tipo models.TipoMovimentacao, quantidade float64) ResultadoSaldo {
	r := ResultadoSaldo{Entradas: entradas, Saidas: saidas, Saldo: saldo}

	switch tipo {
	case models.MovimentacaoEntrada:
		r.Entradas += quantidade
		r.Saldo += quantidade
	case models.MovimentacaoSaida:
		r.Saidas += quantidade
		r.Saldo -= quantidade
		if r.Saldo < 0 {
			r.Saldo = 0
			r.Ajustado = true
		}
	}

	return r
}
