package relatorios

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// tabelaPDF monta um relatório tabular simples: título, data de emissão,
// cabeçalho cinza e uma linha por registro.
func tabelaPDF(titulo string, cabecalho []string, larguras []float64, linhas [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr(titulo))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Emitido em %s", time.Now().Format("02/01/2006 15:04"))))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range cabecalho {
		pdf.CellFormat(larguras[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, linha := range linhas {
		for i, valor := range linha {
			pdf.CellFormat(larguras[i], 7, tr(valor), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(linhas) == 0 {
		pdf.Ln(4)
		pdf.Cell(0, 8, tr("Nenhum registro no período"))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
