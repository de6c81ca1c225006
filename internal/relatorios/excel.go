package relatorios

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// tabelaExcel gera uma planilha com cabeçalho na primeira linha.
func tabelaExcel(aba string, cabecalho []string, linhas [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", aba); err != nil {
		return nil, err
	}

	for col, h := range cabecalho {
		celula, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(aba, celula, h); err != nil {
			return nil, err
		}
	}

	for i, linha := range linhas {
		for col, valor := range linha {
			celula, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(aba, celula, valor); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("planilha não pôde ser gerada: %w", err)
	}
	return buf.Bytes(), nil
}
