package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX выгружает видимые строки списка в файл: жирная строка
// заголовков, дальше по строке на запись.
func WriteXLSX(path, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &headers)

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(sheet, "A1", lastHeader, style)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("ошибка адресации строки %d: %w", i+2, err)
		}
		values := row
		f.SetSheetRow(sheet, cell, &values)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("ошибка сохранения файла %s: %w", path, err)
	}
	return nil
}
