package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	"github.com/xuri/excelize/v2"

	"remote-report/src/pkg/util"
)

const (
	HeaderFill   = "1F77B4"
	StripeFill   = "D1E3F0"
	BaseWidth    = 15.0
	defaultSheet = "Sheet1"
)

var errInvalidSheets = errors.New("invalid sheet list")

// Sheet is one worksheet: a header row followed by data rows.
type Sheet struct {
	Name   string   `json:"name"`
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}

/*
Export writes sheets, in order, to a new workbook at path.

The file is built under a temporary name in the same directory and renamed into
place, so path never holds a half-written workbook.
*/
func Export(path string, sheets []Sheet) (e *xerr.Error) {
	err := validate(sheets)
	if err != nil {
		e = xerr.NewError(err, "Workbook sheets are not valid", path)
		return e
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		e = xerr.NewError(err, "Unable to create workbook directory", dir)
		return e
	}

	file := excelize.NewFile()
	defer file.Close()

	for index, sheet := range sheets {
		err = writeSheet(file, index, sheet)
		if err != nil {
			e = xerr.NewError(fmt.Errorf("sheet %q: %w", sheet.Name, err), "Unable to write worksheet", path)
			return e
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		e = xerr.NewError(err, "Unable to create temporary workbook", dir)
		return e
	}
	tmpPath := tmp.Name()

	_, err = file.WriteTo(tmp)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		e = xerr.NewError(err, "Unable to save workbook", path)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "Workbook saved to '%s' with %v sheets", path, len(sheets))
	return nil
}

func validate(sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("%w: no sheets", errInvalidSheets)
	}

	seen := make(map[string]bool, len(sheets))
	for index, sheet := range sheets {
		if sheet.Name == "" {
			return fmt.Errorf("%w: sheet %d has no name", errInvalidSheets, index)
		}
		if seen[sheet.Name] {
			return fmt.Errorf("%w: duplicate sheet name %q", errInvalidSheets, sheet.Name)
		}
		seen[sheet.Name] = true
	}
	return nil
}

func writeSheet(file *excelize.File, index int, sheet Sheet) error {
	if index == 0 {
		err := file.SetSheetName(defaultSheet, sheet.Name)
		if err != nil {
			return fmt.Errorf("rename default sheet: %w", err)
		}
	} else {
		_, err := file.NewSheet(sheet.Name)
		if err != nil {
			return fmt.Errorf("create sheet: %w", err)
		}
	}

	header := make([]any, len(sheet.Header))
	for col, title := range sheet.Header {
		header[col] = title
	}
	err := file.SetSheetRow(sheet.Name, "A1", &header)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for rowIndex, row := range sheet.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowIndex+2)
		values := append([]any(nil), row...)
		err = file.SetSheetRow(sheet.Name, cell, &values)
		if err != nil {
			return fmt.Errorf("write row %d: %w", rowIndex, err)
		}
	}

	columns := len(sheet.Header)
	for _, row := range sheet.Rows {
		columns = max(columns, len(row))
	}
	if columns == 0 {
		return nil
	}

	err = styleSheet(file, sheet, columns)
	if err != nil {
		return err
	}
	return sizeColumns(file, sheet, columns)
}

func styleSheet(file *excelize.File, sheet Sheet, columns int) error {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{HeaderFill}},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	evenStyle, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFFFF"}},
	})
	if err != nil {
		return fmt.Errorf("row style: %w", err)
	}
	oddStyle, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{StripeFill}},
	})
	if err != nil {
		return fmt.Errorf("row style: %w", err)
	}

	lastColumn, _ := excelize.ColumnNumberToName(columns)

	err = file.SetCellStyle(sheet.Name, "A1", lastColumn+"1", headerStyle)
	if err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	// parity follows the 0-based sheet row, so the first data row (row 1) is striped
	for rowIndex := range sheet.Rows {
		sheetRow := rowIndex + 2
		style := evenStyle
		if (sheetRow-1)%2 == 1 {
			style = oddStyle
		}
		err = file.SetCellStyle(sheet.Name, fmt.Sprintf("A%d", sheetRow), fmt.Sprintf("%s%d", lastColumn, sheetRow), style)
		if err != nil {
			return fmt.Errorf("apply row style: %w", err)
		}
	}

	filterRange := fmt.Sprintf("A1:%s%d", lastColumn, len(sheet.Rows)+1)
	err = file.AutoFilter(sheet.Name, filterRange, nil)
	if err != nil {
		return fmt.Errorf("autofilter %s: %w", filterRange, err)
	}
	return nil
}

// sizeColumns sets every column to BaseWidth, then to the longest text it holds.
func sizeColumns(file *excelize.File, sheet Sheet, columns int) error {
	lastColumn, _ := excelize.ColumnNumberToName(columns)
	err := file.SetColWidth(sheet.Name, "A", lastColumn, BaseWidth)
	if err != nil {
		return fmt.Errorf("base column width: %w", err)
	}

	for col, width := range ColumnWidths(sheet, columns) {
		if width == 0 {
			continue
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		err = file.SetColWidth(sheet.Name, name, name, float64(util.Clamp(width, 1, excelize.MaxColumnWidth)))
		if err != nil {
			return fmt.Errorf("column %s width: %w", name, err)
		}
	}
	return nil
}

// ColumnWidths returns, per column, the longest of the header and every stringified value.
func ColumnWidths(sheet Sheet, columns int) []int {
	widths := make([]int, columns)
	for col, title := range sheet.Header {
		widths[col] = utf8.RuneCountInString(title)
	}
	for _, row := range sheet.Rows {
		for col, value := range row {
			widths[col] = max(widths[col], utf8.RuneCountInString(fmt.Sprint(value)))
		}
	}
	return widths
}
