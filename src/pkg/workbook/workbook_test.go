package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSheets() []Sheet {
	return []Sheet{
		{
			Name:   "Usuarios Remotos Hoy",
			Header: []string{"Rut", "Nombre"},
			Rows: [][]any{
				{"1", "Ana"},
				{"2", "Bartolomé Fernández de la Cruz"},
				{"3", "Eva"},
			},
		},
		{
			Name:   "Remotos por Gerencia",
			Header: []string{"Gerencia", "% Remotos"},
			Rows:   [][]any{{"Finance", 12.5}},
		},
		{
			Name:   "Vacia",
			Header: []string{"Fecha"},
		},
	}
}

func TestExport_WritesSheetsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files", "report.xlsx")

	e := Export(path, sampleSheets())
	require.Nil(t, e)

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Usuarios Remotos Hoy", "Remotos por Gerencia", "Vacia"}, file.GetSheetList())

	rows, err := file.GetRows("Usuarios Remotos Hoy")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Rut", "Nombre"}, rows[0])
	assert.Equal(t, []string{"2", "Bartolomé Fernández de la Cruz"}, rows[2])

	rows, err = file.GetRows("Vacia")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	value, err := file.GetCellValue("Remotos por Gerencia", "B2")
	require.NoError(t, err)
	assert.Equal(t, "12.5", value)
}

func TestExport_ColumnWidthsAndStripes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.Nil(t, Export(path, sampleSheets()))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	width, err := file.GetColWidth("Usuarios Remotos Hoy", "B")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)

	width, err = file.GetColWidth("Remotos por Gerencia", "B")
	require.NoError(t, err)
	assert.Equal(t, 9.0, width)

	header, err := file.GetCellStyle("Usuarios Remotos Hoy", "A1")
	require.NoError(t, err)
	odd, err := file.GetCellStyle("Usuarios Remotos Hoy", "A2")
	require.NoError(t, err)
	even, err := file.GetCellStyle("Usuarios Remotos Hoy", "B3")
	require.NoError(t, err)
	oddAgain, err := file.GetCellStyle("Usuarios Remotos Hoy", "B4")
	require.NoError(t, err)

	assert.NotEqual(t, header, odd)
	assert.NotEqual(t, even, odd)
	assert.Equal(t, odd, oddAgain)
}

func TestExport_LeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, Export(filepath.Join(dir, "report.xlsx"), sampleSheets()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.xlsx", entries[0].Name())
}

func TestExport_RejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	sheets := []Sheet{{Name: "A"}, {Name: "A"}}

	e := Export(filepath.Join(dir, "report.xlsx"), sheets)
	assert.NotNil(t, e)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExport_RejectsEmptyName(t *testing.T) {
	assert.NotNil(t, Export(filepath.Join(t.TempDir(), "report.xlsx"), []Sheet{{Name: ""}}))
	assert.NotNil(t, Export(filepath.Join(t.TempDir(), "report.xlsx"), nil))
}

func TestColumnWidths(t *testing.T) {
	sheet := Sheet{
		Header: []string{"Fecha", "CantidadRemotos"},
		Rows:   [][]any{{"2024-03-01", 3}, {"Miércoles", 12}},
	}

	assert.Equal(t, []int{10, 15}, ColumnWidths(sheet, 2))
}
