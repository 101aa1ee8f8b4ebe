package sheet

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ----------------------------------------------------------------------------
// Validation Tests
// ----------------------------------------------------------------------------

func TestEncode_EmptyInput(t *testing.T) {
	_, err := Encode(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Encode(nil) error = %v, want ErrEmptyInput", err)
	}

	_, err = Encode([]Sheet{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Encode([]) error = %v, want ErrEmptyInput", err)
	}
}

func TestEncode_EmptyColumns(t *testing.T) {
	_, err := Encode([]Sheet{{Name: "Vacia", Title: "Sin columnas"}})
	if !errors.Is(err, ErrEmptyColumns) {
		t.Fatalf("Encode error = %v, want ErrEmptyColumns", err)
	}
}

func TestEncode_EmptyColumnsAmongValidSheets(t *testing.T) {
	sheets := []Sheet{
		{Name: "Ok", Title: "t", Columns: Columns{{Label: "A", Width: 10}}},
		{Name: "Rota", Title: "t"},
	}
	_, err := Encode(sheets)
	if !errors.Is(err, ErrEmptyColumns) {
		t.Fatalf("Encode error = %v, want ErrEmptyColumns", err)
	}
}

func TestEncode_DuplicateSheetName(t *testing.T) {
	cols := Columns{{Label: "A", Width: 10}}
	_, err := Encode([]Sheet{
		{Name: "Doble", Columns: cols},
		{Name: "Doble", Columns: cols},
	})
	if !errors.Is(err, ErrDuplicateSheet) {
		t.Fatalf("Encode error = %v, want ErrDuplicateSheet", err)
	}
}

// ----------------------------------------------------------------------------
// Layout Tests
// ----------------------------------------------------------------------------

// openEncoded runs Encode and reopens the result with excelize so tests can
// inspect the produced workbook directly.
func openEncoded(t *testing.T, sheets []Sheet) *excelize.File {
	t.Helper()

	data, err := Encode(sheets)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening encoded workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestEncode_MultiSheetOrder(t *testing.T) {
	cols := Columns{{Label: "X", Width: 12}}
	f := openEncoded(t, []Sheet{
		{Name: "A", Title: "a", Columns: cols},
		{Name: "B", Title: "b", Columns: cols},
		{Name: "C", Title: "c", Columns: cols},
	})

	got := f.GetSheetList()
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("sheet list = %v, want %v (no extra blank leading sheet)", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sheet[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEncode_ConcreteScenario(t *testing.T) {
	f := openEncoded(t, []Sheet{{
		Name:  "Reporte1",
		Title: "Reporte de Ventas",
		Columns: Columns{
			{Label: "Producto", Width: 20},
			{Label: "Cantidad", Width: 15},
			{Label: "Precio", Width: 15},
		},
		Rows: []Row{{
			"Producto": String("Manzanas"),
			"Cantidad": Number(50),
			"Precio":   Number(1.5),
		}},
	}})

	// Title merged across row 1, columns 1-3.
	title, err := f.GetCellValue("Reporte1", "A1")
	if err != nil {
		t.Fatalf("GetCellValue(A1) error = %v", err)
	}
	if title != "Reporte de Ventas" {
		t.Errorf("A1 = %q, want %q", title, "Reporte de Ventas")
	}

	merged, err := f.GetMergeCells("Reporte1")
	if err != nil {
		t.Fatalf("GetMergeCells() error = %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("merge count = %d, want 1", len(merged))
	}
	if start, end := merged[0].GetStartAxis(), merged[0].GetEndAxis(); start != "A1" || end != "C1" {
		t.Errorf("merged range = %s:%s, want A1:C1", start, end)
	}

	// Headers in row 2, in column order.
	for cell, want := range map[string]string{"A2": "Producto", "B2": "Cantidad", "C2": "Precio"} {
		got, err := f.GetCellValue("Reporte1", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	// Data row in row 3.
	for cell, want := range map[string]string{"A3": "Manzanas", "B3": "50", "C3": "1.5"} {
		got, err := f.GetCellValue("Reporte1", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	// Configured column widths applied.
	width, err := f.GetColWidth("Reporte1", "A")
	if err != nil {
		t.Fatalf("GetColWidth(A) error = %v", err)
	}
	if width != 20 {
		t.Errorf("column A width = %v, want 20", width)
	}
}

func TestEncode_MissingAndExtraLabels(t *testing.T) {
	f := openEncoded(t, []Sheet{{
		Name:  "Parcial",
		Title: "t",
		Columns: Columns{
			{Label: "A", Width: 10},
			{Label: "B", Width: 10},
		},
		Rows: []Row{{
			"A":     String("presente"),
			"Extra": String("ignorada"),
		}},
	}})

	got, err := f.GetCellValue("Parcial", "B3")
	if err != nil {
		t.Fatalf("GetCellValue(B3) error = %v", err)
	}
	if got != "" {
		t.Errorf("B3 = %q, want empty cell for missing label", got)
	}

	// The extra label must not spill into a fourth column.
	got, err = f.GetCellValue("Parcial", "C3")
	if err != nil {
		t.Fatalf("GetCellValue(C3) error = %v", err)
	}
	if got != "" {
		t.Errorf("C3 = %q, want empty (labels outside columns are ignored)", got)
	}
}

func TestEncode_NoDataRows(t *testing.T) {
	f := openEncoded(t, []Sheet{{
		Name:    "Solo",
		Title:   "Encabezados",
		Columns: Columns{{Label: "A", Width: 10}},
	}})

	got, err := f.GetCellValue("Solo", "A3")
	if err != nil {
		t.Fatalf("GetCellValue(A3) error = %v", err)
	}
	if got != "" {
		t.Errorf("A3 = %q, want empty", got)
	}
}

// worksheetXML extracts one worksheet's raw XML from an encoded workbook, for
// assertions on markup excelize exposes no getter for.
func worksheetXML(t *testing.T, workbook []byte, path string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(workbook), int64(len(workbook)))
	if err != nil {
		t.Fatalf("opening workbook archive: %v", err)
	}
	for _, zf := range zr.File {
		if zf.Name != path {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", path, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		return string(data)
	}
	t.Fatalf("%s not found in workbook archive", path)
	return ""
}

func TestEncode_AutoFilterRange(t *testing.T) {
	cols := Columns{
		{Label: "Producto", Width: 20},
		{Label: "Cantidad", Width: 15},
	}
	tests := []struct {
		name    string
		rows    []Row
		wantRef string
	}{
		{"with data rows", []Row{
			{"Producto": String("Manzanas"), "Cantidad": Number(50)},
			{"Producto": String("Peras"), "Cantidad": Number(30)},
		}, "A2:B4"},
		// Without data the filter covers just the header row.
		{"headers only", nil, "A2:B2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode([]Sheet{{
				Name:    "Filtro",
				Title:   "t",
				Columns: cols,
				Rows:    tt.rows,
			}})
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			xml := worksheetXML(t, data, "xl/worksheets/sheet1.xml")
			if !strings.Contains(xml, `<autoFilter ref="`+tt.wantRef+`"`) {
				t.Errorf("worksheet XML has no auto-filter over %s", tt.wantRef)
			}
		})
	}
}
