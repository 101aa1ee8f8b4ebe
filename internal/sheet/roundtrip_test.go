package sheet

import (
	"reflect"
	"testing"
)

// The encoder and decoder are inverses of the same layout convention, so
// decode(encode(x)) must reproduce x for well-formed input with non-null
// values.

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		sheets []Sheet
	}{
		{
			name: "single sheet single row",
			sheets: []Sheet{{
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
			}},
		},
		{
			name: "multiple sheets",
			sheets: []Sheet{
				{
					Name:    "Ventas",
					Title:   "Ventas 2024",
					Columns: Columns{{Label: "Mes", Width: 14}, {Label: "Total", Width: 12}},
					Rows: []Row{
						{"Mes": String("Enero"), "Total": Number(1200)},
						{"Mes": String("Febrero"), "Total": Number(980.75)},
					},
				},
				{
					Name:    "Inventario",
					Title:   "Inventario actual",
					Columns: Columns{{Label: "Articulo", Width: 25}, {Label: "Activo", Width: 10}},
					Rows: []Row{
						{"Articulo": String("Caja"), "Activo": Bool(true)},
						{"Articulo": String("Palet"), "Activo": Bool(false)},
					},
				},
			},
		},
		{
			name: "headers only",
			sheets: []Sheet{{
				Name:    "Plantilla",
				Title:   "Solo encabezados",
				Columns: Columns{{Label: "Campo", Width: 18}},
				Rows:    []Row{},
			}},
		},
		{
			name: "empty title",
			sheets: []Sheet{{
				Name:    "SinTitulo",
				Columns: Columns{{Label: "A", Width: 11}},
				Rows:    []Row{{"A": String("x")}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.sheets)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if !reflect.DeepEqual(got, tt.sheets) {
				t.Errorf("round trip mismatch:\n got  %#v\n want %#v", got, tt.sheets)
			}
		})
	}
}

func TestRoundTrip_WidthsPreserved(t *testing.T) {
	in := []Sheet{{
		Name:  "Anchos",
		Title: "t",
		Columns: Columns{
			{Label: "Estrecha", Width: 5},
			{Label: "Ancha", Width: 42.5},
		},
		Rows: []Row{},
	}}

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	for i, col := range got[0].Columns {
		if col.Width != in[0].Columns[i].Width {
			t.Errorf("column %q width = %v, want %v", col.Label, col.Width, in[0].Columns[i].Width)
		}
	}
}
