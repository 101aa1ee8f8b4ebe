package sheet

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Decode reads an xlsx workbook and reconstructs its sheets by inverting the
// layout convention: A1 is the title, row 2 holds the headers, data runs from
// row 3 down.
//
// Both the header scan and the data scan are sentinel-stop scans: they
// terminate at the first empty cell (first empty header cell, first data row
// with an empty first column) rather than scanning to a known bound. A gap
// inside an otherwise populated region therefore silently truncates the
// result. That is the positional contract, not a defect: the decoder cannot
// tell a deliberate blank from the end of the table.
//
// Fails with ErrInvalidFormat when the bytes are not a parseable workbook;
// everything else wraps ErrDecode.
func Decode(workbook []byte) ([]Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		s, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrDecode, name, err)
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

func readSheet(f *excelize.File, name string) (Sheet, error) {
	title, err := f.GetCellValue(name, "A1")
	if err != nil {
		return Sheet{}, err
	}

	cols, err := readColumns(f, name)
	if err != nil {
		return Sheet{}, err
	}

	rows, err := readRows(f, name, cols)
	if err != nil {
		return Sheet{}, err
	}

	return Sheet{Name: name, Title: title, Columns: cols, Rows: rows}, nil
}

// readColumns scans the header row left to right until the first empty cell
// and pairs each label with its column width. Columns that never had an
// explicit width get DefaultColumnWidth.
func readColumns(f *excelize.File, name string) (Columns, error) {
	var cols Columns
	for col := 1; ; col++ {
		cell, err := cellRef(col, headerRow)
		if err != nil {
			return nil, err
		}
		label, err := f.GetCellValue(name, cell)
		if err != nil {
			return nil, err
		}
		if label == "" {
			return cols, nil
		}

		colID, err := colRef(col)
		if err != nil {
			return nil, err
		}
		width, err := f.GetColWidth(name, colID)
		if err != nil {
			return nil, err
		}
		if width == unsetColWidth {
			width = DefaultColumnWidth
		}
		cols = append(cols, Column{Label: label, Width: width})
	}
}

// readRows scans downward from the first data row. A row whose first column
// is empty ends the table; that row and everything below it are dropped.
func readRows(f *excelize.File, name string, cols Columns) ([]Row, error) {
	rows := []Row{}
	for rowNum := dataStartRow; ; rowNum++ {
		first, err := cellRef(1, rowNum)
		if err != nil {
			return nil, err
		}
		sentinel, err := f.GetCellValue(name, first)
		if err != nil {
			return nil, err
		}
		if sentinel == "" {
			return rows, nil
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			cell, err := cellRef(i+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := readValue(f, name, cell)
			if err != nil {
				return nil, err
			}
			row[col.Label] = v
		}
		rows = append(rows, row)
	}
}

// readValue reads one cell as a typed scalar. The xlsx cell type drives the
// mapping: boolean cells become Bool, numeric cells become Number, string
// cells stay String, empty cells are Null. Numbers stored as text stay text,
// so a value's type survives a round trip through the workbook.
func readValue(f *excelize.File, name, cell string) (Value, error) {
	raw, err := f.GetCellValue(name, cell)
	if err != nil {
		return Value{}, err
	}
	if raw == "" {
		return Null(), nil
	}

	ct, err := f.GetCellType(name, cell)
	if err != nil {
		return Value{}, err
	}

	switch ct {
	case excelize.CellTypeBool:
		return Bool(raw == "TRUE"), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// Numeric cells carry no explicit type attribute in the file, so
		// they surface as unset. Anything unparseable falls back to text.
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return Number(n), nil
		}
		return String(raw), nil
	default:
		return String(raw), nil
	}
}
