package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Encode builds an xlsx workbook from the given sheets and returns its bytes.
// Sheets appear in the workbook in slice order; the first sheet takes over the
// workbook's implicitly created worksheet so no blank leading sheet is left
// behind.
//
// Fails with ErrEmptyInput, ErrEmptyColumns, or ErrDuplicateSheet before any
// cell is written. Everything else wraps ErrEncode.
func Encode(sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}
	names := make(map[string]bool, len(sheets))
	for _, s := range sheets {
		if len(s.Columns) == 0 {
			return nil, fmt.Errorf("%w: sheet %q", ErrEmptyColumns, s.Name)
		}
		if names[s.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSheet, s.Name)
		}
		names[s.Name] = true
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	for i, s := range sheets {
		if err := writeSheet(f, styles, i, s); err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrEncode, s.Name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// styleSet holds the three style IDs every sheet uses.
type styleSet struct {
	title  int
	header int
	data   int
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	var st styleSet
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return st, err
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	if err != nil {
		return st, err
	}

	st.data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
	})
	return st, err
}

// writeSheet lays one sheet out: merged title in row 1, headers in row 2,
// data from row 3, and an auto-filter over the header plus data region.
func writeSheet(f *excelize.File, st styleSet, idx int, s Sheet) error {
	if idx == 0 {
		// A new workbook comes with one worksheet already; rename it.
		if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
			return err
		}
	} else {
		if _, err := f.NewSheet(s.Name); err != nil {
			return err
		}
	}

	n := len(s.Columns)
	titleEnd, err := cellRef(n, titleRow)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(s.Name, "A1", s.Title); err != nil {
		return err
	}
	if err := f.MergeCell(s.Name, "A1", titleEnd); err != nil {
		return err
	}
	if err := f.SetCellStyle(s.Name, "A1", titleEnd, st.title); err != nil {
		return err
	}

	for i, col := range s.Columns {
		cell, err := cellRef(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Name, cell, col.Label); err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Name, cell, cell, st.header); err != nil {
			return err
		}
		colID, err := colRef(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, colID, colID, col.Width); err != nil {
			return err
		}
	}

	for r, row := range s.Rows {
		rowNum := dataStartRow + r
		for i, col := range s.Columns {
			cell, err := cellRef(i+1, rowNum)
			if err != nil {
				return err
			}
			// Missing labels fall through to the zero Value, an empty cell.
			if err := f.SetCellValue(s.Name, cell, row[col.Label].cell()); err != nil {
				return err
			}
		}
		rowStart, err := cellRef(1, rowNum)
		if err != nil {
			return err
		}
		rowEnd, err := cellRef(n, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Name, rowStart, rowEnd, st.data); err != nil {
			return err
		}
	}

	// Filter spans the header row through the last data row. With no data
	// rows it covers just the headers.
	filterEnd, err := cellRef(n, headerRow+len(s.Rows))
	if err != nil {
		return err
	}
	return f.AutoFilter(s.Name, "A2:"+filterEnd, nil)
}
