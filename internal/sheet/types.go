// Package sheet converts between a JSON description of tabular data and an
// xlsx workbook. Every sheet follows one fixed layout: a merged title cell in
// row 1, column headers in row 2, and data rows from row 3 down.
// This package has no HTTP dependencies and can be used by any frontend.
package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Sheet describes one worksheet: its name, the title rendered across the top,
// the ordered columns with display widths, and the data rows.
type Sheet struct {
	Name    string  `json:"name"`
	Title   string  `json:"title"`
	Columns Columns `json:"column_widths"`
	Rows    []Row   `json:"data"`
}

// Column pairs a header label with its display width.
type Column struct {
	Label string
	Width float64
}

// Columns is the ordered column list of a sheet. Order defines the
// left-to-right cell order, so Columns serializes as a JSON object whose key
// order is preserved on both marshal and unmarshal. encoding/json maps would
// lose that order, hence the custom codec below.
type Columns []Column

// Labels returns the header labels in column order.
func (c Columns) Labels() []string {
	labels := make([]string, len(c))
	for i, col := range c {
		labels[i] = col.Label
	}
	return labels
}

// MarshalJSON renders the columns as a JSON object in column order.
func (c Columns) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(col.Width, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object token by token so that key order survives.
// Duplicate labels are rejected since a label identifies its column.
func (c *Columns) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("column_widths: expected JSON object, got %v", tok)
	}

	seen := make(map[string]bool)
	cols := Columns{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label := tok.(string)
		if seen[label] {
			return fmt.Errorf("column_widths: duplicate column %q", label)
		}
		seen[label] = true

		var width float64
		if err := dec.Decode(&width); err != nil {
			return fmt.Errorf("column_widths: width of %q: %w", label, err)
		}
		cols = append(cols, Column{Label: label, Width: width})
	}

	*c = cols
	return nil
}

// Row maps column labels to cell values. Labels not listed in the sheet's
// Columns are ignored when the sheet is encoded; a missing label renders as
// an empty cell.
type Row map[string]Value
