package sheet

import "github.com/xuri/excelize/v2"

// The layout convention. Both directions of the conversion rely on these row
// positions; the decoder has no way to detect a workbook that was laid out
// differently and will misread it.
const (
	titleRow     = 1
	headerRow    = 2
	dataStartRow = 3
)

const (
	// DefaultColumnWidth is substituted on decode for columns that never had
	// an explicit width set.
	DefaultColumnWidth = 10.0

	// unsetColWidth is what excelize reports for a column with no explicit
	// width (its built-in sheet default). Seeing it on decode means the width
	// was never set.
	unsetColWidth = 9.140625
)

// cellRef returns the A1-style reference for a 1-based column and row.
func cellRef(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}

// colRef returns the A1-style column name for a 1-based column index.
func colRef(col int) (string, error) {
	return excelize.ColumnNumberToName(col)
}
