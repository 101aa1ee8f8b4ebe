package sheet

import "errors"

// Error kinds raised by the converter. Encode and Decode wrap these with
// context, so match with errors.Is. The HTTP layer maps the validation-shaped
// kinds to client-error responses and the rest to server errors.
var (
	// ErrEmptyInput means no sheets were supplied to Encode.
	ErrEmptyInput = errors.New("sheet list is empty")

	// ErrEmptyColumns means a sheet has no columns to lay out; there is
	// nothing to merge the title across.
	ErrEmptyColumns = errors.New("sheet has no columns")

	// ErrDuplicateSheet means two sheets share a name. Sheet names identify
	// worksheets inside a workbook and must be unique.
	ErrDuplicateSheet = errors.New("duplicate sheet name")

	// ErrInvalidFormat means the input bytes are not a parseable xlsx
	// workbook.
	ErrInvalidFormat = errors.New("not a valid xlsx workbook")

	// ErrEncode wraps unexpected failures from the spreadsheet library while
	// building a workbook.
	ErrEncode = errors.New("workbook encoding failed")

	// ErrDecode wraps unexpected failures from the spreadsheet library while
	// reading a workbook.
	ErrDecode = errors.New("workbook decoding failed")
)
