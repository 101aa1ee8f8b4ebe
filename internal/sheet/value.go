package sheet

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind discriminates the scalar types a cell value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a closed scalar sum type for cell contents: string, number,
// boolean, or null. Keeping the set closed (instead of an open any) makes
// round-trip behavior exhaustively testable.
//
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Null returns the null Value.
func Null() Value { return Value{} }

// Kind reports which scalar type the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string content; zero value unless Kind is KindString.
func (v Value) Str() string { return v.str }

// Num returns the numeric content; zero value unless Kind is KindNumber.
func (v Value) Num() float64 { return v.num }

// Bool returns the boolean content; zero value unless Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// cell returns the value in the shape the spreadsheet library expects.
// Null renders as an empty cell.
func (v Value) cell() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	default:
		return ""
	}
}

// MarshalJSON renders the underlying scalar directly (no wrapper object).
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts any JSON scalar. Objects and arrays are rejected:
// cells hold scalars only.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Number(n)
		return nil
	}
}
