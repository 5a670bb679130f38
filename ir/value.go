package ir

import "time"

type ValueKind int

const (
	IntegerKind ValueKind = iota
	StringKind
	FloatKind
	BooleanKind
	DateTimeKind
	ArrayKind
	InlineTableKind
)

func (k ValueKind) String() string {
	return map[ValueKind]string{
		IntegerKind:     "integer",
		StringKind:      "string",
		FloatKind:       "float",
		BooleanKind:     "boolean",
		DateTimeKind:    "datetime",
		ArrayKind:       "array",
		InlineTableKind: "inline-table",
	}[k]
}

// Value is a leaf scalar or inline composite.  Scalars carry both the
// decoded value and Raw, the exact source substring, which is what gets
// re-emitted; decoding never changes how a value renders.
type Value struct {
	Kind  ValueKind
	Decor Decor
	Raw   string

	Int   int64
	Float float64
	Str   string
	Bool  bool
	Time  time.Time

	Array  *Array
	Inline *InlineTable
}

// Array is an inline [ ... ] value.  Each element's decor carries the
// trivia around it; Trailing holds the text between the last comma (or
// last element) and the closing bracket.
type Array struct {
	Values        []*Value
	Trailing      string
	TrailingComma bool
}

// InlineTable is a { ... } value.  Pair items are always values.
// Preamble holds the whitespace of an empty table.
type InlineTable struct {
	Pairs    []*KeyValue
	Preamble string
}

func (v *Value) AsString() (string, bool) {
	if v.Kind != StringKind {
		return "", false
	}
	return v.Str, true
}

func (v *Value) AsInteger() (int64, bool) {
	if v.Kind != IntegerKind {
		return 0, false
	}
	return v.Int, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.Kind != BooleanKind {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) AsArray() (*Array, bool) {
	if v.Kind != ArrayKind {
		return nil, false
	}
	return v.Array, true
}

// IsStringArray reports whether every element of an array value is a
// string.  Non-arrays report false.
func (v *Value) IsStringArray() bool {
	arr, ok := v.AsArray()
	if !ok {
		return false
	}
	for _, el := range arr.Values {
		if el.Kind != StringKind {
			return false
		}
	}
	return true
}

func FromString(s, raw string) *Value {
	return &Value{Kind: StringKind, Str: s, Raw: raw}
}

func FromInteger(i int64, raw string) *Value {
	return &Value{Kind: IntegerKind, Int: i, Raw: raw}
}

func FromFloat(f float64, raw string) *Value {
	return &Value{Kind: FloatKind, Float: f, Raw: raw}
}

func FromBool(b bool, raw string) *Value {
	return &Value{Kind: BooleanKind, Bool: b, Raw: raw}
}

func FromDateTime(t time.Time, raw string) *Value {
	return &Value{Kind: DateTimeKind, Time: t, Raw: raw}
}
