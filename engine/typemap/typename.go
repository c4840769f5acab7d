package typemap

// -----------------------------------------------------------------------------
// TypeName
// -----------------------------------------------------------------------------

// TypeName is a tagged variant over the value found in a component I/O
// type position: either a string type name or something else. Authored
// documents can carry non-strings there, so classification operates on
// the variant instead of inspecting runtime types at every call site.
type TypeName struct {
	value    string
	isString bool
}

// Name tags a string type name.
func Name(s string) TypeName {
	return TypeName{value: s, isString: true}
}

// FromValue tags an arbitrary decoded value. Anything but a string
// becomes the non-string variant, including nil.
func FromValue(v any) TypeName {
	if s, ok := v.(string); ok {
		return Name(s)
	}
	return TypeName{}
}

func (t TypeName) IsString() bool {
	return t.isString
}

func (t TypeName) Value() string {
	return t.value
}
