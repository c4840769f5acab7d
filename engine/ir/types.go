package ir

// -----------------------------------------------------------------------------
// Primitive Type
// -----------------------------------------------------------------------------

// PrimitiveType is the IR parameter primitive type. Values follow the
// pipeline spec proto numbering.
type PrimitiveType int32

const (
	PrimitiveTypeUnspecified PrimitiveType = 0
	PrimitiveTypeInt         PrimitiveType = 1
	PrimitiveTypeDouble      PrimitiveType = 2
	PrimitiveTypeString      PrimitiveType = 3
)

func (p PrimitiveType) String() string {
	switch p {
	case PrimitiveTypeInt:
		return "INT"
	case PrimitiveTypeDouble:
		return "DOUBLE"
	case PrimitiveTypeString:
		return "STRING"
	default:
		return "PRIMITIVE_TYPE_UNSPECIFIED"
	}
}

func (p PrimitiveType) Number() int32 {
	return int32(p)
}

// MarshalYAML renders the proto enum name rather than the raw number.
func (p PrimitiveType) MarshalYAML() (any, error) {
	return p.String(), nil
}

func (p PrimitiveType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}
