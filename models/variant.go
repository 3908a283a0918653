package models

// Variant is the rendering layout the diary page uses for its snapshot grid.
type Variant int

const (
	// VariantUnknown covers a missing or unrecognized discriminator.
	VariantUnknown Variant = iota
	VariantList            // one span per 10-minute slot
	VariantGrid            // rows of headers sized by col-md-N
)

// ParseVariant maps a discriminator attribute value to a Variant.
func ParseVariant(value string) Variant {
	switch value {
	case "list":
		return VariantList
	case "grid":
		return VariantGrid
	default:
		return VariantUnknown
	}
}

func (v Variant) String() string {
	switch v {
	case VariantList:
		return "list"
	case VariantGrid:
		return "grid"
	default:
		return "unknown"
	}
}
