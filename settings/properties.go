package settings

// PropertyKind is the editor widget a property is shown with.
type PropertyKind uint8

const (
	// KindText is a single-line text field.
	KindText PropertyKind = iota
	// KindInt is an integer field with a range.
	KindInt
	// KindInfo is read-only help text.
	KindInfo
)

// String returns the kind name.
func (k PropertyKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Property describes one entry of a settings panel.
type Property struct {
	Key   string
	Label string
	Kind  PropertyKind

	// Min, Max and Step apply to KindInt.
	Min, Max, Step int
}

// Properties returns the settings panel, in display order.
func Properties() []Property {
	return []Property{
		{Key: "seed", Label: "Seed", Kind: KindText},
		{Key: "width", Label: "Width (1920 recommended)", Kind: KindInt, Min: MinDimension, Max: MaxWidth, Step: 1},
		{Key: "height", Label: "Height (1080 recommended)", Kind: KindInt, Min: MinDimension, Max: MaxHeight, Step: 1},
		{Key: "cell_size_x", Label: "Cell width (16 recommended)", Kind: KindInt, Min: MinDimension, Max: MaxCellSize, Step: 1},
		{Key: "cell_size_y", Label: "Cell height (16 recommended)", Kind: KindInt, Min: MinDimension, Max: MaxCellSize, Step: 1},
		{
			Key:   "help_seed",
			Label: "Numeric seeds between 0 and 4294967295 are used as is. Other numbers and text are hashed into a seed.",
			Kind:  KindInfo,
		},
		{
			Key:   "help_cells",
			Label: "Cell sizes that are multiples of 16 are recommended.",
			Kind:  KindInfo,
		},
	}
}
