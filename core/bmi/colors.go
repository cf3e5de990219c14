package bmi

// ColorToken is a presentation hint for a category. It carries no medical meaning.
type ColorToken string

const (
	ColorBlue    ColorToken = "blue"
	ColorGreen   ColorToken = "green"
	ColorEmerald ColorToken = "emerald"
	ColorYellow  ColorToken = "yellow"
	ColorRed     ColorToken = "red"
)

var (
	// underweight adults are shown in green, not amber.
	adultColors = map[AdultCategory]ColorToken{
		Subponderal:   ColorGreen,
		Normal:        ColorEmerald,
		Supraponderal: ColorYellow,
		Obezitate:     ColorRed,
	}

	pediatricColors = map[PediatricCategory]ColorToken{
		ChildUnderweight:     ColorBlue,
		ChildNormal:          ColorGreen,
		ChildOverweightRisk:  ColorYellow,
		ChildOverweightObese: ColorRed,
	}
)

func (c AdultCategory) Color() ColorToken {
	return adultColors[c]
}

func (c PediatricCategory) Color() ColorToken {
	return pediatricColors[c]
}
