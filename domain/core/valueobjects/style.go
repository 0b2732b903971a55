package valueobjects

// Style is the full visual styling of a node or edge. The field set is
// closed so that command merge and comparison logic stays exhaustive;
// there is deliberately no open property map.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	FontSize    float64
	FontColor   string
	Opacity     float64
	Dashed      bool
}

// DefaultStyle returns the styling applied to freshly created entities
func DefaultStyle() Style {
	return Style{
		Fill:        "#ffffff",
		Stroke:      "#1a192b",
		StrokeWidth: 1,
		FontSize:    12,
		FontColor:   "#1a192b",
		Opacity:     1,
	}
}

// Equals checks if two styles are equal
func (s Style) Equals(other Style) bool {
	return s == other
}

// StylePatch is a partial style update. Nil fields are left untouched
// when the patch is applied, which is what lets successive patches merge
// shallowly into a single undo step.
type StylePatch struct {
	Fill        *string
	Stroke      *string
	StrokeWidth *float64
	FontSize    *float64
	FontColor   *string
	Opacity     *float64
	Dashed      *bool
}

// IsEmpty reports whether the patch changes nothing
func (p StylePatch) IsEmpty() bool {
	return p.Fill == nil && p.Stroke == nil && p.StrokeWidth == nil &&
		p.FontSize == nil && p.FontColor == nil && p.Opacity == nil &&
		p.Dashed == nil
}

// ApplyTo returns the style with the patch's set fields written over it
func (p StylePatch) ApplyTo(s Style) Style {
	if p.Fill != nil {
		s.Fill = *p.Fill
	}
	if p.Stroke != nil {
		s.Stroke = *p.Stroke
	}
	if p.StrokeWidth != nil {
		s.StrokeWidth = *p.StrokeWidth
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.FontColor != nil {
		s.FontColor = *p.FontColor
	}
	if p.Opacity != nil {
		s.Opacity = *p.Opacity
	}
	if p.Dashed != nil {
		s.Dashed = *p.Dashed
	}
	return s
}

// MergedWith returns a patch equivalent to applying p, then next.
// Fields set in next win; fields only set in p survive.
func (p StylePatch) MergedWith(next StylePatch) StylePatch {
	if next.Fill != nil {
		p.Fill = next.Fill
	}
	if next.Stroke != nil {
		p.Stroke = next.Stroke
	}
	if next.StrokeWidth != nil {
		p.StrokeWidth = next.StrokeWidth
	}
	if next.FontSize != nil {
		p.FontSize = next.FontSize
	}
	if next.FontColor != nil {
		p.FontColor = next.FontColor
	}
	if next.Opacity != nil {
		p.Opacity = next.Opacity
	}
	if next.Dashed != nil {
		p.Dashed = next.Dashed
	}
	return p
}
