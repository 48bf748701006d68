package timeline

// Decay maps a year onto the ambient backdrop parameters. Intensity is the
// normalized position year/years; opacity climbs linearly from 0.5 to 1.0
// across the century. Ghost mode widens the hue rotation from a third of
// the wheel to the full 360 degrees and saturates the color.
func Decay(year, years int, ghost bool) (opacity, hue, saturation float64) {
	intensity := float64(year) / float64(years)
	opacity = 0.5 + 0.5*intensity
	if ghost {
		return opacity, intensity * 360, 0.9
	}
	return opacity, intensity * 120, 0.55
}
