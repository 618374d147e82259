package domain

// MoonPhaseDescription maps a lunar phase angle in degrees to its English
// description. The angle is normalized into [0, 360).
func MoonPhaseDescription(angle int) string {
	a := ((angle % 360) + 360) % 360
	switch {
	case a == 0:
		return "New moon"
	case a < 90:
		return "Waxing crescent"
	case a == 90:
		return "First quarter"
	case a < 180:
		return "Waxing gibbous"
	case a == 180:
		return "Full moon"
	case a < 270:
		return "Waning gibbous"
	case a == 270:
		return "Third quarter"
	default:
		return "Waning crescent"
	}
}
