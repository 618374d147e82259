package domain

import "fmt"

// precipitationFloor is the intensity (mm/h) below which an interval is
// treated as dry for bulletin purposes.
const precipitationFloor = 0.1

// MinutelyTitle returns the headline for the next-hour precipitation
// bulletin derived from the minutely series.
func MinutelyTitle(minutely []Minutely) string {
	starts, ends, wet := minutelyPhases(minutely)
	switch {
	case !wet:
		return "No precipitation"
	case starts == 0 && ends < 0:
		return "Precipitation continuing"
	case starts == 0:
		return "Precipitation ending"
	default:
		return "Precipitation expected"
	}
}

// MinutelyDescription returns the longer bulletin text matching
// MinutelyTitle.
func MinutelyDescription(minutely []Minutely) string {
	starts, ends, wet := minutelyPhases(minutely)
	switch {
	case !wet:
		return "No precipitation expected in the next hour."
	case starts == 0 && ends < 0:
		return "Precipitation will continue for at least the next hour."
	case starts == 0:
		return fmt.Sprintf("Precipitation ending in about %d minutes.", ends)
	case ends < 0:
		return fmt.Sprintf("Precipitation starting in about %d minutes.", starts)
	default:
		return fmt.Sprintf("Precipitation starting in about %d minutes and ending about %d minutes later.", starts, ends-starts)
	}
}

// minutelyPhases scans the series and returns the minute offsets at which
// precipitation starts and ends. starts is 0 when the first interval is
// already wet; ends is -1 when precipitation does not stop within the
// series; wet is false when no interval is wet at all.
func minutelyPhases(minutely []Minutely) (starts, ends int, wet bool) {
	starts, ends = -1, -1
	offset := 0
	for _, m := range minutely {
		isWet := m.PrecipitationIntensity != nil && *m.PrecipitationIntensity >= precipitationFloor
		if isWet && starts < 0 {
			starts = offset
		}
		if !isWet && starts >= 0 && ends < 0 {
			ends = offset
		}
		if isWet {
			// Precipitation resuming after a gap; report until the last wet interval.
			ends = -1
		}
		offset += m.MinuteInterval
	}
	return starts, ends, starts >= 0
}
