package tui

import (
	"fmt"
	"strings"

	"github.com/lox/numberduel/internal/search"
)

// TemperatureGauge renders how close a wrong guess landed, as a fraction of
// the full range. The cut-points are tuned so a near miss reads as hot and
// the far half of the range reads as cold.
func TemperatureGauge(guess, target, low, high int) string {
	distance := guess - target
	if distance < 0 {
		distance = -distance
	}
	span := high - low
	ratio := 1.0
	if span > 0 {
		ratio = float64(distance) / float64(span)
	}

	switch {
	case ratio < 0.03:
		return HotStyle.Render("SCORCHING HOT!")
	case ratio < 0.08:
		return HotStyle.Render("Burning!")
	case ratio < 0.15:
		return WarningStyle.Render("Very warm")
	case ratio < 0.25:
		return WarningStyle.Render("Warm")
	case ratio < 0.40:
		return ColdStyle.Render("Cool")
	case ratio < 0.60:
		return ColdStyle.Render("Cold")
	default:
		return ColdStyle.Render("Freezing!")
	}
}

// DirectionArrow renders which way the target lies and roughly how far,
// with more chevrons for bigger misses.
func DirectionArrow(guess, target int) string {
	magnitude := target - guess
	if magnitude < 0 {
		magnitude = -magnitude
	}
	repeat := 1
	switch {
	case magnitude > 30:
		repeat = 3
	case magnitude > 15:
		repeat = 2
	}

	if search.Compare(guess, target) == search.Lower {
		return ErrorStyle.Render(strings.Repeat("▼", repeat) + " Lower")
	}
	return SuccessStyle.Render(strings.Repeat("▲", repeat) + " Higher")
}

// FormatTime renders a duration in seconds as "12.3s" or "2m 3.5s".
func FormatTime(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds) / 60
	secs := seconds - float64(minutes)*60
	return fmt.Sprintf("%dm %.1fs", minutes, secs)
}
