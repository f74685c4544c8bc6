// Package format holds display formatting helpers for race data.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LapTime renders a lap time in milliseconds as "M:SS.mmm". Zero or negative
// input yields the renderable "N/A" fallback.
func LapTime(millis int64) string {
	if millis <= 0 {
		return "N/A"
	}
	minutes := millis / 60000
	seconds := float64(millis%60000) / 1000
	return fmt.Sprintf("%d:%06.3f", minutes, seconds)
}

// DriverName renders a driver name in "Family, Given" order.
func DriverName(givenName, familyName string) string {
	return familyName + ", " + givenName
}

// KphToMph converts kilometers per hour to miles per hour, rounded to two
// decimal places.
func KphToMph(kph float64) float64 {
	return math.Round(kph*0.621371*100) / 100
}

// LargeNumber renders an integer with thousands separators.
func LargeNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// PointsDifference renders the absolute gap between two point totals,
// prefixed with "+" when non-zero.
func PointsDifference(a, b float64) string {
	diff := math.Abs(a - b)
	if diff == 0 {
		return "0"
	}
	return "+" + strconv.FormatFloat(diff, 'f', -1, 64)
}
