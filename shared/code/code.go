// Package code generates the human-readable reference codes printed on
// tours and bookings.
package code

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prefixBooking      = "BK"
	prefixTourTemplate = "TT"
	prefixTourInstance = "TI"
)

// Random returns n uppercase hexadecimal characters.
func Random(n int) string {
	var builder strings.Builder

	for builder.Len() < n {
		builder.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}

	return strings.ToUpper(builder.String()[:n])
}

// Booking returns BK-YYYYMMDD-XXXXXX.
func Booking(now time.Time) string {
	return strings.Join([]string{prefixBooking, now.Format("20060102"), Random(6)}, "-")
}

// TourTemplate returns TT-XXXXXX.
func TourTemplate() string {
	return strings.Join([]string{prefixTourTemplate, Random(6)}, "-")
}

// TourInstance returns TI-YYMMDD-XXXX keyed on the departure date.
func TourInstance(departure time.Time) string {
	return strings.Join([]string{prefixTourInstance, departure.Format("060102"), Random(4)}, "-")
}
