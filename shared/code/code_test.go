package code_test

import (
	"regexp"
	"testing"
	"time"
	"tourdesk/shared/code"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	day := time.Date(2026, 4, 30, 8, 0, 0, 0, time.UTC)

	assert.Regexp(t, regexp.MustCompile(`^BK-20260430-[0-9A-F]{6}$`), code.Booking(day))
	assert.Regexp(t, regexp.MustCompile(`^TT-[0-9A-F]{6}$`), code.TourTemplate())
	assert.Regexp(t, regexp.MustCompile(`^TI-260430-[0-9A-F]{4}$`), code.TourInstance(day))
}

func TestRandomLength(t *testing.T) {
	assert.Len(t, code.Random(40), 40)
	assert.NotEqual(t, code.Random(8), code.Random(8))
}
