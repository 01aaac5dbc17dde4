package timezone_test

import (
	"testing"
	"time"
	"tourdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	require.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestToday(t *testing.T) {
	today := timezone.Today()
	y, m, d := timezone.Now().Date()

	assert.Equal(t, time.UTC, today.Location())
	assert.Equal(t, time.Date(y, m, d, 0, 0, 0, 0, time.UTC), today)
}

func TestParseDate(t *testing.T) {
	departure, err := timezone.ParseDate("2026-04-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC), departure)

	_, err = timezone.ParseDate("30/04/2026")
	assert.Error(t, err)
}

func TestParseDatePtr(t *testing.T) {
	assert.Nil(t, timezone.ParseDatePtr(""))
	assert.Nil(t, timezone.ParseDatePtr("not a date"))

	birth := timezone.ParseDatePtr("1990-09-02")
	require.NotNil(t, birth)
	assert.Equal(t, "1990-09-02", *timezone.FormatDate(birth))
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, timezone.FormatDate(nil))

	late := time.Date(2026, time.January, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-01", *timezone.FormatDate(&late))
}

func TestParseAndFormatInAppZone(t *testing.T) {
	parsed, err := timezone.Parse(time.DateTime, "2026-02-17 08:00:00")
	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2026-02-17 08:00:00", timezone.Format(parsed, time.DateTime))
}
