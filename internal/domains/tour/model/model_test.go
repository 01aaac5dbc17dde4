package model_test

import (
	"testing"
	"time"
	"tourdesk/internal/domains/tour/model"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestTourInstance_Slots(t *testing.T) {
	tests := []struct {
		name      string
		instance  model.TourInstance
		available *int
		full      bool
		fitsThree bool
	}{
		{name: "unbounded", instance: model.TourInstance{BookedCount: 40}, available: nil, full: false, fitsThree: true},
		{name: "room left", instance: model.TourInstance{Limit: intPtr(20), BookedCount: 17}, available: intPtr(3), full: false, fitsThree: true},
		{name: "exactly full", instance: model.TourInstance{Limit: intPtr(20), BookedCount: 20}, available: intPtr(0), full: true, fitsThree: false},
		{name: "overbooked floors at zero", instance: model.TourInstance{Limit: intPtr(10), BookedCount: 12}, available: intPtr(0), full: true, fitsThree: false},
		{name: "zero limit", instance: model.TourInstance{Limit: intPtr(0)}, available: intPtr(0), full: true, fitsThree: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.available, tt.instance.AvailableSlots())
			assert.Equal(t, tt.full, tt.instance.IsFull())
			assert.Equal(t, tt.fitsThree, tt.instance.HasCapacity(3))
		})
	}
}

func TestTourInstance_EffectivePrice(t *testing.T) {
	instance := model.TourInstance{
		PriceAdult:            floatPtr(5_000_000),
		TemplatePriceAdult:    floatPtr(4_500_000),
		TemplatePriceChildren: floatPtr(3_000_000),
	}

	assert.Equal(t, 5_000_000.0, *instance.EffectivePriceAdult())
	assert.Equal(t, 3_000_000.0, *instance.EffectivePriceChildren())
	assert.Nil(t, model.TourInstance{}.EffectivePriceAdult())
}

func TestTourInstance_Quote(t *testing.T) {
	total, ok := model.TourInstance{PriceAdult: floatPtr(100), PriceChildren: floatPtr(60)}.Quote(2, 3)
	assert.True(t, ok)
	assert.Equal(t, 380.0, total)

	total, ok = model.TourInstance{TemplatePriceAdult: floatPtr(100)}.Quote(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 300.0, total)

	_, ok = model.TourInstance{PriceChildren: floatPtr(60)}.Quote(1, 0)
	assert.False(t, ok)
}

func TestTourInstance_Overlaps(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC) }

	base := model.TourInstance{DepartureDate: day(10), ReturnDate: day(14)}

	assert.True(t, base.Overlaps(model.TourInstance{DepartureDate: day(14), ReturnDate: day(16)}))
	assert.True(t, base.Overlaps(model.TourInstance{DepartureDate: day(8), ReturnDate: day(20)}))
	assert.False(t, base.Overlaps(model.TourInstance{DepartureDate: day(15), ReturnDate: day(18)}))
	assert.False(t, base.Overlaps(model.TourInstance{DepartureDate: day(1), ReturnDate: day(9)}))
}

func TestTourInstanceStatus(t *testing.T) {
	assert.True(t, model.TourInstanceCancelled.Valid())
	assert.False(t, model.TourInstanceStatus(4).Valid())
	assert.Equal(t, "running", model.TourInstanceRunning.String())
}
