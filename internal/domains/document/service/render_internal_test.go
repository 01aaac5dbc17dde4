package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain(t *testing.T) {
	assert.Equal(t, "Nguyen Van Duc", plain(" Nguyễn Văn Đức "))
	assert.Equal(t, "Ha Long", plain("Hạ Long"))
	assert.Equal(t, "-", orDash("  "))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 VND"},
		{999, "999 VND"},
		{1000, "1.000 VND"},
		{2500000, "2.500.000 VND"},
		{-1500, "-1.500 VND"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(tt.in))
	}
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "BK-1_a_b", safeFileName("BK-1 a/b"))
	assert.Equal(t, "NA", safeFileName(""))
}
