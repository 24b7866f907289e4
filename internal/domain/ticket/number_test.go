package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNumberPrefix(t *testing.T) {
	jan := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "FM-2025-01-", NumberPrefix(jan))

	dec := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "FM-2024-12-", NumberPrefix(dec))
}

func TestFormatNumber(t *testing.T) {
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "FM-2025-01-0001", FormatNumber(jan, 1))
	assert.Equal(t, "FM-2025-01-0042", FormatNumber(jan, 42))
	assert.Equal(t, "FM-2025-01-9999", FormatNumber(jan, 9999))
	// sequences past four digits keep growing instead of wrapping
	assert.Equal(t, "FM-2025-01-10000", FormatNumber(jan, 10000))
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   int
		ok     bool
	}{
		{"first of month", "FM-2025-01-0001", 1, true},
		{"mid sequence", "FM-2025-01-0005", 5, true},
		{"five digit sequence", "FM-2025-01-10000", 10000, true},
		{"empty", "", 0, false},
		{"wrong prefix", "TK-2025-01-0001", 0, false},
		{"missing sequence", "FM-2025-01-", 0, false},
		{"garbage", "not-a-number", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := ParseSequence(tt.number)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, seq)
		})
	}
}

func TestNextSequence(t *testing.T) {
	tests := []struct {
		name   string
		latest string
		want   int
	}{
		{"empty bucket starts at 1", "", 1},
		{"follows the latest number", "FM-2025-01-0005", 6},
		{"first of month", "FM-2025-01-0001", 2},
		{"malformed latest starts over", "FM-garbage", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextSequence(tt.latest))
		})
	}
}
