package ticket

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Ticket numbers have the form FM-YYYY-MM-NNNN: a 4-digit zero-padded
// sequence that starts at 1 and resets each calendar month. The year-month
// grouping is the numbering bucket.

var numberPattern = regexp.MustCompile(`^FM-(\d{4})-(\d{2})-(\d+)$`)

// NumberPrefix returns the bucket prefix for the given time, e.g. "FM-2025-01-".
func NumberPrefix(now time.Time) string {
	return fmt.Sprintf("FM-%d-%02d-", now.Year(), int(now.Month()))
}

// FormatNumber builds a full ticket number for the given time and sequence.
func FormatNumber(now time.Time, sequence int) string {
	return fmt.Sprintf("%s%04d", NumberPrefix(now), sequence)
}

// ParseSequence extracts the trailing sequence from a ticket number.
// It returns 0 and false when the number does not match the expected form.
func ParseSequence(number string) (int, bool) {
	match := numberPattern.FindStringSubmatch(number)
	if match == nil {
		return 0, false
	}
	seq, err := strconv.Atoi(match[3])
	if err != nil {
		return 0, false
	}
	return seq, true
}

// NextSequence computes the sequence that follows the latest known number in
// a bucket. An empty or malformed latest number starts the bucket at 1.
func NextSequence(latest string) int {
	seq, ok := ParseSequence(latest)
	if !ok {
		return 1
	}
	return seq + 1
}
