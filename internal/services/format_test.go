package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoordinate(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{12.345678, "12.3457"},
		{77.5946, "77.5946"},
		{10.0, "10.0000"},
		{0, "0.0000"},
		{-3.14159, "-3.1416"},
		{11.11111, "11.1111"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCoordinate(tc.in), "input %v", tc.in)
	}
}

// Boundary .xxxx5 inputs are decided by the stored binary double, not by the
// decimal literal: 1.00005 sits just above the midpoint, 2.00005 just below.
func TestFormatCoordinateBoundaries(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.00005, "1.0001"},
		{2.00005, "2.0000"},
		{0.12345, "0.1235"},
		{-7.00005, "-7.0000"},
		{9.99995, "10.0000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCoordinate(tc.in), "input %v", tc.in)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	ts := time.Date(2025, time.May, 26, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, "26/5/2025, 10:30:00 am", FormatTimestamp(ts, ist))

	evening := time.Date(2025, time.May, 26, 13, 45, 9, 0, time.UTC)
	assert.Equal(t, "26/5/2025, 7:15:09 pm", FormatTimestamp(evening, ist))

	assert.Equal(t, "26/5/2025, 5:00:00 am", FormatTimestamp(ts, time.UTC))

	// Single-digit day and month stay unpadded, as en-IN renders them.
	march := time.Date(2025, time.March, 4, 3, 31, 0, 0, time.UTC)
	assert.Equal(t, "4/3/2025, 9:01:00 am", FormatTimestamp(march, ist))
}
