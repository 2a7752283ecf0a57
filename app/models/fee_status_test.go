package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFeeStatus(t *testing.T) {
	// A student with no applicable fee structure rows is trivially paid.
	assert.Equal(t, StatusPaid, ComputeFeeStatus(0, 0))
	assert.Equal(t, StatusPaid, ComputeFeeStatus(1000, 1000))
	assert.Equal(t, StatusPaid, ComputeFeeStatus(1000, 1500)) // over-payment accepted
	assert.Equal(t, StatusPartial, ComputeFeeStatus(1000, 500))
	assert.Equal(t, StatusPending, ComputeFeeStatus(1000, 0))
}

func TestAttendancePercentage(t *testing.T) {
	pct, ok := AttendancePercentage(2, 3)
	assert.True(t, ok)
	assert.Equal(t, 66.67, pct)

	pct, ok = AttendancePercentage(10, 10)
	assert.True(t, ok)
	assert.Equal(t, 100.0, pct)

	pct, ok = AttendancePercentage(0, 5)
	assert.True(t, ok)
	assert.Equal(t, 0.0, pct)

	// No marked days is "no data", not a silent zero.
	pct, ok = AttendancePercentage(0, 0)
	assert.False(t, ok)
	assert.Equal(t, 0.0, pct)
}
