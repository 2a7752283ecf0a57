package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYearLabel(t *testing.T) {
	assert.NoError(t, ValidateYearLabel("2024-2025"))
	assert.NoError(t, ValidateYearLabel("1999-2000"))

	var vErr *ValidationError
	assert.ErrorAs(t, ValidateYearLabel("2024"), &vErr)
	assert.ErrorAs(t, ValidateYearLabel("2024/2025"), &vErr)
	assert.ErrorAs(t, ValidateYearLabel("24-25"), &vErr)
	assert.ErrorAs(t, ValidateYearLabel(""), &vErr)

	// Years must be consecutive.
	err := ValidateYearLabel("2024-2026")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "label", vErr.Field)
	assert.ErrorAs(t, ValidateYearLabel("2025-2024"), &vErr)
	assert.ErrorAs(t, ValidateYearLabel("2024-2024"), &vErr)
}

func TestValidateYearDates(t *testing.T) {
	start, err := ParseDateOnly("start_date", "2024-06-01")
	require.NoError(t, err)
	end, err := ParseDateOnly("end_date", "2025-05-31")
	require.NoError(t, err)

	assert.NoError(t, ValidateYearDates(start, end))

	var vErr *ValidationError
	assert.ErrorAs(t, ValidateYearDates(end, start), &vErr)
	assert.ErrorAs(t, ValidateYearDates(start, start), &vErr)
}
