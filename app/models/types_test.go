package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("payment_date", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.Format("2006-01-02"))

	_, err = ParseDateOnly("payment_date", "01/06/2024")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "payment_date", vErr.Field)

	_, err = ParseDateOnly("payment_date", "")
	assert.ErrorAs(t, err, &vErr)

	_, err = ParseDateOnly("payment_date", "2024-13-40")
	assert.ErrorAs(t, err, &vErr)
}

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d, err := ParseDateOnly("date", "2025-01-15")
	require.NoError(t, err)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-15"`, string(data))

	var parsed DateOnly
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.Equal(t, d.Time, parsed.Time)
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("amount", 500)
	require.NoError(t, err)
	assert.Equal(t, 500.0, v)

	var vErr *ValidationError
	_, err = ParseAmount("amount", 0)
	assert.ErrorAs(t, err, &vErr)

	_, err = ParseAmount("amount", -10)
	assert.ErrorAs(t, err, &vErr)

	// Fee structure rows may be free.
	v, err = ParseNonNegativeAmount("amount", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = ParseNonNegativeAmount("amount", -1)
	assert.ErrorAs(t, err, &vErr)
}

func TestParseAmountString(t *testing.T) {
	v, err := ParseAmountString("amount", " 1250.50 ")
	require.NoError(t, err)
	assert.Equal(t, 1250.50, v)

	var vErr *ValidationError
	_, err = ParseAmountString("amount", "abc")
	assert.ErrorAs(t, err, &vErr)
}

func TestParseReceiptNo(t *testing.T) {
	got, err := ParseReceiptNo(" RCP-2024/0001 ")
	require.NoError(t, err)
	assert.Equal(t, "RCP-2024/0001", got)

	var vErr *ValidationError
	_, err = ParseReceiptNo("")
	assert.ErrorAs(t, err, &vErr)

	_, err = ParseReceiptNo("RCP 0001")
	assert.ErrorAs(t, err, &vErr)

	long := make([]byte, 41)
	for i := range long {
		long[i] = 'A'
	}
	_, err = ParseReceiptNo(string(long))
	assert.ErrorAs(t, err, &vErr)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, Present.Valid())
	assert.True(t, Late.Valid())
	assert.False(t, AttendanceStatus("excused").Valid())
	assert.False(t, AttendanceStatus("").Valid())

	assert.True(t, MethodCash.Valid())
	assert.True(t, MethodDemandDraft.Valid())
	assert.False(t, PaymentMethod("card").Valid())

	assert.True(t, FeeTuition.Valid())
	assert.True(t, FeeOther.Valid())
	assert.False(t, FeeType("Hostel").Valid())
}
