package dateconv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

func TestEpochAnchor(t *testing.T) {
	bs, err := ADToBS("1983-04-14")
	require.NoError(t, err)
	assert.Equal(t, "2040-01-01", bs)

	ad, err := BSToAD("2040-01-01")
	require.NoError(t, err)
	assert.Equal(t, "1983-04-14", ad)
}

func TestRoundTrip_ADToBSToAD(t *testing.T) {
	dates := []string{
		"1983-04-14",
		"1990-07-01",
		"2000-02-29",
		"2010-12-31",
		"2025-08-28",
	}
	for _, date := range dates {
		bs, err := ADToBS(date)
		require.NoError(t, err, date)
		ad, err := BSToAD(bs)
		require.NoError(t, err, bs)
		assert.Equal(t, date, ad)
	}
}

func TestRoundTrip_WalksWholeYears(t *testing.T) {
	// Every day of one BS year maps back to itself.
	for month := 1; month <= 12; month++ {
		for day := 1; day <= bsMonthLengths[2050][month-1]; day++ {
			bs := BSDate{Year: 2050, Month: month, Day: day}
			ad, err := ToGregorian(bs)
			require.NoError(t, err)
			back, err := FromGregorian(ad)
			require.NoError(t, err)
			assert.Equal(t, bs, back)
		}
	}
}

func TestParseBS_Validation(t *testing.T) {
	_, err := ParseBS("2050/01/01")
	assert.ErrorIs(t, err, domain.ErrInvalidDatePattern)

	_, err = ParseBS("2050-13-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDatePattern)

	_, err = ParseBS("2050-01-33")
	assert.ErrorIs(t, err, domain.ErrInvalidDatePattern)

	_, err = ParseBS("1999-01-01")
	assert.ErrorIs(t, err, domain.ErrDateOutOfRange)

	d, err := ParseBS("2050-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2050-01-01", d.String())
}

func TestADToBS_Validation(t *testing.T) {
	_, err := ADToBS("14-04-1983")
	assert.ErrorIs(t, err, domain.ErrInvalidDatePattern)

	// A calendar-impossible day is rejected even though it matches the pattern.
	_, err = ADToBS("2021-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidDatePattern)

	// Before the table's epoch.
	_, err = ADToBS("1970-01-01")
	assert.ErrorIs(t, err, domain.ErrDateOutOfRange)
}

func TestFromGregorian_BeyondTable(t *testing.T) {
	_, err := FromGregorian(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrDateOutOfRange)
}
