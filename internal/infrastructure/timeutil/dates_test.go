package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAndParseDate(t *testing.T) {
	d := time.Date(2026, 3, 7, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-07", FormatDate(d))

	parsed, err := ParseDate("2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("07/03/2026")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-03", MonthKey(2026, 3))
	assert.Equal(t, "2026-12", MonthKey(2026, 12))
}

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		wantErr bool
	}{
		{"valid", 2026, 3, false},
		{"month zero", 2026, 0, true},
		{"month thirteen", 2026, 13, true},
		{"year too small", 1999, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonth(tt.year, tt.month)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestYearMonth(t *testing.T) {
	year, month, err := YearMonth("2026-11-30")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 11, month)

	_, _, err = YearMonth("2026-13-01")
	assert.Error(t, err)
}
