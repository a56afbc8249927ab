package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cfg := Config("http://127.0.0.1:9999")

	assert.Equal(t, "http://127.0.0.1:9999", cfg.Backend.BaseURL)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Zero(t, cfg.Prefetch.Rate, "prefetch is unpaced")
	assert.Greater(t, cfg.Server.WriteTimeout, cfg.Backend.SearchTimeout)
}

func TestDecodeData(t *testing.T) {
	var out struct {
		LegID string `json:"leg_id"`
	}
	DecodeData(t, []byte(`{"success":true,"data":{"leg_id":"leg-1"}}`), &out)
	assert.Equal(t, "leg-1", out.LegID)
}

func TestDecodeError(t *testing.T) {
	detail := DecodeError(t, []byte(`{"success":false,"error":{"code":"not_found","message":"Resource not found"}}`))
	assert.Equal(t, "not_found", detail.Code)
	assert.Equal(t, "Resource not found", detail.Message)
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2026-03-14",
			wantYear:  2026,
			wantMonth: time.March,
			wantDay:   14,
		},
		{
			name:      "january date",
			dateStr:   "2026-01-01",
			wantYear:  2026,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2028-02-29",
			wantYear:  2028,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(62.5)
		require.NotNil(t, floatVal)
		assert.Equal(t, 62.5, *floatVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("leg-1")
		require.NotNil(t, strVal)
		assert.Equal(t, "leg-1", *strVal)
	})

	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(3)
		require.NotNil(t, intVal)
		assert.Equal(t, 3, *intVal)
	})
}
