package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, "2024-03-01", d.AddDays(1).String())

	for _, bad := range []string{"", "2024-2-29", "2023-02-29", "29/02/2024", "2024-02-29T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	d := DateOf(time.Date(2024, 3, 1, 23, 59, 0, 0, loc))
	assert.True(t, d.Equal(NewDate(2024, 3, 1)))
	assert.Equal(t, time.UTC, d.Location())
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Checkin Date `json:"checkin"`
	}

	b, err := json.Marshal(payload{Checkin: NewDate(2024, 3, 5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkin":"2024-03-05"}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkin":"2024-03-08"}`), &p))
	assert.True(t, p.Checkin.Equal(NewDate(2024, 3, 8)))

	assert.Error(t, json.Unmarshal([]byte(`{"checkin":"08-03-2024"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"checkin":20240308}`), &p))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.ScanDate(pgtype.Date{Time: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "2024-03-05", d.String())
	assert.Error(t, d.ScanDate(pgtype.Date{}))

	require.NoError(t, d.Scan("2024-03-06"))
	assert.Equal(t, "2024-03-06", d.String())
	require.NoError(t, d.Scan(time.Date(2024, 3, 7, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-07", d.String())
	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, 3, 9).DateValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, 9, v.Time.Day())
}
