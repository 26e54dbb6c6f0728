package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-01-15 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", d.String())

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestDateOf_DropsClock(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	d := DateOf(time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, NewDate(2024, 3, 10), d)
}

func TestDate_Between(t *testing.T) {
	start := NewDate(2024, 1, 10)
	end := NewDate(2024, 1, 20)

	assert.True(t, start.Between(start, end))
	assert.True(t, end.Between(start, end))
	assert.False(t, start.AddDays(-1).Between(start, end))
	assert.False(t, end.AddDays(1).Between(start, end))
	assert.True(t, start.Between(start, start))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		When Date `json:"when"`
	}
	out, err := json.Marshal(payload{When: NewDate(2024, 2, 29)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"when":"2024-02-29"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"when":"2024-12-31"}`), &in))
	assert.Equal(t, NewDate(2024, 12, 31), in.When)

	assert.Error(t, json.Unmarshal([]byte(`{"when":"31.12.2024"}`), &in))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-01", d.String())

	require.NoError(t, d.Scan("2024-06-02"))
	assert.Equal(t, "2024-06-02", d.String())

	assert.Error(t, d.Scan(42))
}
