package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.UTC

	d, err := ParseDate("2024-06-01", loc)
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 1, d.Day())

	_, err = ParseDate("2024-02-31", loc)
	assert.Error(t, err, "impossible calendar dates must be rejected")

	_, err = ParseDate("not-a-date", loc)
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01", loc)
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	loc := time.UTC
	in := time.Date(2024, 6, 1, 15, 42, 7, 123, loc)

	out := NormalizeDate(in, loc)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, loc), out)

	// Normalizing twice is a no-op.
	assert.Equal(t, out, NormalizeDate(out, loc))
}
