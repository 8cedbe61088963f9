package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLocationIsWIT(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, offset := ToLocal(at).Zone()
	assert.Equal(t, 9*60*60, offset)
	assert.True(t, ToLocal(time.Time{}).IsZero())
}

func TestSetTimezone(t *testing.T) {
	prev := Location()
	t.Cleanup(func() { appLoc.Store(prev) })

	require.Error(t, SetTimezone("Nope/Zone"))
	assert.Equal(t, prev, Location())

	require.NoError(t, SetTimezone("UTC"))
	_, offset := Now().Zone()
	assert.Equal(t, 0, offset)
}
