package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("production", &buf)

	log.Info().Str("booking_id", "b1").Msg("booked")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "doctorsportal", entry["service"])
	assert.Equal(t, "b1", entry["booking_id"])
	assert.Equal(t, "booked", entry["message"])
}

func TestNew_DevIsConsole(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("dev", &buf)

	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}
