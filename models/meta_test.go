package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaAccessorsOnDecodedJSON(t *testing.T) {
	var m Meta
	require.NoError(t, json.Unmarshal([]byte(`{
		"mode": "fallback",
		"source": "Demo data",
		"size": 2048,
		"api_used": false,
		"base_price": 2300.5
	}`), &m))

	assert.Equal(t, ModeFallback, m.Mode())
	assert.Equal(t, "Demo data", m.Source())
	assert.Equal(t, 2048, m.Int("size"))
	assert.InDelta(t, 2300.5, m.Float("base_price"), 1e-9)
	assert.False(t, m.Bool("api_used"))
}

func TestMetaMissingAndMistypedKeys(t *testing.T) {
	m := Meta{"mode": 7, "count": "many"}

	assert.Empty(t, m.Mode())
	assert.Empty(t, m.String("absent"))
	assert.Zero(t, m.Int("count"))
	assert.Zero(t, m.Float("absent"))
	assert.False(t, m.Bool("absent"))
}

func TestSignalIsValid(t *testing.T) {
	assert.True(t, SignalBuy.IsValid())
	assert.True(t, SignalHold.IsValid())
	assert.True(t, SignalSell.IsValid())
	assert.False(t, Signal("hold").IsValid())
	assert.False(t, Signal("PANIC").IsValid())
	assert.False(t, Signal("").IsValid())
}
