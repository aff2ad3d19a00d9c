package landing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealObserver_Threshold(t *testing.T) {
	o := NewRevealObserver(DefaultRevealThreshold)
	o.Observe(Sections()...)

	assert.False(t, o.Intersect("pricing", 0.05))
	assert.False(t, o.Revealed("pricing"))

	assert.True(t, o.Intersect("pricing", 0.1))
	assert.True(t, o.Revealed("pricing"))
}

func TestRevealObserver_Monotonic(t *testing.T) {
	o := NewRevealObserver(DefaultRevealThreshold)
	o.Observe("hero", "features")

	require.True(t, o.Intersect("hero", 1))
	assert.False(t, o.Intersect("hero", 1), "second reveal is a no-op")
	assert.False(t, o.Intersect("hero", 0))
	assert.True(t, o.Revealed("hero"))

	assert.True(t, o.Disconnect())
	assert.True(t, o.Revealed("hero"), "disconnect keeps revealed sections")
}

func TestRevealObserver_UnwatchedSection(t *testing.T) {
	o := NewRevealObserver(DefaultRevealThreshold)
	o.Observe("hero")
	assert.False(t, o.Intersect("contact", 1))
	assert.Empty(t, o.RevealedSections())
}

func TestRevealObserver_DisconnectOnce(t *testing.T) {
	tests := []struct {
		name     string
		sections []string
	}{
		{"no sections", nil},
		{"one section", []string{"hero"}},
		{"all sections", Sections()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewRevealObserver(DefaultRevealThreshold)
			o.Observe(tt.sections...)

			assert.True(t, o.Disconnect())
			assert.False(t, o.Disconnect())
			assert.False(t, o.Observing())

			o.Observe("hero")
			assert.False(t, o.Intersect("hero", 1))
			assert.Empty(t, o.Watched())
		})
	}
}

func TestRevealObserver_JSONKeepsState(t *testing.T) {
	o := NewRevealObserver(DefaultRevealThreshold)
	o.Observe(Sections()...)
	o.Intersect("demo", 0.5)

	data, err := json.Marshal(o)
	require.NoError(t, err)

	var decoded RevealObserver
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Observing())
	assert.True(t, decoded.Revealed("demo"))
	assert.Equal(t, Sections(), decoded.Watched())
	assert.InDelta(t, DefaultRevealThreshold, decoded.Threshold(), 1e-9)
}
