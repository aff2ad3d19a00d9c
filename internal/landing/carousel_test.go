package landing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarousel_NextWrapsModuloLength(t *testing.T) {
	n := TestimonialCount()
	for start := 0; start < n; start++ {
		for steps := 0; steps <= 7; steps++ {
			c := NewCarousel(n)
			c.JumpTo(start)
			for i := 0; i < steps; i++ {
				c.Next()
			}
			assert.Equal(t, (start+steps)%n, c.Index(), "start=%d steps=%d", start, steps)
		}
	}
}

func TestCarousel_NextThenPreviousIsIdentity(t *testing.T) {
	n := TestimonialCount()
	for i := 0; i < n; i++ {
		c := NewCarousel(n)
		c.JumpTo(i)
		c.Next()
		c.Previous()
		assert.Equal(t, i, c.Index())

		c.Previous()
		c.Next()
		assert.Equal(t, i, c.Index())
	}
}

func TestCarousel_PreviousFromZero(t *testing.T) {
	c := NewCarousel(TestimonialCount())
	c.Previous()
	assert.Equal(t, 2, c.Index())

	for i := 0; i < 10; i++ {
		c.Previous()
		assert.GreaterOrEqual(t, c.Index(), 0)
		assert.Less(t, c.Index(), c.Len())
	}
}

func TestCarousel_Scenario(t *testing.T) {
	c := NewCarousel(TestimonialCount())
	assert.Equal(t, "Sarah Johnson", TestimonialAt(c.Index()).Name)

	c.Next()
	c.Next()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "Emily Davis", TestimonialAt(c.Index()).Name)

	c.Previous()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, "Mike Chen", TestimonialAt(c.Index()).Name)
}

func TestCarousel_JumpTo(t *testing.T) {
	c := NewCarousel(3)
	c.JumpTo(2)
	assert.Equal(t, 2, c.Index())
	c.Next()
	assert.Equal(t, 0, c.Index())
}

func TestNewCarousel_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewCarousel(0) })
}

func TestCarousel_JSONRejectsOutOfRange(t *testing.T) {
	var c Carousel
	require.NoError(t, json.Unmarshal([]byte(`{"index":1,"size":3}`), &c))
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 3, c.Len())

	assert.Error(t, json.Unmarshal([]byte(`{"index":3,"size":3}`), &c))
	assert.Error(t, json.Unmarshal([]byte(`{"index":-1,"size":3}`), &c))
	assert.Error(t, json.Unmarshal([]byte(`{"index":0,"size":0}`), &c))
}
