package landing

import (
	"encoding/json"
	"fmt"
)

// Carousel tracks which item of a fixed-size sequence is shown. The index
// wraps in both directions and is always in [0, size).
type Carousel struct {
	index int
	size  int
}

// NewCarousel starts at index 0. size must be positive.
func NewCarousel(size int) Carousel {
	if size <= 0 {
		panic(fmt.Sprintf("landing: carousel size must be positive, got %d", size))
	}
	return Carousel{size: size}
}

func (c *Carousel) Next() {
	c.index = (c.index + 1) % c.size
}

func (c *Carousel) Previous() {
	c.index = (c.index - 1 + c.size) % c.size
}

// JumpTo sets the index directly. Callers guarantee 0 <= i < Len().
func (c *Carousel) JumpTo(i int) {
	c.index = i
}

func (c Carousel) Index() int {
	return c.index
}

func (c Carousel) Len() int {
	return c.size
}

type carouselJSON struct {
	Index int `json:"index"`
	Size  int `json:"size"`
}

func (c Carousel) MarshalJSON() ([]byte, error) {
	return json.Marshal(carouselJSON{Index: c.index, Size: c.size})
}

func (c *Carousel) UnmarshalJSON(data []byte) error {
	var raw carouselJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Size <= 0 || raw.Index < 0 || raw.Index >= raw.Size {
		return fmt.Errorf("invalid carousel state: index %d, size %d", raw.Index, raw.Size)
	}
	c.index, c.size = raw.Index, raw.Size
	return nil
}
