package landing

import (
	"encoding/json"
	"slices"
)

// DefaultRevealThreshold is the visible fraction at which a section reveals.
const DefaultRevealThreshold = 0.1

// RevealObserver marks sections as revealed the first time they become
// visible enough. A revealed section never reverts. Once disconnected the
// observer ignores further observations and intersections.
type RevealObserver struct {
	threshold float64
	watched   []string
	revealed  []string
	closed    bool
}

func NewRevealObserver(threshold float64) RevealObserver {
	return RevealObserver{threshold: threshold}
}

// Observe starts watching sections. Sections already watched are ignored.
func (o *RevealObserver) Observe(sections ...string) {
	if o.closed {
		return
	}
	for _, s := range sections {
		if !slices.Contains(o.watched, s) {
			o.watched = append(o.watched, s)
		}
	}
}

// Intersect records that section is ratio visible and reports whether this
// call revealed it.
func (o *RevealObserver) Intersect(section string, ratio float64) bool {
	if o.closed || ratio < o.threshold {
		return false
	}
	if !slices.Contains(o.watched, section) || slices.Contains(o.revealed, section) {
		return false
	}
	o.revealed = append(o.revealed, section)
	return true
}

// Disconnect stops all observation, however many sections were watched. It
// returns true only for the call that tore the observer down.
func (o *RevealObserver) Disconnect() bool {
	if o.closed {
		return false
	}
	o.closed = true
	o.watched = nil
	return true
}

func (o RevealObserver) Revealed(section string) bool {
	return slices.Contains(o.revealed, section)
}

func (o RevealObserver) RevealedSections() []string {
	return slices.Clone(o.revealed)
}

// Observing reports whether the observer is connected and watching anything.
func (o RevealObserver) Observing() bool {
	return !o.closed && len(o.watched) > 0
}

func (o RevealObserver) Watched() []string {
	return slices.Clone(o.watched)
}

func (o RevealObserver) Threshold() float64 {
	return o.threshold
}

type revealJSON struct {
	Threshold float64  `json:"threshold"`
	Watched   []string `json:"watched,omitempty"`
	Revealed  []string `json:"revealed,omitempty"`
	Closed    bool     `json:"closed,omitempty"`
}

func (o RevealObserver) MarshalJSON() ([]byte, error) {
	return json.Marshal(revealJSON{
		Threshold: o.threshold,
		Watched:   o.watched,
		Revealed:  o.revealed,
		Closed:    o.closed,
	})
}

func (o *RevealObserver) UnmarshalJSON(data []byte) error {
	var raw revealJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*o = RevealObserver{
		threshold: raw.Threshold,
		watched:   raw.Watched,
		revealed:  raw.Revealed,
		closed:    raw.Closed,
	}
	return nil
}
