package landing

import "encoding/json"

// NavMenu is the open/closed state of the mobile navigation overlay.
// Following a navigation link does not close it.
type NavMenu struct {
	open bool
}

func (m *NavMenu) Toggle() {
	m.open = !m.open
}

func (m NavMenu) IsOpen() bool {
	return m.open
}

func (m NavMenu) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.open)
}

func (m *NavMenu) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.open)
}
