package hours

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Step returns the hour after one keyboard step from current, clamped to r.
// Nothing happens while the suggestion list is open since the arrow keys then
// navigate the list. An unset hour steps onto the nearest end of the range.
func Step(dir Direction, current Hour, r Range, listOpen bool) (int, bool) {
	if listOpen || r.Empty() {
		return 0, false
	}
	h, ok := current.Get()
	if !ok {
		if dir == Up {
			return r.Min, true
		}
		return r.Max, true
	}
	if dir == Up {
		h++
	} else {
		h--
	}
	return r.Clamp(h), true
}
