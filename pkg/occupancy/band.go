package occupancy

// Band classifies the occupancy count against the capacity. It is derived
// on every observation and drives the display wording, the indicator color
// and the matrix animation.
type Band uint8

const (
	// BandEmpty indicates an empty room (occupancy 0).
	BandEmpty Band = iota

	// BandNormal indicates regular operation (1 .. capacity-2).
	BandNormal

	// BandWarning indicates one slot left (capacity-1).
	BandWarning

	// BandFull indicates the room is at capacity.
	BandFull
)

// BandOf returns the band for the given occupancy and capacity. Transitions
// happen strictly by crossing the thresholds 1, capacity-1 and capacity, in
// either direction.
func BandOf(occupancy, capacity int) Band {
	switch {
	case occupancy <= 0:
		return BandEmpty
	case occupancy >= capacity:
		return BandFull
	case occupancy == capacity-1:
		return BandWarning
	default:
		return BandNormal
	}
}

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandEmpty:
		return "EMPTY"
	case BandNormal:
		return "NORMAL"
	case BandWarning:
		return "WARNING"
	case BandFull:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}
