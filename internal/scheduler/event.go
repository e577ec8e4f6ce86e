package scheduler

// EventType identifies the events observers can register for.
type EventType int

const (
	// EventScanline fires after LY has been advanced to the next scanline.
	EventScanline EventType = iota
	// EventVBlank fires after LY has been advanced into the vertical
	// blanking period.
	EventVBlank

	eventTypes
)

var eventNames = [...]string{
	EventScanline: "scanline",
	EventVBlank:   "vblank",
}

func (e EventType) String() string {
	if e >= 0 && e < eventTypes {
		return eventNames[e]
	}
	return "unknown"
}
