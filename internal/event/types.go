// internal/event/types.go
package event

const (
	TargetSpawned EventType = "TargetSpawned" // a new target entered the field
	TargetHit     EventType = "TargetHit"     // a click landed inside a target
	TargetMissed  EventType = "TargetMissed"  // a target shrank away unclicked
	Clicked       EventType = "Clicked"
	SessionEnded  EventType = "SessionEnded" // the player ran out of lives
)

// TargetData is carried by TargetSpawned, TargetHit and TargetMissed.
type TargetData struct {
	SessionID string
	X, Y      float64
	Diameter  float64
	Elapsed   float64
}

// ClickData is carried by Clicked.
type ClickData struct {
	SessionID string
	X, Y      float64
	Elapsed   float64
}

// SessionData is carried by SessionEnded.
type SessionData struct {
	SessionID string
	Elapsed   float64
	Hits      int
	Clicks    int
	Missed    int
}
