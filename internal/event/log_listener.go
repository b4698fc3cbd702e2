// internal/event/log_listener.go
package event

import "log"

// LogListener writes game events to a logger. Spawns and clicks are logged
// only when Verbose is set.
type LogListener struct {
	logger  *log.Logger
	Verbose bool
}

func NewLogListener(logger *log.Logger) *LogListener {
	if logger == nil {
		logger = log.Default()
	}
	return &LogListener{logger: logger}
}

// Attach subscribes the listener to every event type it knows how to print.
func (l *LogListener) Attach(d *Dispatcher) {
	d.SubscribeAll(l, TargetSpawned, TargetHit, TargetMissed, Clicked, SessionEnded)
}

func (l *LogListener) OnEvent(e Event) {
	switch data := e.Data.(type) {
	case TargetData:
		if e.Type == TargetSpawned && !l.Verbose {
			return
		}
		l.logger.Printf("session=%s event=%s t=%.2fs pos=(%.0f,%.0f) diameter=%.1f",
			data.SessionID, e.Type, data.Elapsed, data.X, data.Y, data.Diameter)
	case ClickData:
		if !l.Verbose {
			return
		}
		l.logger.Printf("session=%s event=%s t=%.2fs pos=(%.0f,%.0f)",
			data.SessionID, e.Type, data.Elapsed, data.X, data.Y)
	case SessionData:
		l.logger.Printf("session=%s event=%s t=%.2fs hits=%d clicks=%d missed=%d",
			data.SessionID, e.Type, data.Elapsed, data.Hits, data.Clicks, data.Missed)
	default:
		l.logger.Printf("event=%s", e.Type)
	}
}
