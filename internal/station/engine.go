package station

import (
	"time"

	"spacevenue/internal/config"
	"spacevenue/internal/models"
)

// State of a station timer.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

// String returns the display label for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "Active"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Clock supplies the current wall-clock time. Injected so the engine is
// testable without real time passing.
type Clock func() time.Time

// Engine is the timer and billing state machine for one station.
//
// Elapsed time accrues only while Running: the engine keeps an accumulated
// duration plus an anchor timestamp marking the start of the current running
// interval. Pausing folds the open interval into the accumulator, resuming
// re-anchors, and only Reset ever clears the accumulator. Nothing here
// touches storage; Stop hands back a snapshot for the caller to persist.
type Engine struct {
	name        string
	stationType string
	rate        float64

	state     State
	elapsed   time.Duration
	anchor    time.Time
	startedAt time.Time
	customer  string

	clock    Clock
	onChange func()
}

// NewEngine builds an engine for one configured station. onChange is invoked
// synchronously on every state transition; it may be nil.
func NewEngine(cfg config.Station, clock Clock, onChange func()) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		name:        cfg.Name,
		stationType: cfg.Type,
		rate:        cfg.RatePerHour,
		clock:       clock,
		onChange:    onChange,
	}
}

// Name returns the station name.
func (e *Engine) Name() string { return e.name }

// Type returns the station type (table or console).
func (e *Engine) Type() string { return e.stationType }

// State returns the current timer state.
func (e *Engine) State() State { return e.state }

// Customer returns the customer name for the current session cycle.
func (e *Engine) Customer() string { return e.customer }

// SetCustomer records the customer name for the current session cycle.
func (e *Engine) SetCustomer(name string) { e.customer = name }

// Rate returns the current hourly rate.
func (e *Engine) Rate() float64 { return e.rate }

// SetRate changes the hourly rate. The change applies retroactively to the
// whole elapsed duration of a live session; negative rates are ignored.
func (e *Engine) SetRate(rate float64) {
	if rate < 0 {
		return
	}
	e.rate = rate
	e.notify()
}

// Start begins accrual. Silent no-op unless Stopped. Elapsed time from an
// earlier stopped cycle carries over until Reset clears it.
func (e *Engine) Start() {
	if e.state != Stopped {
		return
	}
	now := e.clock()
	if e.startedAt.IsZero() {
		e.startedAt = now
	}
	e.anchor = now
	e.state = Running
	e.notify()
}

// Pause freezes accrual. Silent no-op unless Running.
func (e *Engine) Pause() {
	if e.state != Running {
		return
	}
	e.elapsed += e.clock().Sub(e.anchor)
	e.anchor = time.Time{}
	e.state = Paused
	e.notify()
}

// Resume continues accrual from a pause without touching what has already
// accumulated. Silent no-op unless Paused.
func (e *Engine) Resume() {
	if e.state != Paused {
		return
	}
	e.anchor = e.clock()
	e.state = Running
	e.notify()
}

// TogglePause pauses a running station or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.Pause()
	case Paused:
		e.Resume()
	}
}

// Stop ends the session and returns a snapshot for persistence, with the
// rate and cost frozen at this instant. Returns nil (and does nothing) if
// already Stopped.
func (e *Engine) Stop() *models.Session {
	if e.state == Stopped {
		return nil
	}
	now := e.clock()
	if e.state == Running {
		e.elapsed += now.Sub(e.anchor)
	}
	e.anchor = time.Time{}
	e.state = Stopped

	seconds := int(e.elapsed.Seconds())
	session := &models.Session{
		StationName:     e.name,
		CustomerName:    e.customer,
		StartTS:         models.FormatTime(e.startedAt),
		EndTS:           models.FormatTime(now),
		DurationSeconds: seconds,
		RatePerHour:     e.rate,
		Cost:            e.Cost(),
	}
	e.startedAt = time.Time{}
	e.notify()
	return session
}

// Reset discards the session cycle: timer zeroed, customer cleared, nothing
// persisted.
func (e *Engine) Reset() {
	e.state = Stopped
	e.anchor = time.Time{}
	e.startedAt = time.Time{}
	e.elapsed = 0
	e.customer = ""
	e.notify()
}

// Elapsed returns the live elapsed duration: frozen while Paused or Stopped,
// growing while Running.
func (e *Engine) Elapsed() time.Duration {
	if e.state == Running {
		return e.elapsed + e.clock().Sub(e.anchor)
	}
	return e.elapsed
}

// Cost computes the live cost at the current rate over the whole elapsed
// duration.
func (e *Engine) Cost() float64 {
	return e.Elapsed().Hours() * e.rate
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}
