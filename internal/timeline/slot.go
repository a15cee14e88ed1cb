// Package timeline owns the generation slots: one per fixed future offset,
// each running the Empty -> Generating -> {Ready | Deceased | Failed} state
// machine with at most one in-flight request per slot.
package timeline

import (
	"fmt"

	"futureself/internal/generate"
	"futureself/internal/projection"
)

// State is the lifecycle position of a generation slot.
type State int

const (
	// StateEmpty - nothing requested for this slot yet.
	StateEmpty State = iota
	// StateGenerating - a request is in flight; further requests are rejected.
	StateGenerating
	// StateReady - the service returned an image; terminal for this request.
	StateReady
	// StateDeceased - the target age exceeds projected life expectancy; no
	// service call was made. Terminal for this request.
	StateDeceased
	// StateFailed - all attempts exhausted; recoverable via an explicit Retry.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	case StateDeceased:
		return "deceased"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Terminal reports whether the state ends a logical request.
func (s State) Terminal() bool {
	return s == StateReady || s == StateDeceased || s == StateFailed
}

// Slot is a read-only copy of one timeline position, safe to hand to
// presentation code. Image bytes are set once on completion and never
// mutated afterwards.
type Slot struct {
	Index    int
	Offset   int // years from present
	State    State
	Image    []byte
	MIMEType string
	Snapshot *projection.Snapshot
	Attempts int
	Err      error
}

// Filename names the downloadable artifact for this slot.
func (s Slot) Filename() string {
	return generate.Filename(s.Offset, s.MIMEType)
}

// slotRecord is the orchestrator-owned mutable backing for a slot.
type slotRecord struct {
	state    State
	snap     *projection.Snapshot
	image    []byte
	mime     string
	attempts int
	err      error

	// Pending request, kept so Retry can redispatch identically.
	req   generate.Request
	reqID string
}
