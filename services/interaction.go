package services

import (
	"errors"
	"sync"

	"portfolio/models"
)

// Phase is the lifecycle position of one generation request.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRequesting
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRequesting:
		return "requesting"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// ErrInFlight is returned by Begin while a request is outstanding.
var ErrInFlight = errors.New("generation already in progress")

// Interaction tracks one view's generation state. Each request gets a fresh
// Interaction; nothing is shared between views.
type Interaction struct {
	mu     sync.Mutex
	phase  Phase
	result string
	err    string
	hasRes bool
	hasErr bool
}

// NewInteraction returns an idle interaction.
func NewInteraction() *Interaction {
	return &Interaction{}
}

// Begin clears any prior result or error and marks the request loading.
func (i *Interaction) Begin() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.phase == PhaseRequesting {
		return ErrInFlight
	}
	i.phase = PhaseRequesting
	i.result, i.err = "", ""
	i.hasRes, i.hasErr = false, false
	return nil
}

// Settle records the returned text as the result.
func (i *Interaction) Settle(result string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.phase = PhaseSettled
	i.result, i.hasRes = result, true
	i.err, i.hasErr = "", false
}

// Fail settles the request with a message in the error slot.
func (i *Interaction) Fail(msg string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.phase = PhaseSettled
	i.result, i.hasRes = "", false
	i.err, i.hasErr = msg, true
}

// Reject records a validation message without issuing a request.
func (i *Interaction) Reject(msg string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.phase = PhaseIdle
	i.result, i.hasRes = "", false
	i.err, i.hasErr = msg, true
}

// Phase returns the current phase.
func (i *Interaction) Phase() Phase {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.phase
}

// State returns a snapshot of the view state.
func (i *Interaction) State() models.GenerationState {
	i.mu.Lock()
	defer i.mu.Unlock()
	st := models.GenerationState{IsLoading: i.phase == PhaseRequesting}
	if i.hasRes {
		r := i.result
		st.Result = &r
	}
	if i.hasErr {
		e := i.err
		st.Error = &e
	}
	return st
}
