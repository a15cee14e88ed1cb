package timeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"futureself/internal/generate"
	"futureself/internal/lifestyle"
	"futureself/internal/projection"
	"futureself/internal/prompt"
	"futureself/internal/survey"
)

// defaultOffsets is the fixed ascending timeline, in years from present.
// It defines slot indices 0..13 and is immutable at runtime.
var defaultOffsets = []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70}

// DefaultOffsets returns a copy of the fixed timeline offsets.
func DefaultOffsets() []int {
	out := make([]int, len(defaultOffsets))
	copy(out, defaultOffsets)
	return out
}

var (
	// ErrBadIndex - slot index outside the timeline.
	ErrBadIndex = errors.New("slot index out of range")
	// ErrInFlight - the slot already has a request in flight.
	ErrInFlight = errors.New("slot has a request in flight")
	// ErrSlotOccupied - the slot holds a terminal outcome; only an explicit
	// Retry (for Failed) or a custom request may replace it.
	ErrSlotOccupied = errors.New("slot already holds a result")
	// ErrNotFailed - Retry is only permitted from the Failed state.
	ErrNotFailed = errors.New("slot is not in the failed state")
)

// Config wires an Orchestrator. Generator and the base photo are required;
// everything else has working defaults.
type Config struct {
	Generator generate.Generator
	Logger    *zap.Logger
	BasicInfo survey.BasicInfo
	Answers   survey.Answers
	Photo     []byte
	PhotoMIME string
	Retry     RetryPolicy
	offsets   []int // test hook; production always uses the fixed timeline
}

// Orchestrator exclusively owns the slot collection and all of its state
// transitions. Presentation reads slot state through copies; every mutation
// flows through RequestSlot, RequestCustom, or Retry.
type Orchestrator struct {
	gen     generate.Generator
	log     *zap.Logger
	info    survey.BasicInfo
	answers survey.Answers
	photo   []byte
	mime    string
	retry   RetryPolicy
	engine  projection.Engine
	factors lifestyle.Factors

	mu      sync.Mutex
	offsets []int
	slots   []slotRecord
	snaps   map[int]projection.Snapshot // memoized by offset years
	version uint64

	wg sync.WaitGroup
}

// New builds the orchestrator for one user session.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Generator == nil {
		return nil, errors.New("generator is required")
	}
	if len(cfg.Photo) == 0 {
		return nil, errors.New("base photo is required")
	}
	if cfg.PhotoMIME == "" {
		cfg.PhotoMIME = "image/jpeg"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryPolicy()
	}
	offsets := cfg.offsets
	if len(offsets) == 0 {
		offsets = DefaultOffsets()
	}

	return &Orchestrator{
		gen:     cfg.Generator,
		log:     cfg.Logger,
		info:    cfg.BasicInfo,
		answers: cfg.Answers.Clone(),
		photo:   cfg.Photo,
		mime:    cfg.PhotoMIME,
		retry:   cfg.Retry,
		factors: lifestyle.Classify(cfg.Answers),
		offsets: offsets,
		slots:   make([]slotRecord, len(offsets)),
		snaps:   make(map[int]projection.Snapshot),
	}, nil
}

// Len returns the number of slots.
func (o *Orchestrator) Len() int { return len(o.offsets) }

// Factors returns the lifestyle classification, fixed at construction.
func (o *Orchestrator) Factors() lifestyle.Factors { return o.factors }

// Info returns the basic info this session was built from.
func (o *Orchestrator) Info() survey.BasicInfo { return o.info }

// Offsets returns a copy of this orchestrator's timeline.
func (o *Orchestrator) Offsets() []int {
	out := make([]int, len(o.offsets))
	copy(out, o.offsets)
	return out
}

// Version increases on every slot transition, so pollers can detect changes
// without diffing slot contents.
func (o *Orchestrator) Version() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.version
}

// Slot returns a copy of the slot at index i.
func (o *Orchestrator) Slot(i int) (Slot, error) {
	if i < 0 || i >= len(o.offsets) {
		return Slot{}, fmt.Errorf("%w: %d", ErrBadIndex, i)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.slotView(i), nil
}

// Slots returns copies of every slot in index order.
func (o *Orchestrator) Slots() []Slot {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Slot, len(o.slots))
	for i := range o.slots {
		out[i] = o.slotView(i)
	}
	return out
}

// slotView builds the read-only copy. Callers hold o.mu.
func (o *Orchestrator) slotView(i int) Slot {
	rec := &o.slots[i]
	return Slot{
		Index:    i,
		Offset:   o.offsets[i],
		State:    rec.state,
		Image:    rec.image,
		MIMEType: rec.mime,
		Snapshot: rec.snap,
		Attempts: rec.attempts,
		Err:      rec.err,
	}
}

// SnapshotFor computes (and memoizes) the health snapshot at an offset. The
// cache key is the offset in years; the survey answers are fixed for the
// lifetime of the orchestrator.
func (o *Orchestrator) SnapshotFor(yearsOffset int) projection.Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked(yearsOffset)
}

func (o *Orchestrator) snapshotLocked(yearsOffset int) projection.Snapshot {
	if snap, ok := o.snaps[yearsOffset]; ok {
		return snap
	}
	snap := o.engine.Project(o.info, o.answers, yearsOffset)
	o.snaps[yearsOffset] = snap
	return snap
}

// LifeExpectancy is the present-day projected life expectancy.
func (o *Orchestrator) LifeExpectancy() int {
	return o.SnapshotFor(0).LifeExpectancy
}

// RequestSlot starts generation for the slot at index i. Only an Empty slot
// accepts a request; a Generating slot rejects it (single-flight) and a
// terminal slot requires an explicit Retry or custom request. When the target
// age exceeds projected life expectancy the slot moves straight to Deceased
// and no service call is made.
func (o *Orchestrator) RequestSlot(ctx context.Context, i int) error {
	if i < 0 || i >= len(o.offsets) {
		return fmt.Errorf("%w: %d", ErrBadIndex, i)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	rec := &o.slots[i]
	switch rec.state {
	case StateEmpty:
	case StateGenerating:
		return ErrInFlight
	default:
		return ErrSlotOccupied
	}

	offset := o.offsets[i]
	snap := o.snapshotLocked(offset)
	rec.snap = &snap

	if o.info.Age+offset > snap.LifeExpectancy {
		rec.state = StateDeceased
		o.version++
		o.log.Info("slot resolved deceased without a service call",
			zap.Int("slot", i),
			zap.Int("offset_years", offset),
			zap.Int("life_expectancy", snap.LifeExpectancy))
		return nil
	}

	rec.req = generate.Request{
		Image:    o.photo,
		MIMEType: o.mime,
		Prompt:   prompt.BuildInterval(o.info, snap, o.factors, offset),
	}
	rec.reqID = uuid.NewString()
	rec.state = StateGenerating
	rec.attempts = 0
	rec.err = nil
	o.version++

	o.dispatchLocked(ctx, i)
	return nil
}

// RequestCustom resolves the target age to the nearest slot and dispatches
// the custom-action prompt there. The resolved slot may hold a previous
// terminal outcome; a custom request is a new logical request and resets it.
// A Generating slot still rejects (single-flight). Returns the slot index.
func (o *Orchestrator) RequestCustom(ctx context.Context, req CustomRequest) (int, error) {
	years := req.TargetAge - o.info.Age
	i := nearestOffsetIndex(o.offsets, years)

	o.mu.Lock()
	defer o.mu.Unlock()

	rec := &o.slots[i]
	if rec.state == StateGenerating {
		return i, ErrInFlight
	}

	snap := o.snapshotLocked(years)
	*rec = slotRecord{snap: &snap}

	if req.TargetAge > snap.LifeExpectancy {
		rec.state = StateDeceased
		o.version++
		o.log.Info("custom request resolved deceased without a service call",
			zap.Int("slot", i),
			zap.Int("target_age", req.TargetAge),
			zap.Int("life_expectancy", snap.LifeExpectancy))
		return i, nil
	}

	rec.req = generate.Request{
		Image:    o.photo,
		MIMEType: o.mime,
		Prompt:   prompt.BuildCustom(o.info, snap, o.factors, req.TargetAge, req.ActionText),
	}
	rec.reqID = uuid.NewString()
	rec.state = StateGenerating
	o.version++

	o.dispatchLocked(ctx, i)
	return i, nil
}

// Retry redispatches a Failed slot's original request. Permitted only from
// the Failed state; attempts start over under the same policy.
func (o *Orchestrator) Retry(ctx context.Context, i int) error {
	if i < 0 || i >= len(o.offsets) {
		return fmt.Errorf("%w: %d", ErrBadIndex, i)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	rec := &o.slots[i]
	if rec.state != StateFailed {
		return ErrNotFailed
	}

	rec.state = StateGenerating
	rec.attempts = 0
	rec.err = nil
	o.version++

	o.dispatchLocked(ctx, i)
	return nil
}

// dispatchLocked launches the in-flight task for slot i. Callers hold o.mu
// and must have set the slot to Generating with a pending request. Once
// dispatched the attempt runs to completion; there is no cancellation beyond
// the caller's context.
func (o *Orchestrator) dispatchLocked(ctx context.Context, i int) {
	req := o.slots[i].req
	log := o.log.With(
		zap.Int("slot", i),
		zap.Int("offset_years", o.offsets[i]),
		zap.String("request_id", o.slots[i].reqID),
	)

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()

		res, attempts, err := o.retry.Run(ctx, log, o.gen, req)

		o.mu.Lock()
		defer o.mu.Unlock()

		rec := &o.slots[i]
		rec.attempts = attempts
		if err != nil {
			rec.state = StateFailed
			rec.err = err
			log.Warn("slot failed after exhausting attempts", zap.Int("attempts", attempts), zap.Error(err))
		} else {
			rec.state = StateReady
			rec.image = res.Image
			rec.mime = res.MIMEType
			rec.err = nil
			log.Info("slot ready", zap.Int("attempts", attempts), zap.Int("bytes", len(res.Image)))
		}
		o.version++
	}()
}

// Wait blocks until every dispatched request has settled. Intended for batch
// callers and tests; the interactive UI polls Version instead.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}
