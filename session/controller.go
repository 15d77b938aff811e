// Package session runs focus sessions: it owns the active session, folds
// telemetry samples into it on every tick and freezes it when the session ends
package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solosprint/sprint/internal/emotion"
	"github.com/solosprint/sprint/internal/models"
	"github.com/solosprint/sprint/internal/telemetry"
)

// DefaultTickInterval is the sampling period used when none is configured.
const DefaultTickInterval = 10 * time.Second

// Policy decides how tab switch jitter carries over between ticks.
type Policy string

const (
	// PolicyMonotonic never lets the tab switch counter decrease.
	PolicyMonotonic Policy = "monotonic"
	// PolicyReroll uses each sample as-is, so the counter may drop back when
	// the jitter is re-rolled.
	PolicyReroll Policy = "reroll"
)

// Sampler produces a telemetry sample for the elapsed session time.
type Sampler interface {
	Tick(elapsed time.Duration) telemetry.Sample
}

type (
	// Controller is the single writer of session state.
	Controller struct {
		now       func() time.Time
		newID     func() string
		scheduler Scheduler
		sampler   Sampler
		hook      func(models.FocusSession)
		logger    *slog.Logger
		handle    Handle
		current   *models.FocusSession
		last      *models.FocusSession
		policy    Policy
		interval  time.Duration
		seq       uint64
		published uint64
		started   uint64
		mu        sync.Mutex
		pubMu     sync.Mutex
	}

	// Option configures a Controller.
	Option func(*Controller)
)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithScheduler replaces the ticker based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// WithSampler replaces the default telemetry generator.
func WithSampler(s Sampler) Option {
	return func(c *Controller) {
		c.sampler = s
	}
}

// WithPolicy sets the tab switch policy.
func WithPolicy(p Policy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

// WithTickInterval sets the sampling period.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.interval = d
	}
}

// WithSnapshotHook registers fn to receive every new snapshot, including the
// terminal one. fn is never called concurrently and never with a snapshot
// older than one it has already received.
func WithSnapshotHook(fn func(models.FocusSession)) Option {
	return func(c *Controller) {
		c.hook = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithIDGenerator replaces the UUID session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		c.newID = fn
	}
}

// NewController returns an idle controller.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		now:       time.Now,
		newID:     uuid.NewString,
		scheduler: TickerScheduler{},
		policy:    PolicyMonotonic,
		interval:  DefaultTickInterval,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sampler == nil {
		c.sampler = telemetry.NewGenerator(nil)
	}

	return c
}

// Start creates a session for goalID and arms the ticker.
func (c *Controller) Start(goalID, taskTitle string) (models.FocusSession, error) {
	if strings.TrimSpace(goalID) == "" {
		return models.FocusSession{}, ErrValidation.Fmt("goal id is required")
	}

	c.mu.Lock()

	if c.current != nil {
		active := c.current.GoalID
		c.mu.Unlock()

		// one session slot per controller, so a second goal is refused too
		return models.FocusSession{}, ErrInvalidState.Fmt(
			"a session is already active for goal " + active,
		)
	}

	sess := &models.FocusSession{
		ID:             c.newID(),
		GoalID:         goalID,
		TaskTitle:      taskTitle,
		StartTime:      c.now(),
		EmotionalState: models.Focused,
	}

	c.current = sess
	c.started++
	run := c.started
	seq := c.nextSeq()
	snap := sess.Clone()

	c.mu.Unlock()

	c.logger.Info(
		"focus session started",
		slog.String("session_id", snap.ID),
		slog.String("goal_id", goalID),
		slog.Duration("tick_interval", c.interval),
	)

	c.publish(seq, snap)

	// schedule outside mu: a scheduler may fire the first tick inline
	h := c.scheduler.Schedule(c.interval, c.OnTick)

	c.mu.Lock()
	if c.current != nil && c.started == run && c.handle == nil {
		c.handle = h
		h = nil
	}
	c.mu.Unlock()

	if h != nil {
		// the session ended while the ticker was being armed
		h.Cancel()
	}

	return snap, nil
}

// OnTick folds a new telemetry sample into the active session. It does
// nothing when no session is active, which covers ticks that fire after End.
func (c *Controller) OnTick() {
	c.mu.Lock()

	if c.current == nil {
		c.mu.Unlock()
		return
	}

	elapsed := c.now().Sub(c.current.StartTime)
	sample := c.sampler.Tick(elapsed)

	next := c.current.Clone()
	next.DurationMinutes = max(next.DurationMinutes, durationMinutes(elapsed))
	next.FocusPercentage = sample.FocusPercentage
	next.DistractionPercentage = sample.DistractionPercentage
	next.EmotionalState = emotion.Classify(sample.FocusPercentage)

	next.TabSwitches = sample.TabSwitches
	if c.policy != PolicyReroll {
		next.TabSwitches = max(c.current.TabSwitches, sample.TabSwitches)
	}

	c.current = &next
	seq := c.nextSeq()

	c.mu.Unlock()

	c.logger.Debug(
		"focus session tick",
		slog.String("session_id", next.ID),
		slog.Int("focus", next.FocusPercentage),
		slog.Int("tab_switches", next.TabSwitches),
		slog.String("state", string(next.EmotionalState)),
	)

	c.publish(seq, next)
}

// End cancels the ticker and returns the frozen session.
func (c *Controller) End() (models.FocusSession, error) {
	c.mu.Lock()

	if c.current == nil {
		c.mu.Unlock()
		return models.FocusSession{}, ErrInvalidState.Fmt("no active session")
	}

	if c.handle != nil {
		c.handle.Cancel()
		c.handle = nil
	}

	end := c.now()

	final := c.current.Clone()
	final.EndTime = &end
	final.DurationMinutes = max(
		final.DurationMinutes,
		durationMinutes(end.Sub(final.StartTime)),
	)

	c.current = nil
	c.last = &final
	seq := c.nextSeq()

	c.mu.Unlock()

	c.logger.Info(
		"focus session ended",
		slog.String("session_id", final.ID),
		slog.Int("duration_minutes", final.DurationMinutes),
		slog.String("state", string(final.EmotionalState)),
	)

	c.publish(seq, final.Clone())

	return final.Clone(), nil
}

// Snapshot returns a copy of the active session, or nil when idle.
func (c *Controller) Snapshot() *models.FocusSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}

	snap := c.current.Clone()

	return &snap
}

// Last returns a copy of the most recently ended session, or nil.
func (c *Controller) Last() *models.FocusSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		return nil
	}

	snap := c.last.Clone()

	return &snap
}

// Active reports whether a session is running.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current != nil
}

// nextSeq must be called with mu held.
func (c *Controller) nextSeq() uint64 {
	c.seq++
	return c.seq
}

func (c *Controller) publish(seq uint64, snap models.FocusSession) {
	if c.hook == nil {
		return
	}

	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	if seq <= c.published {
		return
	}

	c.published = seq

	c.hook(snap)
}

func durationMinutes(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}

	return int(elapsed / time.Minute)
}
