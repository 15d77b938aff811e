// Package telemetry produces the synthetic focus metrics sampled on every tick
// of an active session
package telemetry

import (
	"math/rand/v2"
	"time"
)

const (
	minFocus            = 85
	focusSpread         = 16 // focus is drawn from [85,100]
	maxPercentage       = 100
	minutesPerTabSwitch = 5
	tabSwitchJitter     = 3 // jitter is drawn from [0,2]
)

// Source is the random number source used by the generator. *rand.Rand
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Sample is one telemetry reading.
type Sample struct {
	FocusPercentage       int `json:"focus_percentage"`
	DistractionPercentage int `json:"distraction_percentage"`
	TabSwitches           int `json:"tab_switches"`
}

// Generator produces samples. It holds no state besides its random source.
type Generator struct {
	src Source
}

// NewGenerator returns a generator backed by src, or by a time seeded PCG
// source if src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(now, now>>1))
	}

	return &Generator{src: src}
}

// Tick returns the sample for a session that has been running for elapsed.
func (g *Generator) Tick(elapsed time.Duration) Sample {
	focus := minFocus + g.src.IntN(focusSpread)
	if focus > maxPercentage {
		focus = maxPercentage
	}

	if elapsed < 0 {
		elapsed = 0
	}

	mins := int(elapsed / time.Minute)

	return Sample{
		FocusPercentage:       focus,
		DistractionPercentage: maxPercentage - focus,
		TabSwitches:           mins/minutesPerTabSwitch + g.src.IntN(tabSwitchJitter),
	}
}
