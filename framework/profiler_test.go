package framework

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Duration }

func (c *fakeClock) now() time.Duration { return c.t }

func newTestProfiler() (*Profiler, *fakeClock) {
	clock := &fakeClock{}
	p := NewProfiler()
	p.now = clock.now
	p.windowStart = 0
	return p, clock
}

func TestProfiler_Scopes(t *testing.T) {
	p, clock := newTestProfiler()

	p.BeginScope("render")
	clock.t += 3 * time.Millisecond
	p.EndScope("render")

	p.BeginScope("present")
	clock.t += 500 * time.Microsecond
	p.EndScope("present")

	// Re-entering a scope must not duplicate it in Order.
	p.BeginScope("render")
	clock.t += 2 * time.Millisecond
	p.EndScope("render")

	assert.Equal(t, []string{"render", "present"}, p.Order)
	assert.Equal(t, 2*time.Millisecond, p.Scopes["render"])
	assert.Equal(t, 500*time.Microsecond, p.Scopes["present"])

	p.EndScope("never-started")
	assert.NotContains(t, p.Scopes, "never-started")
}

func TestProfiler_StatsString(t *testing.T) {
	p, clock := newTestProfiler()
	p.BeginScope("render")
	clock.t += 1500 * time.Microsecond
	p.EndScope("render")
	p.SetCount("validation", 2)
	p.SetCount("frames", 9)

	assert.Equal(t,
		"Timings (CPU):\n"+
			"  render         : 1.50 ms\n"+
			"Stats:\n"+
			"  frames         : 9\n"+
			"  validation     : 2\n",
		p.GetStatsString())
}

func TestProfiler_Report(t *testing.T) {
	p, clock := newTestProfiler()

	_, ok := p.Report(0)
	assert.False(t, ok, "zero interval disables reports")

	for i := 0; i < 30; i++ {
		p.FrameDone()
	}
	clock.t = 500 * time.Millisecond
	_, ok = p.Report(time.Second)
	assert.False(t, ok)

	clock.t = time.Second
	stats, ok := p.Report(time.Second)
	assert.True(t, ok)
	assert.Contains(t, stats, "30.0 fps over 30 frames")

	clock.t = 1500 * time.Millisecond
	_, ok = p.Report(time.Second)
	assert.False(t, ok, "window restarts after a report")
}
