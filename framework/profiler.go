package framework

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/loov/hrtime"
)

// Profiler keeps the last duration of each named CPU scope and counts
// frames between reports.
type Profiler struct {
	Scopes     map[string]time.Duration
	StartTimes map[string]time.Duration
	Counts     map[string]int
	Order      []string

	frames      int
	windowStart time.Duration
	now         func() time.Duration
}

func NewProfiler() *Profiler {
	p := &Profiler{
		Scopes:     make(map[string]time.Duration),
		StartTimes: make(map[string]time.Duration),
		Counts:     make(map[string]int),
		Order:      make([]string, 0),
		now:        hrtime.Now,
	}
	p.windowStart = p.now()
	return p
}

func (p *Profiler) BeginScope(name string) {
	p.StartTimes[name] = p.now()
	if _, seen := p.Scopes[name]; !seen {
		p.Order = append(p.Order, name)
		p.Scopes[name] = 0
	}
}

func (p *Profiler) EndScope(name string) {
	if start, ok := p.StartTimes[name]; ok {
		p.Scopes[name] = p.now() - start
		delete(p.StartTimes, name)
	}
}

func (p *Profiler) SetCount(name string, count int) {
	p.Counts[name] = count
}

func (p *Profiler) FrameDone() {
	p.frames++
}

// Report returns the stats for the window since the previous report once at
// least interval has elapsed, and starts a new window.
func (p *Profiler) Report(interval time.Duration) (string, bool) {
	if interval <= 0 {
		return "", false
	}
	elapsed := p.now() - p.windowStart
	if elapsed < interval {
		return "", false
	}
	fps := float64(p.frames) / elapsed.Seconds()
	stats := fmt.Sprintf("%.1f fps over %d frames\n%s", fps, p.frames, p.GetStatsString())
	p.frames = 0
	p.windowStart = p.now()
	return stats, true
}

func (p *Profiler) GetStatsString() string {
	var sb strings.Builder

	sb.WriteString("Timings (CPU):\n")
	for _, name := range p.Order {
		ms := float64(p.Scopes[name].Microseconds()) / 1000.0
		sb.WriteString(fmt.Sprintf("  %-15s: %.2f ms\n", name, ms))
	}

	if len(p.Counts) == 0 {
		return sb.String()
	}
	sb.WriteString("Stats:\n")
	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %-15s: %d\n", k, p.Counts[k]))
	}
	return sb.String()
}
