package sim

import (
	"fmt"
	"strings"
)

// IdleOwner is the owner recorded for spans in which no process holds the CPU.
const IdleOwner = "IDLE"

// GanttInterval is a maximal span [Start, End) during which Owner holds the resource.
type GanttInterval struct {
	Owner string `yaml:"owner" json:"owner"`
	Start int64  `yaml:"start" json:"start"`
	End   int64  `yaml:"end" json:"end"`
}

// Duration returns End - Start.
func (g GanttInterval) Duration() int64 {
	return g.End - g.Start
}

// Idle reports whether the interval is an idle span.
func (g GanttInterval) Idle() bool {
	return g.Owner == IdleOwner
}

func (g GanttInterval) String() string {
	return fmt.Sprintf("[%d,%d)%s", g.Start, g.End, g.Owner)
}

// TimelineBuilder accumulates contiguous Gantt intervals for a single run.
// Consecutive records for the same owner extend the open interval; a new
// owner seals it and opens another. The zero value is not usable, use
// NewTimelineBuilder.
type TimelineBuilder struct {
	intervals []GanttInterval
	sealed    bool
}

// NewTimelineBuilder creates an empty builder.
func NewTimelineBuilder() *TimelineBuilder {
	return &TimelineBuilder{intervals: make([]GanttInterval, 0)}
}

// Record records ownership of [start, end) for owner.
// start must equal the end of the previous record.
func (b *TimelineBuilder) Record(owner string, start, end int64) {
	if b.sealed {
		panic("Record: timeline already sealed")
	}
	if end <= start {
		panic(fmt.Sprintf("Record: empty span [%d,%d) for %s", start, end, owner))
	}
	n := len(b.intervals)
	if n == 0 {
		b.intervals = append(b.intervals, GanttInterval{Owner: owner, Start: start, End: end})
		return
	}
	last := &b.intervals[n-1]
	if start != last.End {
		panic(fmt.Sprintf("Record: span [%d,%d) for %s is not contiguous with %v", start, end, owner, *last))
	}
	if last.Owner == owner {
		last.End = end
		return
	}
	b.intervals = append(b.intervals, GanttInterval{Owner: owner, Start: start, End: end})
}

// Seal closes the timeline and returns a copy of its intervals.
// Further records panic.
func (b *TimelineBuilder) Seal() []GanttInterval {
	b.sealed = true
	out := make([]GanttInterval, len(b.intervals))
	copy(out, b.intervals)
	return out
}

// FormatTimeline renders intervals compactly, e.g. "[0,2)P1 [2,4)P2".
func FormatTimeline(intervals []GanttInterval) string {
	var sb strings.Builder
	for i, g := range intervals {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(g.String())
	}
	return sb.String()
}
