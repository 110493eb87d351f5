package core

import (
	"time"
)

// Stage is one timed step of a generation run.
type Stage struct {
	Name     string
	Duration time.Duration
}

// Stopwatch records how long each pipeline stage took, in call order.
type Stopwatch struct {
	stages []Stage
	now    func() time.Time
}

// NewStopwatch returns an empty Stopwatch.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer sw.Track("smooth")()
func (s *Stopwatch) Track(name string) func() {
	start := s.now()
	return func() {
		s.stages = append(s.stages, Stage{Name: name, Duration: s.now().Sub(start)})
	}
}

// Stages returns the recorded stages.
func (s *Stopwatch) Stages() []Stage { return s.stages }

// Total sums all recorded stages.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, st := range s.stages {
		total += st.Duration
	}
	return total
}

// Reset discards recorded stages.
func (s *Stopwatch) Reset() { s.stages = s.stages[:0] }
