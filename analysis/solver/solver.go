// Package solver computes the least solution of a constraint system by chaotic
// iteration.
//
// Every flow variable is initially pending. A pending variable is taken from
// the worklist and recomputed from the cached values of its dependencies. If
// its value changed, every variable depending on it becomes pending again. The
// system is solved when the worklist is empty.
//
// Termination requires a lattice without infinite ascending chains and
// monotone constraint functions. Neither is checked, unless CheckMonotone is
// set, in which case a decreasing flow variable aborts solving.
package solver

import (
	"time"

	"github.com/cs-au-dk/monotone/analysis/constraint"
	"github.com/cs-au-dk/monotone/analysis/lattice"
	"github.com/cs-au-dk/monotone/utils"
	"github.com/cs-au-dk/monotone/utils/worklist"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Solver drives the solving of one constraint system. It is not safe for
// concurrent use, and the system must not be solved by anyone else meanwhile.
type Solver[V lattice.Element[V]] struct {
	cs    *constraint.System[V]
	w     worklist.Worklist[int]
	opts  Options
	log   *log.Logger
	stats Stats
}

// New creates a solver for cs, using w as the worklist. Every flow variable is
// added to w in ascending order.
func New[V lattice.Element[V]](w worklist.Worklist[int], cs *constraint.System[V], opts Options) *Solver[V] {
	for v := 0; v < cs.NumberOfVariables(); v++ {
		w.Add(v)
	}
	return &Solver[V]{cs: cs, w: w, opts: opts, log: opts.logger()}
}

// Done checks whether the system is solved.
func (s *Solver[V]) Done() bool {
	return s.w.IsEmpty()
}

func (s *Solver[V]) Stats() Stats {
	return s.stats
}

// Step extracts one flow variable and recomputes it. It returns the variable,
// or -1 if there was no pending work, and whether its value changed.
func (s *Solver[V]) Step() (variable int, changed bool, err error) {
	if s.w.IsEmpty() {
		return -1, false, nil
	}

	v := s.w.GetNext()
	s.stats.Extractions++

	old := s.cs.ValueOf(v)
	upd := s.cs.UpdateValueOf(v)

	if s.opts.CheckMonotone && !old.Leq(upd) {
		return v, false, &NonMonotoneError{v, old, upd}
	}

	if changed = !lattice.Eq(old, upd); changed {
		s.stats.Updates++
		for _, d := range s.cs.DependentsOf(v) {
			s.w.Add(d)
		}
	}

	if s.opts.Trace {
		s.log.WithFields(log.Fields{
			"variable": v,
			"changed":  changed,
			"pending":  s.w.Len(),
		}).Debug("Extracted flow variable")
	}
	return v, changed, nil
}

// Run steps until the system is solved. If MaxExtractions is reached first,
// the error wraps ErrUnsolved.
func (s *Solver[V]) Run() (Stats, error) {
	var perf *utils.PerfStats
	if s.opts.Metrics {
		perf = utils.NewPerfStats()
	}

	start := time.Now()
	err := s.run()
	s.stats.Duration += time.Since(start)
	if err != nil {
		return s.stats, err
	}

	s.log.WithFields(s.stats.fields()).Debug("Solved constraint system")
	if perf != nil {
		perf.Log(s.log, "Solving")
	}
	return s.stats, nil
}

func (s *Solver[V]) run() error {
	for !s.Done() {
		if s.opts.MaxExtractions > 0 && s.stats.Extractions >= s.opts.MaxExtractions {
			return errors.Wrapf(ErrUnsolved, "%d flow variables pending after %d extractions",
				s.w.Len(), s.stats.Extractions)
		}
		if _, _, err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Solve solves cs to completion using w as the worklist.
func Solve[V lattice.Element[V]](w worklist.Worklist[int], cs *constraint.System[V]) Stats {
	stats, _ := New(w, cs, Options{}).Run()
	return stats
}

// SolveWith solves cs using w as the worklist under the given options.
func SolveWith[V lattice.Element[V]](w worklist.Worklist[int], cs *constraint.System[V], opts Options) (Stats, error) {
	return New(w, cs, opts).Run()
}
