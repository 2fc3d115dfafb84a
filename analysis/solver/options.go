package solver

import (
	"time"

	"github.com/cs-au-dk/monotone/utils"
	log "github.com/sirupsen/logrus"
)

// Options control a single solver run. The zero value solves to completion
// without checks, logging to the standard logger.
type Options struct {
	// MaxExtractions bounds the number of worklist extractions. 0 means unbounded.
	MaxExtractions int
	// CheckMonotone fails solving when a flow variable decreases.
	CheckMonotone bool
	// Trace logs every extraction at debug level.
	Trace bool
	// Metrics logs time and memory statistics at debug level.
	Metrics bool
	Log     *log.Logger
}

// OptionsFrom extracts the solver options from the global options.
func OptionsFrom(o utils.Options) Options {
	return Options{
		MaxExtractions: o.MaxExtractions,
		CheckMonotone:  o.CheckMonotone,
		Trace:          o.Trace,
		Metrics:        o.Metrics,
	}
}

func (o Options) logger() *log.Logger {
	if o.Log == nil {
		return log.StandardLogger()
	}
	return o.Log
}

// Stats summarize a solver run.
type Stats struct {
	// Extractions counts the flow variables taken from the worklist.
	Extractions int
	// Updates counts the extractions that changed the value of a flow variable.
	Updates  int
	Duration time.Duration
}

func (s Stats) fields() log.Fields {
	return log.Fields{
		"extractions": s.Extractions,
		"updates":     s.Updates,
		"duration":    s.Duration.String(),
	}
}
