package utils

import (
	"flag"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options configures how constraint systems are solved and how results are
// rendered. The zero value is not meaningful; start from DefaultOptions.
type Options struct {
	// Worklist selects the re-evaluation order of flow variables.
	Worklist string `toml:"worklist"`
	// MaxExtractions bounds the number of worklist extractions. 0 means unbounded.
	MaxExtractions int `toml:"max_extractions"`
	// CheckMonotone makes the solver verify that every flow variable only grows.
	CheckMonotone bool `toml:"check_monotone"`
	// Trace logs every worklist extraction.
	Trace bool `toml:"trace"`
	// Metrics logs timing and allocation statistics after solving.
	Metrics    bool   `toml:"metrics"`
	NoColorize bool   `toml:"no_colorize"`
	LogLevel   string `toml:"log_level"`

	// Dot rendering of program graphs.
	Minlen  uint    `toml:"minlen"`
	Nodesep float64 `toml:"nodesep"`
	Format  string  `toml:"format"`
}

const (
	_WORKLIST_FIFO = iota
	_WORKLIST_LIFO
	_WORKLIST_RPO
)

// Worklists lists the accepted values of Options.Worklist with an explanation.
var Worklists = []struct{ Flag, Explanation string }{{
	"fifo",
	"Re-evaluate flow variables in insertion order (queue)",
}, {
	"lifo",
	"Re-evaluate the most recently inserted flow variable first (stack)",
}, {
	"rpo",
	"Re-evaluate flow variables by reverse postorder of the analysed program graph",
}}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions() Options {
	return Options{
		Worklist: Worklists[_WORKLIST_FIFO].Flag,
		LogLevel: log.InfoLevel.String(),
		Minlen:   2,
		Nodesep:  0.35,
		Format:   "svg",
	}
}

// RegisterFlags binds the options to command-line flags of the given flag set.
// Calling flag.Parse in init messes up unit tests, so parsing is left to the caller.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	wlFlag := "\n"
	for _, wl := range Worklists {
		wlFlag += wl.Flag + " -- " + wl.Explanation + "\n"
	}
	wlFlag += "\n"

	fs.StringVar(&o.Worklist, "worklist", o.Worklist, "Set the worklist strategy used by the solver. Options:"+wlFlag)
	fs.IntVar(&o.MaxExtractions, "max-extractions", o.MaxExtractions, "Abort solving after this many worklist extractions (0 = unbounded).")
	fs.BoolVar(&o.CheckMonotone, "check-monotone", o.CheckMonotone, "Fail when a flow variable decreases during solving.")
	fs.BoolVar(&o.Trace, "trace", o.Trace, "Log every worklist extraction.")
	fs.BoolVar(&o.Metrics, "metrics", o.Metrics, "Enable collection of performance metrics for the solver")
	fs.BoolVar(&o.NoColorize, "no-colorize", o.NoColorize, "Disable pretty printer colorization")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Logging level [panic | fatal | error | warn | info | debug | trace]")
	fs.UintVar(&o.Minlen, "minlen", o.Minlen, "Minimum edge length (for wider output).")
	fs.Float64Var(&o.Nodesep, "nodesep", o.Nodesep, "Minimum space between two adjacent nodes in the same rank (for taller output).")
	fs.StringVar(&o.Format, "format", o.Format, "output file format [svg | png | jpg | ...]")
}

// LoadOptions reads options from a TOML file. Keys absent from the file keep
// their default value; unknown keys are rejected.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	f, err := os.Open(path)
	if err != nil {
		return opts, errors.Wrap(err, "loading options")
	}
	defer f.Close()

	meta, err := toml.DecodeReader(f, &opts)
	if err != nil {
		return opts, errors.Wrapf(err, "decoding %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return opts, errors.Errorf("%s: unknown option(s) %s", path, strings.Join(keys, ", "))
	}

	return opts, opts.Validate()
}

// Validate checks that every option holds an accepted value.
func (o Options) Validate() error {
	valid := false
	for _, wl := range Worklists {
		if wl.Flag == o.Worklist {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Errorf("value %q is not valid for worklist", o.Worklist)
	}
	if o.MaxExtractions < 0 {
		return errors.Errorf("max_extractions must not be negative, got %d", o.MaxExtractions)
	}
	if _, err := log.ParseLevel(o.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// Apply installs the process-wide parts of the options: colorization and the
// level of the standard logger.
func (o Options) Apply() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.NoColorize {
		color.NoColor = true
	}
	lvl, _ := log.ParseLevel(o.LogLevel)
	log.SetLevel(lvl)
	return nil
}

func (o Options) IsRPO() bool { return o.Worklist == Worklists[_WORKLIST_RPO].Flag }

// OnVerbose runs do when tracing is enabled.
func (o Options) OnVerbose(do func()) {
	if o.Trace {
		do()
	}
}
