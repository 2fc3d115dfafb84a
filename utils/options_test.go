package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptions(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monotone.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.NoError(t, o.Validate())
	assert.Equal(t, "fifo", o.Worklist)
	assert.False(t, o.IsRPO())
	assert.Equal(t, "svg", o.Format)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Options){
		"worklist":        func(o *Options) { o.Worklist = "random" },
		"max-extractions": func(o *Options) { o.MaxExtractions = -1 },
		"log-level":       func(o *Options) { o.LogLevel = "loud" },
	} {
		t.Run(name, func(t *testing.T) {
			o := DefaultOptions()
			mutate(&o)
			assert.Error(t, o.Validate())
		})
	}
}

func TestLoadOptions(t *testing.T) {
	path := writeOptions(t, `
worklist = "rpo"
max_extractions = 100
check_monotone = true
log_level = "debug"
`)

	o, err := LoadOptions(path)
	require.NoError(t, err)
	assert.True(t, o.IsRPO())
	assert.Equal(t, 100, o.MaxExtractions)
	assert.True(t, o.CheckMonotone)
	assert.Equal(t, "debug", o.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, uint(2), o.Minlen)
	assert.Equal(t, "svg", o.Format)
}

func TestLoadOptionsErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadOptions(writeOptions(t, "worklst = \"fifo\"\n"))
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "worklst")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := LoadOptions(writeOptions(t, "worklist = \"random\"\n"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadOptions(writeOptions(t, "worklist = \n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRegisterFlags(t *testing.T) {
	o := DefaultOptions()
	fs := flag.NewFlagSet("monotone", flag.ContinueOnError)
	o.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"-worklist", "lifo", "-max-extractions", "7", "-trace"}))
	assert.Equal(t, "lifo", o.Worklist)
	assert.Equal(t, 7, o.MaxExtractions)
	assert.True(t, o.Trace)
	assert.Equal(t, 0.35, o.Nodesep)
}

func TestApply(t *testing.T) {
	prevColor, prevLevel := color.NoColor, log.GetLevel()
	t.Cleanup(func() {
		color.NoColor = prevColor
		log.SetLevel(prevLevel)
	})

	o := DefaultOptions()
	o.NoColorize = true
	o.LogLevel = "warn"
	require.NoError(t, o.Apply())
	assert.True(t, color.NoColor)
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	o.Worklist = ""
	assert.Error(t, o.Apply())
}

func TestOnVerbose(t *testing.T) {
	called := false
	DefaultOptions().OnVerbose(func() { called = true })
	assert.False(t, called)

	o := DefaultOptions()
	o.Trace = true
	o.OnVerbose(func() { called = true })
	assert.True(t, called)
}
