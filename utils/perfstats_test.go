package utils

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfStatsLog(t *testing.T) {
	logger, hook := test.NewNullLogger()

	perf := NewPerfStats()
	assert.GreaterOrEqual(t, int64(perf.Elapsed()), int64(0))

	perf.Log(logger, "Nothing")
	assert.Empty(t, hook.AllEntries(), "statistics are logged at debug level")

	logger.SetLevel(log.DebugLevel)
	perf.Log(logger, "Nothing")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Nothing finished", entry.Message)
	for _, field := range []string{"time", "alloc", "gc", "heapMb"} {
		assert.Contains(t, entry.Data, field)
	}
}
