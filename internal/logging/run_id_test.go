package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()
	// YYYYMMDD_HHMMSS_xxxx
	assert.Len(t, id, 20)
	assert.NotEqual(t, id, GenerateRunID())
}

func TestShortRunID(t *testing.T) {
	assert.Equal(t, "a7b3", ShortRunID("20260823_205106_a7b3"))
	assert.Equal(t, "ab", ShortRunID("ab"))
}

func TestRunFilenameRoundTrip(t *testing.T) {
	id := "20260823_205106_a7b3"
	filename := RunFilename(id)
	assert.Equal(t, "run_20260823_205106_a7b3.log", filename)

	parsed, ok := ParseRunFilename(filename)
	assert.True(t, ok)
	assert.Equal(t, id, parsed)
}

func TestParseRunFilenameRejectsOtherFiles(t *testing.T) {
	for _, name := range []string{"demoreel.log", "run_", "run_abc.txt", ".log"} {
		_, ok := ParseRunFilename(name)
		assert.False(t, ok, name)
	}
}
