package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateRunID creates a unique run identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
// Example: 20260823_205106_a7b3
func GenerateRunID() string {
	now := time.Now()
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortRunID extracts the short ID (last 4 hex chars) from a full run ID.
// Example: "20260823_205106_a7b3" -> "a7b3"
func ShortRunID(runID string) string {
	if len(runID) < 4 {
		return runID
	}
	return runID[len(runID)-4:]
}

// ParseRunFilename extracts run info from a log filename.
// Example: "run_20260823_205106_a7b3.log" -> "20260823_205106_a7b3", true
func ParseRunFilename(filename string) (runID string, ok bool) {
	const prefix = "run_"
	const suffix = ".log"

	if len(filename) < len(prefix)+len(suffix) {
		return "", false
	}
	if filename[:len(prefix)] != prefix {
		return "", false
	}
	if filename[len(filename)-len(suffix):] != suffix {
		return "", false
	}

	return filename[len(prefix) : len(filename)-len(suffix)], true
}

// RunFilename generates the log filename for a run ID.
// Example: "20260823_205106_a7b3" -> "run_20260823_205106_a7b3.log"
func RunFilename(runID string) string {
	return "run_" + runID + ".log"
}
