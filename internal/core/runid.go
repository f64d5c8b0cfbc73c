package core

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// runIDPattern matches a valid run identifier prefix in output link names.
var runIDPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// NewRunID produces the 8-character identifier that namespaces this run's
// output links. Generation never fails: uuid draws from crypto/rand, and if
// the entropy source is unavailable the fallback derives an identifier from
// wall clock and PID rather than aborting the run.
func NewRunID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%08x", uint32(time.Now().UnixNano())^uint32(os.Getpid()))
	}
	hex := strings.ReplaceAll(id.String(), "-", "")
	return hex[:RunIDLength]
}

// IsRunID reports whether s looks like a run identifier.
// Used by purge to recognize run-prefixed link names.
func IsRunID(s string) bool {
	return runIDPattern.MatchString(s)
}
