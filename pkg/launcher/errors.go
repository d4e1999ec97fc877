package launcher

import (
	"fmt"
	"strings"
)

// SpawnError reports that the dev server process could not be started.
type SpawnError struct {
	Command []string
	Dir     string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %q in %s: %v", strings.Join(e.Command, " "), e.Dir, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
