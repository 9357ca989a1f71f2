package series

import (
	"context"
	"fmt"
	"os"
)

// DirChecker reports readiness once the data directory is reachable.
type DirChecker struct {
	Dir string
}

// CheckReadiness returns an error if the data directory is missing or is not a directory.
func (d DirChecker) CheckReadiness(_ context.Context) error {
	info, err := os.Stat(d.Dir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory: %s is not a directory", d.Dir)
	}
	return nil
}
