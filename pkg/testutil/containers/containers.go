//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// terminateOnCleanup ties the container's lifetime to t, so setup failures
// after this point can t.Fatalf without leaking it.
func terminateOnCleanup(t *testing.T, c testcontainers.Container) {
	t.Helper()
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
	})
}
