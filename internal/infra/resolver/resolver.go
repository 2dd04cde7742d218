// Package resolver provides executable lookup on the system search path.
package resolver

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/ziri-ai/ziri-launcher/internal/domain"
)

// Client implements domain.PathResolver using the host platform's
// executable lookup rules (including per-entry extensions on Windows).
type Client struct{}

// NewClient creates a new path resolver client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.PathResolver interface.
var _ domain.PathResolver = (*Client)(nil)

// Resolve locates the named executable on PATH.
// A plain lookup miss is reported as domain.ErrDelegateNotFound so callers
// can fall back; other lookup failures are wrapped as-is.
func (c *Client) Resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%q: %w", name, domain.ErrDelegateNotFound)
		}
		return "", fmt.Errorf("look up %q: %w", name, err)
	}
	return path, nil
}
