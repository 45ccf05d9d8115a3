package helpers

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard wraps the system clipboard so commands can be tested with a
// fake and the real implementation stays a one-liner.
type Clipboard interface {
	Copy(text string) error
}

type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available in this terminal")
	}
	return clipboard.WriteAll(text)
}

// MockClipboard records copies for tests
type MockClipboard struct {
	Copied []string
	Err    error
}

func (c *MockClipboard) Copy(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Copied = append(c.Copied, text)
	return nil
}
