package setup

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Marker is the completion sentinel consumed by downstream apps. Only
// its existence carries meaning; the body is informational.
type Marker struct {
	path string
}

func NewMarker(path string) *Marker {
	return &Marker{path: path}
}

func (m *Marker) Path() string {
	return m.path
}

func (m *Marker) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Create writes the sentinel with a fresh run identifier and returns
// that identifier.
func (m *Marker) Create() (string, error) {
	runID := uuid.New().String()
	body := fmt.Sprintf("Tactical puzzles configured successfully\nrun: %s\n", runID)
	if err := os.WriteFile(m.path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write setup marker: %w", err)
	}
	return runID, nil
}

// Remove deletes the sentinel. A missing sentinel is not an error.
func (m *Marker) Remove() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove setup marker: %w", err)
	}
	return nil
}
