// Package zstd wraps the external zstd binary used to decompress the
// downloaded puzzle database.
package zstd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

const (
	toolName     = "zstd"
	probeTimeout = 5 * time.Second
)

// Tool invokes the zstd binary as a subprocess.
type Tool struct {
	name string
}

func New() *Tool {
	return &Tool{name: toolName}
}

// Installed probes the binary with a version query.
func (t *Tool) Installed(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return exec.CommandContext(ctx, t.name, "--version").Run() == nil
}

// Install attempts a platform package manager installation. Package
// manager output is passed through so sudo and brew prompts stay visible.
func (t *Tool) Install(ctx context.Context) error {
	switch runtime.GOOS {
	case "darwin":
		if err := t.run(ctx, "brew", "install", "zstd"); err != nil {
			return fmt.Errorf("brew install failed (is Homebrew installed?): %w", err)
		}
	case "linux":
		if err := t.run(ctx, "sudo", "apt-get", "update"); err != nil {
			return fmt.Errorf("apt-get update failed: %w", err)
		}
		if err := t.run(ctx, "sudo", "apt-get", "install", "-y", "zstd"); err != nil {
			return fmt.Errorf("apt-get install failed (Fedora/RHEL: sudo dnf install zstd): %w", err)
		}
	default:
		return fmt.Errorf("unsupported platform %s: install zstd manually", runtime.GOOS)
	}
	return nil
}

// Decompress expands src into dst via `zstd -d src -o dst`.
func (t *Tool) Decompress(ctx context.Context, src, dst string) error {
	if err := t.run(ctx, t.name, "-d", src, "-o", dst); err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	return nil
}

func (t *Tool) run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
