// Package fetch downloads and decompresses the Lichess puzzle database,
// short-circuiting on files already cached in the download directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"tactics/internal/config"
	"tactics/internal/display"
)

// Decompressor expands a zstd-compressed file to a destination path.
type Decompressor interface {
	Decompress(ctx context.Context, src, dst string) error
}

// Fetcher produces the decompressed puzzle database on local disk.
type Fetcher struct {
	cfg    config.Config
	client *http.Client
	dec    Decompressor
}

// New creates a fetcher. The HTTP client carries no overall timeout:
// the database is ~500MB and transfer time varies widely; cancellation
// goes through the context instead.
func New(cfg config.Config, dec Decompressor) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{},
		dec:    dec,
	}
}

// Fetch returns the path to the decompressed CSV database. A cached
// decompressed file wins outright; a cached archive skips the download
// but is still decompressed. Partial files from failed runs are not
// cleaned up.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	if err := os.MkdirAll(f.cfg.DownloadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	csvPath := f.cfg.DatabasePath()
	if fileExists(csvPath) {
		display.Success("Puzzle database already exists at %s", csvPath)
		return csvPath, nil
	}

	zstPath := f.cfg.CompressedPath()
	if !fileExists(zstPath) {
		display.Download("Downloading Lichess puzzle database from %s", f.cfg.DatabaseURL)
		display.Detail("This may take several minutes (file is ~500MB compressed)...")
		if err := f.download(ctx, zstPath); err != nil {
			return "", fmt.Errorf("failed to download: %w", err)
		}
		display.Success("Downloaded to %s", zstPath)
	}

	display.Info("Decompressing %s...", filepath.Base(zstPath))
	display.Detail("This may take several minutes (decompressed file is ~3.5GB)...")
	if err := f.dec.Decompress(ctx, zstPath, csvPath); err != nil {
		return "", fmt.Errorf("failed to decompress: %w", err)
	}
	display.Success("Decompressed to %s", csvPath)

	return csvPath, nil
}

func (f *Fetcher) download(ctx context.Context, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.DatabaseURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
