package fetch

import (
	"context"
	"net"
	"os"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tactics/internal/config"
)

// copyDecompressor stands in for the zstd binary by copying the archive
// bytes verbatim.
type copyDecompressor struct {
	calls int32
}

func (d *copyDecompressor) Decompress(_ context.Context, src, dst string) error {
	atomic.AddInt32(&d.calls, 1)
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// serveDatabase starts a local HTTP server exposing body at the archive
// path and returns its URL.
func serveDatabase(t *testing.T, body []byte, hits *int32) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/lichess_db_puzzle.csv.zst", func(c *fiber.Ctx) error {
		atomic.AddInt32(hits, 1)
		return c.Send(body)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String() + "/lichess_db_puzzle.csv.zst"
}

func testConfig(t *testing.T, url string) config.Config {
	cfg := config.Default(t.TempDir())
	cfg.DatabaseURL = url
	return cfg
}

func TestFetchDownloadsAndDecompresses(t *testing.T) {
	body := []byte("PuzzleId,FEN,Moves\n")
	var hits int32
	cfg := testConfig(t, serveDatabase(t, body, &hits))

	dec := &copyDecompressor{}
	path, err := New(cfg, dec).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.DatabasePath(), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&dec.calls))
}

func TestFetchIdempotentWhenDecompressed(t *testing.T) {
	var hits int32
	cfg := testConfig(t, serveDatabase(t, []byte("zzz"), &hits))

	require.NoError(t, os.MkdirAll(cfg.DownloadDir, 0o755))
	require.NoError(t, os.WriteFile(cfg.DatabasePath(), []byte("cached"), 0o644))

	dec := &copyDecompressor{}
	f := New(cfg, dec)
	for i := 0; i < 2; i++ {
		path, err := f.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cfg.DatabasePath(), path)
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "cached database must not be re-downloaded")
	assert.Equal(t, int32(0), atomic.LoadInt32(&dec.calls), "cached database must not be re-decompressed")
}

func TestFetchSkipsDownloadWhenArchiveCached(t *testing.T) {
	var hits int32
	cfg := testConfig(t, serveDatabase(t, []byte("zzz"), &hits))

	require.NoError(t, os.MkdirAll(cfg.DownloadDir, 0o755))
	require.NoError(t, os.WriteFile(cfg.CompressedPath(), []byte("archive"), 0o644))

	dec := &copyDecompressor{}
	path, err := New(cfg, dec).Fetch(context.Background())
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("archive"), got)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&dec.calls))
}

func TestFetchReportsHTTPErrors(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/lichess_db_puzzle.csv.zst", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	cfg := testConfig(t, "http://"+ln.Addr().String()+"/lichess_db_puzzle.csv.zst")
	_, err = New(cfg, &copyDecompressor{}).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to download")
}
