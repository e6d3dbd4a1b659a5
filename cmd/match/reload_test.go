package match

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endorses/telnum/internal/pkg/metrics"
	"github.com/endorses/telnum/internal/pkg/phonematcher"
)

func writeWatchlist(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestReloader(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	writeWatchlist(t, path, "watchlist: [\"+16505551212\"]\n")
	viper.SetConfigFile(path)

	m := phonematcher.New()
	r := &reloader{m: m, exp: metrics.NewExporter()}
	require.NoError(t, r.reload())
	assert.Equal(t, 1, m.Size())

	writeWatchlist(t, path, "watchlist: [\"+16505551212\", \"+442079460018\"]\n")

	// SIGHUP and file-change reloads may overlap.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.reload())
		}()
	}
	wg.Wait()
	assert.Equal(t, 2, m.Size())

	writeWatchlist(t, path, "watchlist: [\n")
	assert.Error(t, r.reload())
	assert.Equal(t, 2, m.Size(), "broken file keeps the watchlist")
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeWatchlist(t, path, "watchlist: []\n")

	var changes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanup, err := watchFile(ctx, path, func() { changes.Add(1) })
	require.NoError(t, err)
	defer cleanup()

	writeWatchlist(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	writeWatchlist(t, path, "watchlist: [\"+16505551212\"]\n")

	assert.Eventually(t, func() bool {
		return changes.Load() > 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchFileMissingDir(t *testing.T) {
	_, err := watchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), func() {})
	assert.Error(t, err)
}
