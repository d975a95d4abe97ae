package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative-hub/internal/core/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Briefs(), 3)
	require.Len(t, c.Patterns(), 3)

	b, ok := c.Brief("brief-playable-tutorial")
	require.True(t, ok)
	assert.Equal(t, domain.FormatPlayable, b.Format)
	assert.Equal(t, []string{"unity", "ironsource", "applovin"}, b.Networks)

	_, ok = c.Brief("missing")
	assert.False(t, ok)

	p := c.Patterns()[0]
	assert.Equal(t, 0.18, p.Lift["ctr"])
	assert.True(t, p.Applies(domain.Tags{Hook: "question", Style: "ugc", Pacing: "slow"}))
	assert.False(t, p.Applies(domain.Tags{Hook: "question", Style: "cinematic"}))
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte("briefs:\n  - id: a\n  - id: a\n"))
	require.Error(t, err)

	_, err = Parse([]byte("patterns:\n  - name: no id\n"))
	require.Error(t, err)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("briefs:\n  - id: only\n    name: Only\n"), 0o600))

	c, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, c.Briefs(), 1)
	assert.Empty(t, c.Patterns())

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("briefs:\n  - id: first\n"), 0o600))

	c, err := Open(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil))) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("briefs:\n  - id: first\n  - id: second\n"), 0o600))

	assert.Eventually(t, func() bool { return len(c.Briefs()) == 2 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_ReloadsOnAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("briefs:\n  - id: first\n"), 0o600))

	c, err := Open(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = c.Watch(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil))) }()
	time.Sleep(100 * time.Millisecond)

	save := func(body string) {
		tmp := filepath.Join(dir, ".catalog.yaml.tmp")
		require.NoError(t, os.WriteFile(tmp, []byte(body), 0o600))
		require.NoError(t, os.Rename(tmp, path))
	}

	save("briefs:\n  - id: first\n  - id: second\n")
	assert.Eventually(t, func() bool { return len(c.Briefs()) == 2 }, 3*time.Second, 20*time.Millisecond)

	// The watch survives the inode swap.
	save("briefs:\n  - id: first\n  - id: second\n  - id: third\n")
	assert.Eventually(t, func() bool { return len(c.Briefs()) == 3 }, 3*time.Second, 20*time.Millisecond)
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("briefs:\n  - id: first\n"), 0o600))

	c, err := Open(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = c.Watch(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil))) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("briefs:\n  - id: a\n  - id: b\n"), 0o600))
	assert.Never(t, func() bool { return len(c.Briefs()) != 1 }, 300*time.Millisecond, 20*time.Millisecond)
}
