package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	info, err := os.Stat(filepath.Dir(cfg.HostKeyPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewSSHServerRejectsBadGameConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Game.Grid.Width = 2

	_, err := NewSSHServer(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKeyPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".snake", "host_key"), path)
	assert.DirExists(t, filepath.Join(home, ".snake"))
}
