package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hangman.log")

	log, closer, err := New(path, "debug")
	require.NoError(t, err)
	log.Debug().Str("round", "r1").Msg("new round")
	log.Trace().Msg("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"round":"r1"`)
	assert.Contains(t, out, `"message":"new round"`)
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_LevelFallback(t *testing.T) {
	log, closer, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_Stderr(t *testing.T) {
	log, closer, err := New("-", "warn")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hangman", "hangman.log"), got)
}
