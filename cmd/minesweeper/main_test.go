package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-minesweeper/internal/game"
)

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.log")

	closeLog, err := setupLogging(path, "debug")
	require.NoError(t, err)

	game.Log.WithField("cell", game.Position{Row: 1, Col: 2}).Debug("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "cell=\"(1,2)\"")
	assert.Equal(t, logrus.DebugLevel, game.Log.GetLevel())
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	_, err := setupLogging("", "chatty")
	assert.Error(t, err)
}
