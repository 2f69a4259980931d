package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(false)
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(logDir, logFileName)
	require.FileExists(t, logPath)

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll(logDir, 0o755))
	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644))

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	output := log.Writer()
	assert.NotEqual(t, os.Stdout, output)
	assert.NotEqual(t, os.Stderr, output)
}
