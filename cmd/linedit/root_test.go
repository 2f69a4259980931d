package main

import (
	"io"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDocument(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "a.txt", []byte("one\ntwo\n"), 0o644))

	t.Run("no path", func(t *testing.T) {
		doc, err := openDocument(fsys, "", false)
		require.NoError(t, err)
		assert.True(t, doc.Empty())
	})

	t.Run("existing file", func(t *testing.T) {
		doc, err := openDocument(fsys, "a.txt", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, doc.Lines())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := openDocument(fsys, "missing.txt", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "--new")
	})

	t.Run("missing file created", func(t *testing.T) {
		doc, err := openDocument(fsys, "missing.txt", true)
		require.NoError(t, err)
		assert.True(t, doc.Empty())
	})
}

func TestNewScreenUnknownBackend(t *testing.T) {
	_, err := newScreen("curses")
	assert.ErrorContains(t, err, `unknown backend "curses"`)
}

func TestRootCmdRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"a.txt", "b.txt"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}

func TestRootCmdMissingFileFailsBeforeUI(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"does-not-exist.txt"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRootCmdBadBackendFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--backend", "curses"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.ErrorContains(t, cmd.Execute(), "backend")
}
