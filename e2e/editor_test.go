//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWelcomeBannerOnEmptyStart(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "banner", 4096)

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first frame")
	require.True(t, tf.SeePlain("Tilde -- version"), "Should show the welcome banner")

	require.NoError(t, tf.Quit())
	code, err := tf.WaitExit(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestOpenFileShowsNumberedLines(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "open-file", 4096)

	path := tf.WriteFile("notes.txt", "alpha\nbeta\n")

	require.NoError(t, tf.StartApp(path), "Failed to start app")
	require.True(t, tf.SeePlain("0 alpha"), "Should show the first line")
	require.True(t, tf.SeePlain("1 beta"), "Should show the second line")
	require.NotContains(t, tf.SnapshotPlain(), "Tilde -- version", "A document with lines has no banner")

	require.NoError(t, tf.Quit())
	code, err := tf.WaitExit(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("does-not-exist.txt"), "Failed to start app")
	require.True(t, tf.SeePlain("Tilde -- version"), "Should fall back to an empty document")

	require.NoError(t, tf.Quit())
	_, err := tf.WaitExit(2 * time.Second)
	require.NoError(t, err)
}

func TestNavigationRedraws(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "navigation", 4096)

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first frame")
	require.True(t, tf.SeePlain("Tilde -- version"))

	initialOutput := tf.Snapshot()
	require.NoError(t, tf.SendKeys(KeyDown+KeyRight))

	// Moving the cursor writes a new cursor position
	require.True(t, tf.WaitFor(func(s string) bool {
		return s != initialOutput
	}, time.Second), "Navigation should change output")

	require.NoError(t, tf.Quit())
	code, err := tf.WaitExit(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestQuitFromInsertionMode(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should draw the first frame")

	require.NoError(t, tf.SendKeys(KeyInsert+KeyDown+KeyLeft))
	require.NoError(t, tf.Quit())

	code, err := tf.WaitExit(2 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 0, code)
}
