//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlidePager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	dir, err := tf.CreateSlideDir("deck", "Alpha", "Bravo")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-d", dir))
	require.True(t, tf.Ready(), "Should render the first frame")

	// Open the current slide in ov
	tf.Enter()
	require.True(t, tf.OutputContainsPlain("01.md", 3*time.Second), "Pager should show the slide source")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("Alpha"), "Should return to main TUI after closing pager")
}
