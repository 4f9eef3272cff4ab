//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// waitExit waits for the process started by tf to end
func waitExit(t *testing.T, tf *TUITestFramework, within time.Duration) {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	select {
	case exitErr := <-done:
		if exitErr != nil {
			t.Logf("Process exited with: %v", exitErr)
		}
	case <-time.After(within):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("app did not exit")
	}
}

func TestCtrlCExitsFromQuery(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	srv := newSearchServer(tf)
	require.NoError(t, tf.StartSearch(srv.URL))
	require.True(t, tf.Ready(), "Should render the search prompt")

	require.NoError(t, tf.SendCtrlC())
	waitExit(t, tf, 2*time.Second)
}

func TestQuitFromBrowse(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	srv := newSearchServer(tf)
	require.NoError(t, tf.StartSearch(srv.URL))
	require.True(t, tf.Ready(), "Should render the search prompt")

	// In the input 'q' is just text; esc clears it again
	require.NoError(t, tf.Type("q"))
	require.True(t, tf.SeePlain("Search: q"), "Should type 'q' into the query")
	require.NoError(t, tf.Escape())

	require.NoError(t, tf.Type("cat"))
	require.True(t, tf.SeePlain("Results (2)"), "Should find cats")

	require.NoError(t, tf.FocusResults())
	require.NoError(t, tf.ToggleHelp())
	require.True(t, tf.SeePlain("searchbox help"), "Should show the help overlay")
	require.NoError(t, tf.ToggleHelp())

	require.NoError(t, tf.Quit())
	waitExit(t, tf, 2*time.Second)
}
