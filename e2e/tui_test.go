//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startListing(t *testing.T, listingType string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	configPath, err := tf.CreateWorkspace(listingType)
	require.NoError(t, err, "Failed to create workspace")
	require.NoError(t, tf.StartApp("-config", configPath), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	return tf
}

func TestStartShowsListing(t *testing.T) {
	t.Parallel()
	tf := startListing(t, "search")

	require.True(t, tf.SeePlain("lotview"), "Should show title")
	require.True(t, tf.SeePlain("Filters"), "Should show navigation menu")
	require.True(t, tf.SeePlain("Smartphone X 128GB"), "Should show the first page")
}

func TestSearchCommitsQueryAndShowsChip(t *testing.T) {
	t.Parallel()
	tf := startListing(t, "search")

	require.NoError(t, tf.SendKeys(KeySearch))
	require.True(t, tf.SeePlain("Search"), "Should open the search panel")
	require.NoError(t, tf.Type("laptop"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.SeePlain(`"laptop" ✕`), "Should show the search chip")
	require.True(t, tf.SeePlain("Gaming laptop 15in"), "Should show matching listings")
}

func TestSortPickerAppliesOrdering(t *testing.T) {
	t.Parallel()
	tf := startListing(t, "search")

	require.NoError(t, tf.SendKeys(KeySort))
	require.True(t, tf.SeePlain("Cheapest first"), "Should list sort options")
	require.NoError(t, tf.SendKeys(KeyDown))
	require.NoError(t, tf.Enter())

	require.True(t, tf.SeePlain("Cheapest first ✕"), "Should show the sort chip")
}

func TestQuitSavesCheckpoint(t *testing.T) {
	t.Parallel()
	tf := startListing(t, "search")
	workspace := tf.workspace

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))

	entries, err := os.ReadDir(filepath.Join(workspace, "checkpoints", "listing", "search"))
	require.NoError(t, err, "Should write the checkpoint of the listing")
	require.NotEmpty(t, entries)
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := startListing(t, "user_offers")

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(3*time.Second))
}
