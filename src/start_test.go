package varro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetComponentOptsDefaultsToAll(t *testing.T) {
	t.Parallel()

	// given
	cmd := StartCmd{WebListen: ":8080", SharepointList: "Products"}

	// when
	start := cmd.GetComponentOpts()

	// then
	assert.Equal(t, &InstanceWebComponentOpts{ListenAddr: ":8080"}, start.Web)
	assert.True(t, start.TeamSync)
	assert.Equal(t, &InstanceProductExportOpts{ListTitle: "Products"}, start.ProductExport)
	assert.True(t, start.ScanRefresh)
}

func TestGetComponentOptsHonorsSelection(t *testing.T) {
	t.Parallel()

	// given
	cmd := StartCmd{Components: []string{"web", "teamsync"}, WebListen: ":9090"}

	// when
	start := cmd.GetComponentOpts()

	// then
	assert.Equal(t, &InstanceWebComponentOpts{ListenAddr: ":9090"}, start.Web)
	assert.True(t, start.TeamSync)
	assert.Nil(t, start.ProductExport)
	assert.False(t, start.ScanRefresh)
}

func TestGetComponentOptsPanicsOnUnknownComponent(t *testing.T) {
	t.Parallel()

	// given
	cmd := StartCmd{Components: []string{"warp-drive"}}

	// then
	assert.Panics(t, func() { cmd.GetComponentOpts() })
}

func TestGetSyncInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Hour, StartCmd{SyncEvery: time.Hour}.GetSyncInterval())
	assert.Equal(t, 6*time.Hour, StartCmd{}.GetSyncInterval())
}
