package service

import (
	"testing"

	"github.com/grafana/loki/clients/pkg/promtail/api"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/varro/src/domain"
)

func TestJobLog(t *testing.T) {
	t.Parallel()

	// given
	entries := make(chan api.Entry, 1)
	jobLogService := NewJobLogService(entries, &log.Logger)
	run := domain.NewJobRun("hmpps-github-teams-discovery")

	// when
	jobLogService.Log(run, "processing 42 teams")

	// then
	entry := <-entries
	assert.Equal(t, "processing 42 teams", entry.Line)
	assert.Equal(t, "varro", string(entry.Labels["app"]))
	assert.Equal(t, "hmpps-github-teams-discovery", string(entry.Labels["job"]))
	assert.Equal(t, run.RunID.String(), string(entry.Labels["run"]))
}

func TestJobLogWithoutSink(t *testing.T) {
	t.Parallel()

	// given
	jobLogService := NewJobLogService(nil, &log.Logger)

	// when, then: must not block
	jobLogService.Log(domain.NewJobRun("hmpps-sharepoint-discovery"), "dropped")
}
