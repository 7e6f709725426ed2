package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobRunStatus(t *testing.T) {
	t.Parallel()

	// given
	run := NewJobRun("github-discovery")

	// then
	assert.False(t, run.Failed())
	assert.Equal(t, JobSucceeded, run.Status())

	// when
	run.Fail("Could not list teams")

	// then
	assert.True(t, run.Failed())
	assert.Equal(t, JobFailed, run.Status())
	assert.Equal(t, []string{"Could not list teams"}, run.Errors)
}

func TestTeamFields(t *testing.T) {
	t.Parallel()

	// given
	team := Team{
		ID:         12,
		DocumentID: "team12",
		TeamID:     987,
		Name:       "hmpps-sre",
		Extra:      Record{"terraform_managed": true},
	}

	// when
	fields := team.Fields()

	// then
	assert.Equal(t, Record{
		"github_team_id":    int64(987),
		"team_name":         "hmpps-sre",
		"parent_team_name":  "",
		"team_desc":         "",
		"members":           []string{},
		"terraform_managed": true,
	}, fields)
	assert.False(t, fields.Has("id"))
	assert.False(t, fields.Has("documentId"))
}
