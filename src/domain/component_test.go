package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentUnmarshalKeepsExtraFields(t *testing.T) {
	t.Parallel()

	// given
	raw := []byte(`{
		"id": 3,
		"documentId": "comp3",
		"name": "prisoner-search",
		"language": "Kotlin",
		"github_repo": "hmpps-prisoner-search",
		"github_project_teams_write": ["search-team"],
		"envs": [
			{"id": 1, "documentId": "env1", "name": "dev"},
			{"id": 2, "documentId": "env2", "name": "prod"}
		]
	}`)

	// when
	var component Component
	err := json.Unmarshal(raw, &component)

	// then
	assert.NoError(t, err)
	assert.Equal(t, int64(3), component.ID)
	assert.Equal(t, "prisoner-search", component.Name)
	assert.Equal(t, "hmpps-prisoner-search", component.GithubRepo)
	assert.Equal(t, []string{"search-team"}, component.TeamsWrite)
	assert.Equal(t, Record{"language": "Kotlin"}, component.Extra)
}

func TestComponentRepoFallsBackToName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hmpps-auth", Component{Name: "auth", GithubRepo: "hmpps-auth"}.Repo())
	assert.Equal(t, "auth", Component{Name: "auth"}.Repo())
}

func TestComponentEnvironmentID(t *testing.T) {
	t.Parallel()

	// given
	component := Component{Envs: []Environment{
		{DocumentID: "env1", Name: "dev"},
		{DocumentID: "env2", Name: "prod"},
	}}

	// then
	assert.Equal(t, "env2", component.EnvironmentID("prod"))
	assert.Equal(t, "", component.EnvironmentID("staging"))
}

func TestComponentTeamRefsKeepsDuplicates(t *testing.T) {
	t.Parallel()

	// given
	component := Component{
		TeamsWrite:    []string{"hmpps-sre", "search-team"},
		TeamsAdmin:    []string{"hmpps-sre"},
		TeamsMaintain: nil,
	}

	// when
	refs := component.TeamRefs()

	// then
	assert.Equal(t, []string{"hmpps-sre", "search-team", "hmpps-sre"}, refs)
}
