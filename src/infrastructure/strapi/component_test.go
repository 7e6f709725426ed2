package strapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestComponentRepositoryAppliesFilterAndPageSize(t *testing.T) {
	t.Parallel()

	// given a store configured with a components pre-filter
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		writePage(w, 1, 1)
	}))
	defer server.Close()
	client := NewClient(Config{
		BaseURL:    server.URL,
		Token:      "token",
		MaxRetries: 1,
		PageSize:   25,
		Filter:     "&filters[name][$contains]=hmpps",
	}, &log.Logger)
	client.sleep = func(time.Duration) {}
	components := NewComponentRepository(NewStore(client, &log.Logger))

	// when
	_, err := components.GetAll()

	// then
	assert.NoError(t, err)
	assert.Contains(t, query, "populate[latest_commit]=true")
	assert.Contains(t, query, "populate[product]=true")
	assert.Contains(t, query, "populate[envs]=true")
	assert.Contains(t, query, "filters[name][$contains]=hmpps")
	assert.Contains(t, query, "pagination[pageSize]=25")
}

func TestGetAllTeamRefsUnionsPermissionLists(t *testing.T) {
	t.Parallel()

	// given components with overlapping and missing team lists
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"data": [
				{"id": 1, "github_project_teams_write": ["b", "a"], "github_project_teams_admin": ["a"], "github_project_teams_maintain": null},
				{"id": 2, "github_project_teams_write": ["c"]}
			],
			"meta": {"pagination": {"page": 1, "pageSize": 2, "pageCount": 1, "total": 2}}
		}`)
	}))
	defer server.Close()
	components := NewComponentRepository(buildStore(server.URL))

	// when
	refs, err := components.GetAllTeamRefs()

	// then
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, refs)
}

func TestGetEnvironmentId(t *testing.T) {
	t.Parallel()

	// given
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"data": [{
				"id": 1, "name": "prisoner-search",
				"envs": [{"id": 1, "documentId": "env1", "name": "dev"}]
			}],
			"meta": {"pagination": {"page": 1, "pageSize": 1, "pageCount": 1, "total": 1}}
		}`)
	}))
	defer server.Close()
	components := NewComponentRepository(buildStore(server.URL))

	// when
	id, err := components.GetEnvironmentId("prisoner-search", "dev")
	missing, missingErr := components.GetEnvironmentId("prisoner-search", "prod")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "env1", id)
	assert.NoError(t, missingErr)
	assert.Equal(t, "", missing)
}
