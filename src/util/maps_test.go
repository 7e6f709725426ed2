package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateMap(t *testing.T) {
	t.Parallel()

	// given
	m := map[string]any{
		"circleci": map[string]any{"existing": true},
	}

	// when
	UpdateMap(m, "circleci", map[string]any{"hmpps_orb": "10.1.0"})
	UpdateMap(m, "terraform", map[string]any{"version": "1.5.7"})

	// then
	assert.Equal(t, map[string]any{
		"circleci":  map[string]any{"existing": true, "hmpps_orb": "10.1.0"},
		"terraform": map[string]any{"version": "1.5.7"},
	}, m)
}

func TestFetchYamlValuesForKey(t *testing.T) {
	t.Parallel()

	// given
	data := map[string]any{
		"config":  map[string]any{"timeout": 30, "retries": 3},
		"service": map[string]any{"timeout": 10},
		"jobs":    []any{map[string]any{"timeout": 5}, map[string]any{"other": 1}},
	}

	// when
	values := FetchYamlValuesForKey(data, "timeout")

	// then
	assert.Equal(t, map[string]any{
		"config":  map[string]any{"timeout": 30},
		"service": map[string]any{"timeout": 10},
		"jobs":    map[string]any{"timeout": 5},
	}, values)
}

func TestFetchYamlValuesForKeyMergesMapValues(t *testing.T) {
	t.Parallel()

	// given
	data := map[string]any{
		"generic_service": map[string]any{"image": "quay.io/hmpps/app", "tag": "latest"},
	}

	// when
	values := FetchYamlValuesForKey(data, "generic_service")

	// then
	assert.Equal(t, map[string]any{
		"image": "quay.io/hmpps/app",
		"tag":   "latest",
	}, values)
}

func TestFetchYamlValuesForKeyWhenAbsent(t *testing.T) {
	t.Parallel()

	// when
	values := FetchYamlValuesForKey(map[string]any{"a": []any{"b"}}, "missing")

	// then
	assert.Nil(t, values)
}

func TestFindMatchingKeys(t *testing.T) {
	t.Parallel()

	// given
	data := map[string]any{
		"routes": []any{
			map[string]any{"receiver": "digital-prison-service-dev", "continue": true},
			map[string]any{"nested": map[string]any{"receiver": "probation-integration-notifications"}},
		},
	}

	// when
	found := FindMatchingKeys(data, "receiver")

	// then
	assert.ElementsMatch(t, []any{"digital-prison-service-dev", "probation-integration-notifications"}, found)
}
