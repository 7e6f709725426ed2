package strapi

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

// componentQuery populates the relations component consumers rely on:
// the latest commit, the owning product and the deployment
// environments.
const componentQuery = "components?populate[latest_commit]=true&populate[product]=true&populate[envs]=true"

type componentRepository struct {
	store *Store
}

func NewComponentRepository(store *Store) repository.ComponentRepository {
	return componentRepository{store}
}

func (self componentRepository) collection() string {
	return componentQuery + self.store.client.Filter() + self.store.pageSizeParam()
}

func (self componentRepository) GetAll() ([]domain.Component, error) {
	return fetchAll[domain.Component](self.store, self.collection()), nil
}

func (self componentRepository) GetByName(name string) (*domain.Component, error) {
	components := fetchAll[domain.Component](self.store, Filtered(self.collection(), "name", name))
	if len(components) == 0 {
		return nil, nil
	}
	return &components[0], nil
}

func (self componentRepository) GetEnvironmentId(name, environment string) (string, error) {
	component, err := self.GetByName(name)
	if err != nil {
		return "", err
	}
	if component == nil {
		return "", nil
	}
	if id := component.EnvironmentID(environment); id != "" {
		self.store.logger.Debug().Msgf("Found existing environment id for %s in component %s: %s", environment, name, id)
		return id, nil
	}
	self.store.logger.Debug().Msgf("No existing environment id found for %s in component %s", environment, name)
	return "", nil
}

func (self componentRepository) Update(id string, fields domain.Record) error {
	return self.store.Update("components", id, fields)
}

func (self componentRepository) GetAllTeamRefs() ([]string, error) {
	components, err := self.GetAll()
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, component := range components {
		for _, ref := range component.TeamRefs() {
			seen[ref] = struct{}{}
		}
	}
	refs := maps.Keys(seen)
	slices.Sort(refs)
	return refs, nil
}
