package strapi

import (
	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const environmentQuery = "environments?populate[component]=true"

type environmentRepository struct {
	store *Store
}

func NewEnvironmentRepository(store *Store) repository.EnvironmentRepository {
	return environmentRepository{store}
}

func (self environmentRepository) GetAll() ([]domain.Environment, error) {
	return fetchAll[domain.Environment](self.store, environmentQuery+self.store.pageSizeParam()), nil
}
