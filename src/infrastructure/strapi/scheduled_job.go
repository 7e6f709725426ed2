package strapi

import (
	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const scheduledJobCollection = "scheduled-jobs"

type scheduledJobRepository struct {
	store *Store
}

func NewScheduledJobRepository(store *Store) repository.ScheduledJobRepository {
	return scheduledJobRepository{store}
}

func (self scheduledJobRepository) GetByName(name string) (*domain.ScheduledJob, error) {
	jobs := fetchAll[domain.ScheduledJob](self.store, Filtered(scheduledJobCollection, "name", name))
	if len(jobs) == 0 {
		return nil, nil
	}
	return &jobs[0], nil
}

func (self scheduledJobRepository) Update(id string, fields domain.Record) error {
	return self.store.Update(scheduledJobCollection, id, fields)
}
