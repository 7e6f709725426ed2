package repository

import (
	"github.com/input-output-hk/varro/src/domain"
)

type ScheduledJobRepository interface {
	GetByName(name string) (*domain.ScheduledJob, error)
	Update(id string, fields domain.Record) error
}
