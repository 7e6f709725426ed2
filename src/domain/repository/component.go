package repository

import (
	"github.com/input-output-hk/varro/src/domain"
)

type ComponentRepository interface {
	GetAll() ([]domain.Component, error)
	GetByName(name string) (*domain.Component, error)
	GetEnvironmentId(name, environment string) (string, error)

	// GetAllTeamRefs returns the distinct team names referenced by any
	// component's write, admin or maintain permissions.
	GetAllTeamRefs() ([]string, error)

	Update(id string, fields domain.Record) error
}
