package repository

import (
	"github.com/input-output-hk/varro/src/domain"
)

type TeamRepository interface {
	GetAll() ([]domain.Team, error)
	GetByName(name string) (*domain.Team, error)
	Add(team domain.Team) (*domain.Team, error)
	Update(team domain.Team) error
}
