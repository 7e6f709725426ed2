package repository

import (
	"github.com/input-output-hk/varro/src/domain"
)

type EnvironmentRepository interface {
	GetAll() ([]domain.Environment, error)
}
