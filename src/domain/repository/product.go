package repository

import (
	"github.com/input-output-hk/varro/src/domain"
)

type ProductRepository interface {
	// GetAll returns every product restricted to the slack channel and
	// identity fields most consumers need.
	GetAll() ([]domain.Product, error)

	// GetAllDetailed returns every product with its full attribute set.
	GetAllDetailed() ([]domain.Product, error)

	GetByPId(pId string) (*domain.Product, error)
}
