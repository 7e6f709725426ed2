package repository

import (
	"github.com/input-output-hk/varro/src/domain"
)

// CatalogueRepository is the schemaless surface of the record store.
// Lookups return a nil record and a nil error when the store answered
// but no record matched.
type CatalogueRepository interface {
	GetAllRecords(collection string) ([]domain.Record, error)
	GetRecord(collection, field, value string) (domain.Record, error)
	GetRecordById(collection, id string) (domain.Record, error)
	GetFilteredRecords(collection, field, value string) ([]domain.Record, error)
	GetId(collection, field, value string) (string, error)
	GetComponentEnvId(component domain.Record, environment string) string

	Add(collection string, fields domain.Record) (domain.Record, error)
	Update(collection, id string, fields domain.Record) error
	Delete(collection, id string) error
	Unpublish(collection, id string) error
}
