package strapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

var _ repository.CatalogueRepository = (*Store)(nil)

// PageDescriptor is the pagination block of a collection response.
type PageDescriptor struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Pagination *PageDescriptor `json:"pagination"`
	} `json:"meta"`
}

type payload struct {
	Data domain.Record `json:"data"`
}

// Store aggregates, resolves and mutates catalogue records over a
// Client. It holds no record state between calls, only the outcome of
// the initial connectivity probe.
type Store struct {
	client    *Client
	logger    zerolog.Logger
	Connected bool
}

func NewStore(client *Client, logger *zerolog.Logger) *Store {
	return &Store{
		client: client,
		logger: logger.With().Str("component", "CatalogueStore").Logger(),
	}
}

// Connect probes the catalogue and remembers the outcome.
func (self *Store) Connect() bool {
	self.Connected = self.client.Probe()
	return self.Connected
}

func (self *Store) Client() *Client {
	return self.client
}

func (self *Store) pageSizeParam() string {
	return "&pagination[pageSize]=" + strconv.Itoa(self.client.PageSize())
}

// fetchPages fetches page 1 of the uri as given, reads the page count
// off its pagination block, then walks the remaining pages through
// SetPage. A failed first page degrades to an empty result and a
// failed later page is dropped, so one bad page never discards what
// was already collected. Dropped pages are counted rather than
// silently lost.
func (self *Store) fetchPages(uri string) []json.RawMessage {
	url := self.client.Url(uri)
	pageCount := 1
	dropped := 0
	var records []json.RawMessage

	if data, descriptor, err := self.fetchPage(url); err != nil {
		self.logger.Error().Err(err).Msg("Failed to get page data from the service catalogue")
		dropped++
	} else {
		self.logger.Debug().Msgf("Got result page: %d from the service catalogue", descriptor.Page)
		if descriptor.PageCount > 1 {
			pageCount = descriptor.PageCount
		}
		records = append(records, data...)
	}

	for page := 2; page <= pageCount; page++ {
		if data, descriptor, err := self.fetchPage(SetPage(url, page)); err != nil {
			dropped++
		} else {
			self.logger.Debug().Msgf("Got result page: %d from the service catalogue", descriptor.Page)
			records = append(records, data...)
		}
	}

	if dropped > 0 {
		pagesDropped.WithLabelValues(lastSegment(uri)).Add(float64(dropped))
		self.logger.Warn().Int("dropped", dropped).Int("pages", pageCount).Msgf("Dropped %d of %d pages of %s", dropped, pageCount, Basename(uri))
	}
	return records
}

// fetchPage rejects responses without a pagination block, even when
// they carry data, matching how a missing block voids the whole page.
func (self *Store) fetchPage(url string) ([]json.RawMessage, PageDescriptor, error) {
	body, err := self.client.GetJson(url)
	if err != nil {
		return nil, PageDescriptor{}, err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, PageDescriptor{}, errors.WithMessage(err, "Could not decode catalogue response")
	}
	if env.Meta.Pagination == nil {
		return nil, PageDescriptor{}, errors.New("Response has no pagination metadata")
	}
	var data []json.RawMessage
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, PageDescriptor{}, errors.WithMessage(err, "Data is not a record list")
		}
	}
	return data, *env.Meta.Pagination, nil
}

// fetchAll aggregates every page of the uri and decodes each record,
// skipping the ones that do not match the expected shape.
func fetchAll[T any](store *Store, uri string) []T {
	raws := store.fetchPages(uri)
	records := make([]T, 0, len(raws))
	for _, raw := range raws {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			store.logger.Debug().Err(err).Msg("Skipping malformed record")
			continue
		}
		records = append(records, record)
	}
	return records
}

// getSingle fetches a uri whose data field holds one object rather
// than a list. Anything else counts as no record.
func (self *Store) getSingle(uri string) domain.Record {
	body, err := self.client.GetJson(self.client.Url(uri))
	if err != nil {
		self.logger.Error().Err(err).Msg("Failed to get data from the service catalogue")
		return nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		self.logger.Error().Err(err).Msg("Failed to get data from the service catalogue")
		return nil
	}
	var record domain.Record
	if err := json.Unmarshal(env.Data, &record); err != nil || record == nil {
		self.logger.Warn().Msg("Unexpected data format for single record")
		return nil
	}
	return record
}

func (self *Store) GetAllRecords(collection string) ([]domain.Record, error) {
	self.logger.Info().Str("url", self.client.Url(collection)).Msgf("Getting all records from %s in the service catalogue", lastSegment(collection))
	return fetchAll[domain.Record](self, collection), nil
}

func (self *Store) GetRecord(collection, field, value string) (domain.Record, error) {
	records := fetchAll[domain.Record](self, Filtered(collection, field, value))
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (self *Store) GetRecordById(collection, id string) (domain.Record, error) {
	if record := self.getSingle(collection + "/" + id); len(record) > 0 {
		return record, nil
	}
	return nil, nil
}

// GetFilteredRecords is the single-attempt convenience lookup: one GET
// without retries, absent on a miss. Callers that need resilience
// should prefer GetRecord.
func (self *Store) GetFilteredRecords(collection, field, value string) ([]domain.Record, error) {
	status, body, err := self.client.Send(http.MethodGet, self.client.Url(Filtered(collection, field, value)), nil)
	if err != nil {
		self.logger.Error().Err(err).Msgf("Error getting catalogue records for %s=%s in %s", field, value, collection)
		return nil, err
	}
	var env struct {
		Data []domain.Record `json:"data"`
	}
	if status == http.StatusOK {
		if err := json.Unmarshal(body, &env); err != nil {
			self.logger.Error().Err(err).Msgf("Error getting catalogue records for %s=%s in %s", field, value, collection)
			return nil, err
		}
	}
	if len(env.Data) == 0 {
		self.logger.Warn().Msgf("Could not find catalogue records for %s=%s in %s", field, value, collection)
		return nil, nil
	}
	self.logger.Debug().Msgf("Successfully found catalogue records for %s=%s in %s: %d", field, value, collection, env.Data[0].ID())
	return env.Data, nil
}

func (self *Store) GetId(collection, field, value string) (string, error) {
	records := fetchAll[domain.Record](self, Filtered(collection, field, value))
	if len(records) == 0 {
		return "", nil
	}
	if id := records[0].DocumentID(); id != "" {
		self.logger.Debug().Msgf("Successfully found document id for %s=%s in %s: %s", field, value, collection, id)
		return id, nil
	}
	self.logger.Warn().Msgf("Could not find document id for %s=%s in %s", field, value, collection)
	return "", nil
}

// GetComponentEnvId scans a component record's embedded envs list for
// the named environment and returns its document id, or the empty
// string when the component has no such environment.
func (self *Store) GetComponentEnvId(component domain.Record, environment string) string {
	name := component.Str("name")
	envs, _ := component["envs"].([]any)
	for _, entry := range envs {
		env, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if record := domain.Record(env); record.Str("name") == environment {
			if id := record.DocumentID(); id != "" {
				self.logger.Debug().Msgf("Found existing environment id for %s in component %s: %s", environment, name, id)
				return id
			}
			break
		}
	}
	self.logger.Debug().Msgf("No existing environment id found for %s in component %s", environment, name)
	return ""
}

// Add creates a record and returns it as decoded from the response.
// Success is strictly the creation status code.
func (self *Store) Add(collection string, fields domain.Record) (domain.Record, error) {
	self.logger.Debug().Interface("data", fields).Msg("Data to be added")
	status, body, err := self.client.Send(http.MethodPost, self.client.Url(collection), payload{fields})
	if err != nil {
		self.logger.Error().Err(err).Msgf("Error adding a record to %s in the service catalogue", lastSegment(collection))
		return nil, err
	}
	if status != http.StatusCreated {
		self.logger.Error().Int("status", status).Bytes("body", body).Msgf("Received non-201 response from the service catalogue to add a record to %s", lastSegment(collection))
		return nil, errors.Errorf("Unexpected status %d adding a record to %s", status, lastSegment(collection))
	}
	var env struct {
		Data domain.Record `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.WithMessage(err, "Could not decode the created record")
	}
	self.logger.Info().Msgf("Successfully added %s to %s: %d", recordName(fields), lastSegment(collection), status)
	return env.Data, nil
}

// Update rewrites a record's fields. Success is strictly the OK
// status code. Like every mutation it is never retried, since the
// store offers no idempotency keys.
func (self *Store) Update(collection, id string, fields domain.Record) error {
	self.logger.Debug().Interface("data", fields).Msg("Data to be uploaded")
	status, body, err := self.client.Send(http.MethodPut, self.client.Url(collection+"/"+id), payload{fields})
	if err != nil {
		self.logger.Error().Err(err).Msgf("Error updating record %s in %s", id, lastSegment(collection))
		return err
	}
	if status != http.StatusOK {
		self.logger.Error().Int("status", status).Bytes("body", body).Msgf("Received non-200 response from the service catalogue for record %s in %s", id, lastSegment(collection))
		return errors.Errorf("Unexpected status %d updating record %s in %s", status, id, lastSegment(collection))
	}
	self.logger.Info().Msgf("Successfully updated record %s in %s: %d", id, lastSegment(collection), status)
	return nil
}

// Delete accepts any 2xx status, since some backends answer a delete
// with 204 and no body.
func (self *Store) Delete(collection, id string) error {
	self.logger.Debug().Msgf("Deleting record %s from %s", id, lastSegment(collection))
	status, body, err := self.client.Send(http.MethodDelete, self.client.Url(collection+"/"+id), nil)
	if err != nil {
		self.logger.Error().Err(err).Msgf("Error deleting record %s from %s", id, lastSegment(collection))
		return err
	}
	if status < 200 || status >= 300 {
		self.logger.Error().Int("status", status).Bytes("body", body).Msgf("Received non-2xx response from the service catalogue deleting record %s in %s", id, lastSegment(collection))
		return errors.Errorf("Unexpected status %d deleting record %s from %s", status, id, lastSegment(collection))
	}
	self.logger.Info().Msgf("Successfully deleted record %s from %s: %d", id, lastSegment(collection), status)
	return nil
}

// Unpublish clears the record's publication timestamp, the
// collection's soft delete.
func (self *Store) Unpublish(collection, id string) error {
	status, body, err := self.client.Send(http.MethodPut, self.client.Url(collection+"/"+id), payload{domain.Record{"publishedAt": nil}})
	if err != nil {
		self.logger.Error().Err(err).Msgf("Error updating record %s in %s", id, lastSegment(collection))
		return err
	}
	if status != http.StatusOK {
		self.logger.Info().Int("status", status).Bytes("body", body).Msgf("Received non-200 response from the service catalogue for record %s in %s", id, lastSegment(collection))
		return errors.Errorf("Unexpected status %d unpublishing record %s in %s", status, id, lastSegment(collection))
	}
	self.logger.Info().Msgf("Successfully unpublished record %s in %s: %d", id, lastSegment(collection), status)
	return nil
}

func recordName(fields domain.Record) string {
	if name := fields.Str("team_name"); name != "" {
		return name
	}
	return fields.Str("name")
}
