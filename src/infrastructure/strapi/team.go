package strapi

import (
	"github.com/pkg/errors"

	"github.com/input-output-hk/varro/src/domain"
	"github.com/input-output-hk/varro/src/domain/repository"
)

const teamCollection = "github-teams"

type teamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) repository.TeamRepository {
	return teamRepository{store}
}

func (self teamRepository) GetAll() ([]domain.Team, error) {
	return fetchAll[domain.Team](self.store, teamCollection), nil
}

func (self teamRepository) GetByName(name string) (*domain.Team, error) {
	teams := fetchAll[domain.Team](self.store, Filtered(teamCollection, "team_name", name))
	if len(teams) == 0 {
		return nil, nil
	}
	return &teams[0], nil
}

func (self teamRepository) Add(team domain.Team) (*domain.Team, error) {
	record, err := self.store.Add(teamCollection, team.Fields())
	if err != nil {
		return nil, err
	}
	created := team
	created.ID = record.ID()
	created.DocumentID = record.DocumentID()
	return &created, nil
}

func (self teamRepository) Update(team domain.Team) error {
	if team.DocumentID == "" {
		return errors.Errorf("Team %q has no document id", team.Name)
	}
	return self.store.Update(teamCollection, team.DocumentID, team.Fields())
}
