package domain

import "encoding/json"

type Component struct {
	ID            int64
	DocumentID    string
	Name          string
	GithubRepo    string
	Envs          []Environment
	Product       *Product
	TeamsWrite    []string
	TeamsAdmin    []string
	TeamsMaintain []string

	// Extra holds fields not covered by the schema above.
	Extra Record
}

func (self *Component) UnmarshalJSON(data []byte) error {
	known := struct {
		ID            int64         `json:"id"`
		DocumentID    string        `json:"documentId"`
		Name          string        `json:"name"`
		GithubRepo    string        `json:"github_repo"`
		Envs          []Environment `json:"envs"`
		Product       *Product      `json:"product"`
		TeamsWrite    []string      `json:"github_project_teams_write"`
		TeamsAdmin    []string      `json:"github_project_teams_admin"`
		TeamsMaintain []string      `json:"github_project_teams_maintain"`
	}{}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := extraFields(data,
		"id", "documentId", "name", "github_repo", "envs", "product",
		"github_project_teams_write", "github_project_teams_admin", "github_project_teams_maintain",
	)
	if err != nil {
		return err
	}
	*self = Component{
		ID:            known.ID,
		DocumentID:    known.DocumentID,
		Name:          known.Name,
		GithubRepo:    known.GithubRepo,
		Envs:          known.Envs,
		Product:       known.Product,
		TeamsWrite:    known.TeamsWrite,
		TeamsAdmin:    known.TeamsAdmin,
		TeamsMaintain: known.TeamsMaintain,
		Extra:         extra,
	}
	return nil
}

// Repo is the github repository to inspect for the component, which
// defaults to the component name when not set explicitly.
func (self Component) Repo() string {
	if self.GithubRepo != "" {
		return self.GithubRepo
	}
	return self.Name
}

// EnvironmentID returns the document id of the named deployment
// environment, or the empty string when the component has none.
func (self Component) EnvironmentID(name string) string {
	for _, env := range self.Envs {
		if env.Name == name {
			return env.DocumentID
		}
	}
	return ""
}

// TeamRefs returns every team referenced by the component's write,
// admin and maintain permissions, duplicates included.
func (self Component) TeamRefs() []string {
	refs := make([]string, 0, len(self.TeamsWrite)+len(self.TeamsAdmin)+len(self.TeamsMaintain))
	refs = append(refs, self.TeamsWrite...)
	refs = append(refs, self.TeamsAdmin...)
	refs = append(refs, self.TeamsMaintain...)
	return refs
}
