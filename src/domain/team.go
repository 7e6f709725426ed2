package domain

import "encoding/json"

// Team is a record of the github-teams collection.
type Team struct {
	ID          int64
	DocumentID  string
	TeamID      int64
	Name        string
	Parent      string
	Description string
	Members     []string

	// Extra holds fields not covered by the schema above.
	Extra Record
}

func (self *Team) UnmarshalJSON(data []byte) error {
	known := struct {
		ID          int64    `json:"id"`
		DocumentID  string   `json:"documentId"`
		TeamID      int64    `json:"github_team_id"`
		Name        string   `json:"team_name"`
		Parent      string   `json:"parent_team_name"`
		Description string   `json:"team_desc"`
		Members     []string `json:"members"`
	}{}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := extraFields(data, "id", "documentId", "github_team_id", "team_name", "parent_team_name", "team_desc", "members")
	if err != nil {
		return err
	}
	*self = Team{
		ID:          known.ID,
		DocumentID:  known.DocumentID,
		TeamID:      known.TeamID,
		Name:        known.Name,
		Parent:      known.Parent,
		Description: known.Description,
		Members:     known.Members,
		Extra:       extra,
	}
	return nil
}

// Fields returns the mutable fields of the team as a mutation payload,
// leaving out the server assigned identifiers.
func (self Team) Fields() Record {
	fields := Record{}
	for key, value := range self.Extra {
		fields[key] = value
	}
	members := self.Members
	if members == nil {
		members = []string{}
	}
	fields["github_team_id"] = self.TeamID
	fields["team_name"] = self.Name
	fields["parent_team_name"] = self.Parent
	fields["team_desc"] = self.Description
	fields["members"] = members
	return fields
}
