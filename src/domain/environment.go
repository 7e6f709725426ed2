package domain

import "encoding/json"

type Environment struct {
	ID         int64
	DocumentID string
	Name       string
	Type       string
	URL        string
	Component  *Component

	// Extra holds fields not covered by the schema above.
	Extra Record
}

func (self *Environment) UnmarshalJSON(data []byte) error {
	known := struct {
		ID         int64      `json:"id"`
		DocumentID string     `json:"documentId"`
		Name       string     `json:"name"`
		Type       string     `json:"type"`
		URL        string     `json:"url"`
		Component  *Component `json:"component"`
	}{}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := extraFields(data, "id", "documentId", "name", "type", "url", "component")
	if err != nil {
		return err
	}
	*self = Environment{
		ID:         known.ID,
		DocumentID: known.DocumentID,
		Name:       known.Name,
		Type:       known.Type,
		URL:        known.URL,
		Component:  known.Component,
		Extra:      extra,
	}
	return nil
}
