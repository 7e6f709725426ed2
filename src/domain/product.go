package domain

import "encoding/json"

type Product struct {
	ID               int64
	DocumentID       string
	Name             string
	PID              string
	SlackChannelID   string
	SlackChannelName string

	// Extra holds fields not covered by the schema above.
	Extra Record
}

func (self *Product) UnmarshalJSON(data []byte) error {
	known := struct {
		ID               int64  `json:"id"`
		DocumentID       string `json:"documentId"`
		Name             string `json:"name"`
		PID              string `json:"p_id"`
		SlackChannelID   string `json:"slack_channel_id"`
		SlackChannelName string `json:"slack_channel_name"`
	}{}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	extra, err := extraFields(data, "id", "documentId", "name", "p_id", "slack_channel_id", "slack_channel_name")
	if err != nil {
		return err
	}
	*self = Product{
		ID:               known.ID,
		DocumentID:       known.DocumentID,
		Name:             known.Name,
		PID:              known.PID,
		SlackChannelID:   known.SlackChannelID,
		SlackChannelName: known.SlackChannelName,
		Extra:            extra,
	}
	return nil
}
