package events

import (
	"encoding/json"
	"time"
)

// Event types published by the engine.
const (
	TypePing          = "ping"
	TypeJobSaved      = "job_saved"
	TypeConfigUpdated = "config_updated"
)

// Event is the envelope pushed to SSE subscribers.
type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent marshals one envelope. A payload that fails to marshal is
// dropped; subscribers always get a well-formed envelope.
func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
