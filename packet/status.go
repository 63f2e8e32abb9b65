package packet

import (
	"encoding/json"

	"github.com/google/uuid"
)

// StatusInfo is the JSON document carried by the status response.
type StatusInfo struct {
	Version     StatusVersion `json:"version"`
	Players     StatusPlayers `json:"players"`
	Description Chat          `json:"description"`
	Favicon     string        `json:"favicon,omitempty"`
}

type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type StatusPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []StatusPlayer `json:"sample,omitempty"`
}

type StatusPlayer struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

// Marshal renders the document as carried by the status response.
func (s StatusInfo) Marshal() (string, error) {
	b, err := json.Marshal(s)
	return string(b), err
}
