package models

import (
	"encoding/json"
	"strings"
	"time"

	apperrors "nt-data-lab/internal/errors"
)

// Player attribute keys that are stored as dedicated fields.
const (
	FieldPlayerID       = "PlayerID"
	FieldNativeLeagueID = "NativeLeagueID"
	FieldCountryID      = "CountryID"
	FieldOwnerEmail     = "owner_email"
	FieldListIDs        = "list_ids"
	FieldUpdatedAt      = "updated_at"
)

// reservedAttributes never live in the free-form attribute map.
var reservedAttributes = []string{
	"_id", "id", FieldPlayerID, FieldNativeLeagueID, FieldCountryID,
	FieldOwnerEmail, FieldListIDs, FieldUpdatedAt,
}

// Player is a player record keyed by its external id. Attributes holds the
// flattened fields imported from CSV, the sync source or manual entry.
type Player struct {
	ID             ExternalID             `json:"id" bson:"_id"`
	OwnerEmail     string                 `json:"owner_email,omitempty" bson:"owner_email,omitempty"`
	ListIDs        []string               `json:"list_ids" bson:"list_ids,omitempty"`
	NativeLeagueID ExternalID             `json:"NativeLeagueID,omitempty" bson:"NativeLeagueID,omitempty"`
	CountryID      ExternalID             `json:"CountryID,omitempty" bson:"CountryID,omitempty"`
	UpdatedAt      *time.Time             `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	Attributes     map[string]interface{} `json:"-" bson:",inline"`
}

// MarshalJSON flattens the attributes next to the dedicated fields.
func (p Player) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Attributes)+7)
	for k, v := range p.Attributes {
		out[k] = v
	}

	listIDs := p.ListIDs
	if listIDs == nil {
		listIDs = []string{}
	}
	out["id"] = p.ID
	out[FieldPlayerID] = p.ID
	out[FieldListIDs] = listIDs
	if p.OwnerEmail != "" {
		out[FieldOwnerEmail] = p.OwnerEmail
	}
	if !p.NativeLeagueID.IsZero() {
		out[FieldNativeLeagueID] = p.NativeLeagueID
	}
	if !p.CountryID.IsZero() {
		out[FieldCountryID] = p.CountryID
	}
	if p.UpdatedAt != nil {
		out[FieldUpdatedAt] = p.UpdatedAt
	}
	return json.Marshal(out)
}

// InList reports whether the player carries listID.
func (p *Player) InList(listID string) bool {
	for _, id := range p.ListIDs {
		if id == listID {
			return true
		}
	}
	return false
}

// Attribute returns a string view of a free-form attribute.
func (p *Player) Attribute(key string) string {
	v, ok := p.Attributes[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return NormalizeID(v)
}

// NewPlayerFromRecord builds a player from a flat key-value record.
// The id is read from PlayerID, falling back to id.
func NewPlayerFromRecord(record map[string]interface{}) (*Player, error) {
	id := NormalizeID(record[FieldPlayerID])
	if id == "" {
		id = NormalizeID(record["id"])
	}
	if id == "" {
		return nil, apperrors.ErrPlayerIDRequired
	}

	p := &Player{
		ID:             ExternalID(id),
		NativeLeagueID: ExternalID(NormalizeID(record[FieldNativeLeagueID])),
		CountryID:      ExternalID(NormalizeID(record[FieldCountryID])),
		Attributes:     make(map[string]interface{}, len(record)),
	}
	for k, v := range record {
		if isReserved(k) || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			continue
		}
		p.Attributes[k] = v
	}
	return p, nil
}

func isReserved(key string) bool {
	for _, r := range reservedAttributes {
		if key == r {
			return true
		}
	}
	return false
}

// PlayersResponse wraps a collection of players.
type PlayersResponse struct {
	Players []Player `json:"players"`
}

// PlayerResponse is returned by player lookups. Player is nil when Status is not_found.
type PlayerResponse struct {
	Status string  `json:"status" example:"success"`
	Player *Player `json:"player,omitempty"`
}
