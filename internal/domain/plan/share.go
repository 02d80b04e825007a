package plan

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// The share link carries the same bundle as the export file with key names
// shortened to keep the encoded fragment small. The JSON is base64url
// encoded (no padding) so it is safe inside a URL fragment, including for
// team names with non-ASCII characters.

type sharePlayer struct {
	ID   string   `json:"i"`
	Name string   `json:"n"`
	Pool []string `json:"p"`
	Main bool     `json:"m"`
}

type shareSlot struct {
	PlayerID string `json:"p"`
	AgentID  string `json:"a"`
}

type shareComp struct {
	MapID string      `json:"m"`
	Slots []shareSlot `json:"s"`
}

type shareBundle struct {
	TeamName  *string        `json:"t,omitempty"`
	Main      *[]sharePlayer `json:"m,omitempty"`
	Subs      *[]sharePlayer `json:"s,omitempty"`
	Comps     *[]shareComp   `json:"c,omitempty"`
	ActiveIDs *[]string      `json:"a,omitempty"`
}

// EncodeShare renders a snapshot as a URL-fragment-safe string
func EncodeShare(s Snapshot) (string, error) {
	data, err := json.Marshal(toShareBundle(s))
	if err != nil {
		return "", fmt.Errorf("failed to encode share bundle: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShare is the exact inverse of EncodeShare. A leading '#' is
// tolerated so raw URL fragments can be passed through. Corrupt or
// truncated input yields an error; callers fall back to stored or default
// state rather than failing startup.
func DecodeShare(fragment string) (Snapshot, error) {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if fragment == "" {
		return Snapshot{}, fmt.Errorf("empty share fragment")
	}

	data, err := base64.RawURLEncoding.DecodeString(fragment)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode share fragment: %w", err)
	}

	var b shareBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse share bundle: %w", err)
	}
	return fromShareBundle(b), nil
}

func toShareBundle(s Snapshot) shareBundle {
	b := shareBundle{TeamName: s.TeamName, ActiveIDs: s.ActiveMapIDs}
	if s.MainRoster != nil {
		main := sharePlayers(*s.MainRoster)
		b.Main = &main
	}
	if s.SubRoster != nil {
		subs := sharePlayers(*s.SubRoster)
		b.Subs = &subs
	}
	if s.MapComps != nil {
		comps := make([]shareComp, len(*s.MapComps))
		for i, c := range *s.MapComps {
			slots := make([]shareSlot, len(c.Slots))
			for j, slot := range c.Slots {
				slots[j] = shareSlot{PlayerID: slot.PlayerID, AgentID: slot.AgentID}
			}
			comps[i] = shareComp{MapID: c.MapID, Slots: slots}
		}
		b.Comps = &comps
	}
	return b
}

func fromShareBundle(b shareBundle) Snapshot {
	s := Snapshot{TeamName: b.TeamName, ActiveMapIDs: b.ActiveIDs}
	if b.Main != nil {
		main := unsharePlayers(*b.Main)
		s.MainRoster = &main
	}
	if b.Subs != nil {
		subs := unsharePlayers(*b.Subs)
		s.SubRoster = &subs
	}
	if b.Comps != nil {
		comps := make([]MapCompDTO, len(*b.Comps))
		for i, c := range *b.Comps {
			slots := make([]SlotDTO, len(c.Slots))
			for j, slot := range c.Slots {
				slots[j] = SlotDTO{PlayerID: slot.PlayerID, AgentID: slot.AgentID}
			}
			comps[i] = MapCompDTO{MapID: c.MapID, Slots: slots}
		}
		s.MapComps = &comps
	}
	return s
}

func sharePlayers(players []PlayerDTO) []sharePlayer {
	out := make([]sharePlayer, len(players))
	for i, p := range players {
		out[i] = sharePlayer{ID: p.ID, Name: p.Name, Pool: p.AgentPool, Main: p.IsMain}
	}
	return out
}

func unsharePlayers(players []sharePlayer) []PlayerDTO {
	out := make([]PlayerDTO, len(players))
	for i, p := range players {
		pool := p.Pool
		if pool == nil {
			pool = []string{}
		}
		out[i] = PlayerDTO{ID: p.ID, Name: p.Name, AgentPool: pool, IsMain: p.Main}
	}
	return out
}
