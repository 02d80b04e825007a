package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/premiertools/planner/internal/domain/composition"
	"github.com/premiertools/planner/internal/domain/roster"
	"github.com/premiertools/planner/internal/domain/rotation"
)

// PlayerDTO is the wire form of a roster member. The starter/substitute
// kind travels as the isMain flag for compatibility with exported files.
type PlayerDTO struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	AgentPool []string `json:"agentPool"`
	IsMain    bool     `json:"isMain"`
}

// SlotDTO is the wire form of one composition position
type SlotDTO struct {
	PlayerID string `json:"playerId"`
	AgentID  string `json:"agentId"`
}

// MapCompDTO is the wire form of one map's composition
type MapCompDTO struct {
	MapID string    `json:"mapId"`
	Slots []SlotDTO `json:"slots"`
}

// Snapshot is the full serialized state bundle used for durable storage,
// file export/import and share links. Fields are pointers so a partial
// bundle can distinguish "absent" (leave current state alone) from
// "present but empty".
type Snapshot struct {
	TeamName     *string       `json:"teamName,omitempty"`
	MainRoster   *[]PlayerDTO  `json:"mainRoster,omitempty"`
	SubRoster    *[]PlayerDTO  `json:"subRoster,omitempty"`
	MapComps     *[]MapCompDTO `json:"mapComps,omitempty"`
	ActiveMapIDs *[]string     `json:"activeMapIds,omitempty"`
}

// Take captures the plan's full state as a snapshot
func Take(p *Plan) Snapshot {
	team := p.TeamName
	main := playersToDTO(p.Roster.Starters[:])
	subs := playersToDTO(p.Roster.Substitutes)
	comps := compsToDTO(p.Board.Compositions())
	active := p.Rotation.Active()
	return Snapshot{
		TeamName:     &team,
		MainRoster:   &main,
		SubRoster:    &subs,
		MapComps:     &comps,
		ActiveMapIDs: &active,
	}
}

// Apply replaces each piece of plan state for which the snapshot carries a
// value. Absent fields leave the current state untouched, so a partial
// import is legal.
func Apply(p *Plan, s Snapshot) {
	if s.TeamName != nil {
		p.TeamName = *s.TeamName
	}
	if s.MainRoster != nil {
		starters := dtoToPlayers(*s.MainRoster, roster.KindStarter)
		for i := 0; i < roster.StarterCount && i < len(starters); i++ {
			p.Roster.Starters[i] = starters[i]
		}
	}
	if s.SubRoster != nil {
		subs := dtoToPlayers(*s.SubRoster, roster.KindSubstitute)
		if len(subs) > roster.MaxSubstitutes {
			subs = subs[:roster.MaxSubstitutes]
		}
		p.Roster.Substitutes = subs
	}
	if s.MapComps != nil {
		p.Board.Replace(dtoToComps(*s.MapComps))
	}
	if s.ActiveMapIDs != nil {
		p.Rotation = rotation.New(*s.ActiveMapIDs)
	}
}

// Parse decodes an exported bundle. Malformed input yields an error and no
// snapshot, so the caller's state stays untouched.
func Parse(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return s, nil
}

// Marshal renders a snapshot as the export file format
func Marshal(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// ExportFilename derives the download name from the team name, with
// whitespace replaced so it is filesystem-safe.
func ExportFilename(teamName string) string {
	name := strings.TrimSpace(teamName)
	if name == "" {
		name = "team"
	}
	name = strings.Join(strings.Fields(name), "_")
	return name + "_roster.json"
}

func playersToDTO(players []roster.Player) []PlayerDTO {
	out := make([]PlayerDTO, len(players))
	for i, p := range players {
		pool := p.AgentPool
		if pool == nil {
			pool = []string{}
		}
		out[i] = PlayerDTO{
			ID:        p.ID,
			Name:      p.Name,
			AgentPool: pool,
			IsMain:    p.IsStarter(),
		}
	}
	return out
}

func dtoToPlayers(dtos []PlayerDTO, kind roster.Kind) []roster.Player {
	out := make([]roster.Player, len(dtos))
	for i, d := range dtos {
		out[i] = roster.Player{
			ID:        d.ID,
			Name:      d.Name,
			AgentPool: d.AgentPool,
			Kind:      kind,
		}
	}
	return out
}

func compsToDTO(comps []composition.Composition) []MapCompDTO {
	out := make([]MapCompDTO, len(comps))
	for i, c := range comps {
		slots := make([]SlotDTO, composition.SlotCount)
		for j, s := range c.Slots {
			slots[j] = SlotDTO{PlayerID: s.PlayerID, AgentID: s.AgentID}
		}
		out[i] = MapCompDTO{MapID: c.MapID, Slots: slots}
	}
	return out
}

func dtoToComps(dtos []MapCompDTO) []composition.Composition {
	out := make([]composition.Composition, len(dtos))
	for i, d := range dtos {
		c := composition.Composition{MapID: d.MapID}
		for j := 0; j < composition.SlotCount && j < len(d.Slots); j++ {
			c.Slots[j] = composition.Slot{
				PlayerID: d.Slots[j].PlayerID,
				AgentID:  d.Slots[j].AgentID,
			}
		}
		out[i] = c
	}
	return out
}
