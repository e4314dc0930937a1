package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// encoding.go — compact string forms for round configuration.
//
// Team assignments, press logs, and tracking sets are structured in memory
// but persist as single text columns. These encoders exist only for that
// boundary: handlers parse on load, encode on save, and nothing else in the
// engine touches the string forms.
//
//	teams:    "team1:id1,id2|team2:id3,id4"
//	presses:  "front:5:Sharks|back:12:Jets"
//	tracking: "id1,id2,id3"

// EncodeTeams renders a team assignment in its compact form. Teams are
// emitted in sorted name order so the encoding is deterministic.
func EncodeTeams(teams TeamAssignment) string {
	parts := make([]string, 0, len(teams))
	for _, name := range teams.Names() {
		ids := make([]string, 0, len(teams[name]))
		for _, id := range teams[name] {
			ids = append(ids, id.String())
		}
		parts = append(parts, name+":"+strings.Join(ids, ","))
	}
	return strings.Join(parts, "|")
}

// ParseTeams parses the compact team form back into a team assignment.
// An empty string is an empty assignment, not an error.
func ParseTeams(s string) (TeamAssignment, error) {
	teams := make(TeamAssignment)
	if s == "" {
		return teams, nil
	}
	for _, part := range strings.Split(s, "|") {
		name, idList, ok := strings.Cut(part, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed team entry %q", part)
		}
		var members []uuid.UUID
		for _, raw := range strings.Split(idList, ",") {
			if raw == "" {
				continue
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("team %s: bad player id %q", name, raw)
			}
			members = append(members, id)
		}
		teams[name] = members
	}
	return teams, nil
}

// EncodePresses renders a press log in its compact form, preserving order —
// presses are listed in the order they were added during the round.
func EncodePresses(presses []Press) string {
	parts := make([]string, 0, len(presses))
	for _, p := range presses {
		parts = append(parts, fmt.Sprintf("%s:%d:%s", p.Match, p.StartingHole, p.Team))
	}
	return strings.Join(parts, "|")
}

// ParsePresses parses the compact press form back into an ordered press log.
func ParsePresses(s string) ([]Press, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "|")
	presses := make([]Press, 0, len(parts))
	for _, part := range parts {
		fields := strings.SplitN(part, ":", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed press entry %q", part)
		}
		hole, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("press %q: bad starting hole", part)
		}
		presses = append(presses, Press{
			Match:        MatchType(fields[0]),
			StartingHole: hole,
			Team:         fields[2],
		})
	}
	return presses, nil
}

// EncodeTracking renders the shot-tracking opt-in set as a comma-joined,
// sorted list of player IDs.
func EncodeTracking(tracking map[uuid.UUID]bool) string {
	ids := make([]string, 0, len(tracking))
	for id, on := range tracking {
		if on {
			ids = append(ids, id.String())
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// ParseTracking parses the comma-joined ID list back into a set.
func ParseTracking(s string) (map[uuid.UUID]bool, error) {
	tracking := make(map[uuid.UUID]bool)
	if s == "" {
		return tracking, nil
	}
	for _, raw := range strings.Split(s, ",") {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("bad tracking player id %q", raw)
		}
		tracking[id] = true
	}
	return tracking, nil
}
