// Package scoring is the rules engine for a round of golf played under one of
// several competitive formats: stroke play, Stableford, best ball (with or
// without match play), Nassau, skins, and scramble.
//
// The engine converts raw per-hole gross strokes into derived results — net
// totals, points, match status, and monetary payouts. It is deliberately pure:
// every public computation is a function of the round's current scores plus
// its course and format configuration, recomputed fully on each call. There is
// no cached derived state, no I/O, and no background work. Callers (HTTP
// handlers, tests) ask for a derived value and get back plain value types.
//
// The engine favors "absence over failure": when a computation cannot be
// performed because required data is missing — no course, no recorded score,
// wrong format, wrong team count — it returns an explicit absent or neutral
// value (a false ok, a zero, an empty map) rather than an error. The only
// user-visible failure mode is "nothing to show yet".
package scoring

import (
	"sort"

	// uuid identifies players and rounds. IDs are opaque to the engine; it
	// never generates them, only compares them.
	"github.com/google/uuid"
)

// Player is a participant in a round.
// The handicap index is the WHS-style index (e.g. 14.2) — it can be fractional
// and can exceed 18; the allocator handles both. Immutable once a round starts
// except for handicap updates between rounds.
type Player struct {
	ID            uuid.UUID
	Name          string
	HandicapIndex float64
	DeviceOwner   bool // marks the player whose device is running the scorecard
}

// Hole is one hole of a course.
// StrokeIndex is the hole's difficulty rank: 1 = hardest, 18 = easiest. The
// allocator uses it to decide which holes a player receives handicap strokes
// on. Correct allocation depends on the indexes forming a 1..18 ranking across
// the course's holes; the engine does not enforce uniqueness.
type Hole struct {
	Number      int            // 1–18
	Par         int            // typically 3, 4, or 5
	StrokeIndex int            // 1 = hardest, 18 = easiest
	Yardages    map[string]int // optional distance per tee color (e.g. "blue" -> 412)
}

// Course holds the per-hole metadata the engine scores against.
// Slope and rating are informational only — no computation here uses them.
type Course struct {
	Name   string
	Slope  int
	Rating float64
	Holes  []Hole
}

// Hole returns the hole with the given number, or ok=false if the course has
// no such hole.
func (c *Course) Hole(number int) (Hole, bool) {
	if c == nil {
		return Hole{}, false
	}
	for _, h := range c.Holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}

// Segment is an inclusive range of hole numbers. The three ranges that matter
// in practice are the front nine, the back nine, and the full round, but
// Nassau presses produce arbitrary sub-ranges within a nine.
type Segment struct {
	First, Last int
}

// The standard scoring windows.
var (
	FrontNine = Segment{First: 1, Last: 9}
	BackNine  = Segment{First: 10, Last: 18}
	FullRound = Segment{First: 1, Last: 18}
)

// Len returns the number of holes in the segment.
func (s Segment) Len() int {
	if s.Last < s.First {
		return 0
	}
	return s.Last - s.First + 1
}

// Contains reports whether the hole number falls inside the segment.
func (s Segment) Contains(hole int) bool {
	return hole >= s.First && hole <= s.Last
}

// TeamAssignment maps a team name to its ordered member list. The order is
// meaningful: in scramble rounds the first listed member is the team's
// designated representative, under whose ID the team score is recorded.
type TeamAssignment map[string][]uuid.UUID

// TeamOf returns the name of the team the player belongs to.
func (ta TeamAssignment) TeamOf(player uuid.UUID) (string, bool) {
	for name, members := range ta {
		for _, id := range members {
			if id == player {
				return name, true
			}
		}
	}
	return "", false
}

// Names returns the team names in sorted order, so callers iterating teams
// get a stable ordering out of the underlying map.
func (ta TeamAssignment) Names() []string {
	names := make([]string, 0, len(ta))
	for name := range ta {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pair returns the two team names when the assignment holds exactly two
// teams. Match play, Nassau, and their helpers are defined only for
// head-to-head team play; anything else degrades to "not applicable".
func (ta TeamAssignment) pair() (a, b string, ok bool) {
	if len(ta) != 2 {
		return "", "", false
	}
	names := ta.Names()
	return names[0], names[1], true
}
