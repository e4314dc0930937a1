package scoring

import "github.com/google/uuid"

// Round is one game of golf: a course, an ordered list of players, a format
// with its configuration, and the ledger of gross scores entered so far.
//
// Relationships are held as plain values and IDs — a round owns its ledger
// and references players by ID; nothing points back at the round.
type Round struct {
	ID       uuid.UUID
	Course   *Course // nil when the round was created without course data
	Players  []Player
	Format   Format
	TeeColor string             // optional per-round tee override, e.g. "white"
	Tracking map[uuid.UUID]bool // players opted into shot tracking; irrelevant to scoring

	Scores *Ledger
}

// NewRound creates a round with an empty ledger.
func NewRound(course *Course, players []Player, format Format) *Round {
	return &Round{
		ID:       uuid.New(),
		Course:   course,
		Players:  players,
		Format:   format,
		Tracking: make(map[uuid.UUID]bool),
		Scores:   NewLedger(),
	}
}

// Player returns the round participant with the given ID.
func (r *Round) Player(id uuid.UUID) (Player, bool) {
	for _, p := range r.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// RecordGross upserts a player's gross strokes for a hole. Writes for holes
// outside 1..18 or for players not in the round are dropped, keeping the
// ledger inside the round's invariants no matter what the caller sends.
func (r *Round) RecordGross(hole int, player uuid.UUID, strokes int) {
	if hole < 1 || hole > 18 {
		return
	}
	if _, ok := r.Player(player); !ok {
		return
	}
	r.Scores.Record(hole, player, strokes)
}

// Gross looks up a player's recorded gross strokes on a hole.
func (r *Round) Gross(hole int, player uuid.UUID) (int, bool) {
	return r.Scores.Gross(hole, player)
}

// NetScore derives a player's net score on a hole: gross minus the handicap
// strokes allocated there, floored at zero. Absent when the player has no
// recorded gross, or when the course (and with it the hole's stroke index)
// is missing.
func (r *Round) NetScore(hole int, player uuid.UUID) (int, bool) {
	gross, ok := r.Scores.Gross(hole, player)
	if !ok {
		return 0, false
	}
	h, ok := r.Course.Hole(hole)
	if !ok {
		return 0, false
	}
	p, ok := r.Player(player)
	if !ok {
		return 0, false
	}
	net := gross - StrokesForHole(p.HandicapIndex, h.StrokeIndex, false)
	if net < 0 {
		net = 0
	}
	return net, true
}

// Complete reports whether every player has a gross score on all 18 holes.
func (r *Round) Complete() bool {
	if len(r.Players) == 0 {
		return false
	}
	for hole := 1; hole <= 18; hole++ {
		for _, p := range r.Players {
			if _, ok := r.Scores.Gross(hole, p.ID); !ok {
				return false
			}
		}
	}
	return true
}

// Teams returns the format's team assignment, for team formats.
func (r *Round) Teams() (TeamAssignment, bool) {
	return formatTeams(r.Format)
}
