package scoring

// nassau.go — the Nassau (2-2-2) betting game.
//
// A Nassau is three match-play bets in one round: the front nine, the back
// nine, and the overall 18. Each is worth one point to its winner, or half a
// point to each side if it finishes all square. A side that falls behind in
// the front or back match may "press" — open a fresh bet starting at a chosen
// hole and running to the end of that same nine — which is scored exactly
// like a base match and carries its own point. Pressing is only offered to a
// side that is strictly down; an all-square match has nothing to press.

// MatchType identifies which of the Nassau windows a match or press
// belongs to.
type MatchType string

const (
	MatchFront   MatchType = "front"
	MatchBack    MatchType = "back"
	MatchOverall MatchType = "overall"
)

// Segment returns the base hole window for the match type.
func (m MatchType) Segment() Segment {
	switch m {
	case MatchFront:
		return FrontNine
	case MatchBack:
		return BackNine
	default:
		return FullRound
	}
}

// Press is one pressed side bet: a fresh match starting at StartingHole and
// running to the end of the pressed nine, initiated by Team.
type Press struct {
	Match        MatchType
	StartingHole int
	Team         string
}

// Window is the hole range the press is scored over. A front-nine press runs
// [startingHole, 9] with the start clamped to at least 1; a back-nine press
// runs to 18 with the start clamped to at least 10.
func (p Press) Window() Segment {
	switch p.Match {
	case MatchBack:
		start := p.StartingHole
		if start < 10 {
			start = 10
		}
		return Segment{First: start, Last: 18}
	default:
		start := p.StartingHole
		if start < 1 {
			start = 1
		}
		return Segment{First: start, Last: 9}
	}
}

// NassauMatch is one scored Nassau bet — a base match or a press — as
// reported to the caller.
type NassauMatch struct {
	Match  MatchType
	Window Segment
	Press  bool
	Status MatchStatus
	// Points per team for this bet: 1 to the winner once the bet is decided,
	// 0.5 each when the window finishes all square, nothing while it's open.
	Points map[string]float64
}

// matchPoints scores one bet window from its status. An undecided match with
// holes still to play pays nothing yet. An empty window (a press whose start
// lies past its nine) covers no holes, so it pays nothing rather than
// reading as a finished all-square bet.
func matchPoints(teams TeamAssignment, window Segment, status MatchStatus) map[string]float64 {
	points := make(map[string]float64, 2)
	for _, name := range teams.Names() {
		points[name] = 0
	}
	if window.Len() < 1 {
		return points
	}
	switch {
	case status.Decided:
		points[status.Leader] = 1
	case status.HolesRemaining == 0:
		// Finished all square: the point is split.
		for name := range points {
			points[name] = 0.5
		}
	}
	return points
}

// NassauMatches scores the three base matches and every press, in order:
// front, back, overall, then presses as they were added. Nil for rounds not
// playing a Nassau, or when the team assignment isn't exactly two teams.
func (r *Round) NassauMatches() []NassauMatch {
	format, ok := r.Format.(*Nassau)
	if !ok {
		return nil
	}
	if _, _, ok := format.Teams.pair(); !ok {
		return nil
	}

	matches := make([]NassauMatch, 0, 3+len(format.Presses))
	for _, m := range []MatchType{MatchFront, MatchBack, MatchOverall} {
		status, _ := r.matchStatus(format.Teams, m.Segment())
		matches = append(matches, NassauMatch{
			Match:  m,
			Window: m.Segment(),
			Status: status,
			Points: matchPoints(format.Teams, m.Segment(), status),
		})
	}
	for _, press := range format.Presses {
		status, _ := r.matchStatus(format.Teams, press.Window())
		matches = append(matches, NassauMatch{
			Match:  press.Match,
			Window: press.Window(),
			Press:  true,
			Status: status,
			Points: matchPoints(format.Teams, press.Window(), status),
		})
	}
	return matches
}

// NassauPoints totals each team's points across the three base matches and
// all presses. Empty for non-Nassau rounds.
func (r *Round) NassauPoints() map[string]float64 {
	totals := make(map[string]float64)
	for _, match := range r.NassauMatches() {
		for team, pts := range match.Points {
			totals[team] += pts
		}
	}
	return totals
}

// NextUnplayedHole finds the first hole in the window where either team
// still lacks a best-ball net — the hole the match will be contested on
// next. ok is false when every hole in the window has been played, or when
// the round has no two-team match.
func (r *Round) NextUnplayedHole(seg Segment) (int, bool) {
	teams, ok := r.Teams()
	if !ok {
		return 0, false
	}
	a, b, ok := teams.pair()
	if !ok {
		return 0, false
	}
	for hole := seg.First; hole <= seg.Last; hole++ {
		_, okA := r.bestBallNet(teams[a], hole)
		_, okB := r.bestBallNet(teams[b], hole)
		if !okA || !okB {
			return hole, true
		}
	}
	return 0, false
}

// TeamDown reports which team is currently behind in the window and by how
// many holes. An all-square match (or one the round isn't playing) returns
// an empty team and zero.
func (r *Round) TeamDown(seg Segment) (string, int) {
	status, ok := r.MatchStatus(seg)
	if !ok || status.Leader == "" {
		return "", 0
	}
	teams, _ := r.Teams()
	a, b, _ := teams.pair()
	if status.Leader == a {
		return b, status.HolesUp
	}
	return a, status.HolesUp
}

// CanPress reports whether the team may press the given nine right now:
// Nassau rounds only, front or back only, and only while the team is
// strictly down in that base match.
func (r *Round) CanPress(team string, match MatchType) bool {
	if _, ok := r.Format.(*Nassau); !ok {
		return false
	}
	if match != MatchFront && match != MatchBack {
		return false
	}
	down, by := r.TeamDown(match.Segment())
	return down == team && by > 0
}

// AddPress appends a press to the round's Nassau configuration. The press is
// refused (returning false) when the round isn't a Nassau, the pressing team
// isn't currently down in that match, or the starting hole lies past the end
// of the pressed nine (which would leave no holes to contest).
func (r *Round) AddPress(press Press) bool {
	format, ok := r.Format.(*Nassau)
	if !ok {
		return false
	}
	if !r.CanPress(press.Team, press.Match) {
		return false
	}
	if press.Window().Len() < 1 {
		return false
	}
	format.Presses = append(format.Presses, press)
	return true
}
