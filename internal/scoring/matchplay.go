package scoring

import (
	"fmt"

	"github.com/google/uuid"
)

// matchplay.go — team best ball and match-play status.
//
// In best ball, a team's score on a hole is the best individual score among
// its members. Scored as match play, each hole is then won, lost, or halved
// on team best-ball net, and the match is tracked in "holes up" rather than
// strokes: a side that is 3 up with 2 to play has won even though strokes
// are still to be taken. The MatchStatus computed here is the shared
// primitive for the single 18-hole best-ball match and for every one of
// Nassau's sub-matches.

// bestBallGross is the lowest gross among the team's members on a hole,
// absent when no member has a recorded score.
func (r *Round) bestBallGross(members []uuid.UUID, hole int) (int, bool) {
	best, found := 0, false
	for _, id := range members {
		gross, ok := r.Scores.Gross(hole, id)
		if !ok {
			continue
		}
		if !found || gross < best {
			best, found = gross, true
		}
	}
	return best, found
}

// bestBallNet is the lowest net among the team's members on a hole, absent
// when no member has a derivable net score there.
func (r *Round) bestBallNet(members []uuid.UUID, hole int) (int, bool) {
	best, found := 0, false
	for _, id := range members {
		net, ok := r.NetScore(hole, id)
		if !ok {
			continue
		}
		if !found || net < best {
			best, found = net, true
		}
	}
	return best, found
}

// TeamBestBallGross returns the named team's best-ball gross on a hole.
// Absent for formats without teams, unknown team names, or holes where no
// member has a score.
func (r *Round) TeamBestBallGross(team string, hole int) (int, bool) {
	teams, ok := r.Teams()
	if !ok {
		return 0, false
	}
	members, ok := teams[team]
	if !ok {
		return 0, false
	}
	return r.bestBallGross(members, hole)
}

// TeamBestBallNet returns the named team's best-ball net on a hole.
func (r *Round) TeamBestBallNet(team string, hole int) (int, bool) {
	teams, ok := r.Teams()
	if !ok {
		return 0, false
	}
	members, ok := teams[team]
	if !ok {
		return 0, false
	}
	return r.bestBallNet(members, hole)
}

// HoleWinner names the team that won the hole on best-ball net. A hole with
// equal best-ball nets is halved: won is false and team is empty. A hole is
// only decidable when both teams have a best-ball net.
func (r *Round) HoleWinner(hole int) (team string, won bool) {
	teams, ok := r.Teams()
	if !ok {
		return "", false
	}
	a, b, ok := teams.pair()
	if !ok {
		return "", false
	}
	netA, okA := r.bestBallNet(teams[a], hole)
	netB, okB := r.bestBallNet(teams[b], hole)
	if !okA || !okB {
		return "", false
	}
	switch {
	case netA < netB:
		return a, true
	case netB < netA:
		return b, true
	default:
		return "", false
	}
}

// MatchStatus describes the state of one match window.
type MatchStatus struct {
	Leader         string // team currently ahead; empty when all square
	HolesUp        int    // leader's margin in holes (0 when all square)
	HolesPlayed    int    // holes in the window where both teams have a best-ball net
	HolesRemaining int    // holes in the window not yet played
	Decided        bool   // the margin exceeds the holes remaining; the match is over
}

// Text renders the status the way golfers say it: "Sharks wins 3 up",
// "Jets 2 up with 4 to play", "all square with 6 to play", or — when the
// window is exhausted level — "match halved".
func (s MatchStatus) Text() string {
	switch {
	case s.Decided:
		return fmt.Sprintf("%s wins %d up", s.Leader, s.HolesUp)
	case s.Leader != "":
		return fmt.Sprintf("%s %d up with %d to play", s.Leader, s.HolesUp, s.HolesRemaining)
	case s.HolesRemaining > 0:
		return fmt.Sprintf("all square with %d to play", s.HolesRemaining)
	default:
		return "match halved"
	}
}

// matchStatus walks the window and tallies holes won by each side. A hole
// counts as played only when both teams have a best-ball net there; holes
// where either side has no score yet count toward holes remaining.
func (r *Round) matchStatus(teams TeamAssignment, seg Segment) (MatchStatus, bool) {
	a, b, ok := teams.pair()
	if !ok {
		return MatchStatus{}, false
	}

	winsA, winsB, played := 0, 0, 0
	for hole := seg.First; hole <= seg.Last; hole++ {
		netA, okA := r.bestBallNet(teams[a], hole)
		netB, okB := r.bestBallNet(teams[b], hole)
		if !okA || !okB {
			continue
		}
		played++
		if netA < netB {
			winsA++
		} else if netB < netA {
			winsB++
		}
	}

	status := MatchStatus{
		HolesPlayed:    played,
		HolesRemaining: seg.Len() - played,
	}
	switch {
	case winsA > winsB:
		status.Leader, status.HolesUp = a, winsA-winsB
	case winsB > winsA:
		status.Leader, status.HolesUp = b, winsB-winsA
	}
	status.Decided = status.HolesUp > status.HolesRemaining
	return status, true
}

// MatchStatus reports the state of the round's match over a hole window.
// Only best-ball match play and Nassau rounds have matches; other formats,
// and team assignments that aren't exactly two teams, return ok=false.
func (r *Round) MatchStatus(seg Segment) (MatchStatus, bool) {
	switch f := r.Format.(type) {
	case *BestBallMatchPlay:
		return r.matchStatus(f.Teams, seg)
	case *Nassau:
		return r.matchStatus(f.Teams, seg)
	default:
		return MatchStatus{}, false
	}
}

// TeamTotals is a team's gross and net stroke totals over some window.
type TeamTotals struct {
	Gross, Net int
}

// BestBallTotals returns each team's best-ball gross and net totals over the
// segment, keyed by team name. Holes where the team has no score contribute
// nothing. Empty for formats without teams.
func (r *Round) BestBallTotals(seg Segment) map[string]TeamTotals {
	totals := make(map[string]TeamTotals)
	teams, ok := r.Teams()
	if !ok {
		return totals
	}
	for name, members := range teams {
		var t TeamTotals
		for hole := seg.First; hole <= seg.Last; hole++ {
			if gross, ok := r.bestBallGross(members, hole); ok {
				t.Gross += gross
			}
			if net, ok := r.bestBallNet(members, hole); ok {
				t.Net += net
			}
		}
		totals[name] = t
	}
	return totals
}
