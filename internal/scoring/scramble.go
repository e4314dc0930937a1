package scoring

// scramble.go — scramble (captain's choice) scoring.
//
// In a scramble the whole team plays from the best shot, so there is one
// score per team per hole. By convention that score is recorded in the
// ledger under the team's designated representative — the first player
// listed in the team assignment. The team plays off the average of its
// members' handicap indexes, run through the same stroke allocation an
// individual would get, and totals follow the stroke-play pattern keyed by
// team instead of player.

// ScrambleRepresentative returns the player the team's scores are recorded
// under: the first listed member. ok is false for non-scramble rounds,
// unknown teams, and empty teams.
func (r *Round) ScrambleRepresentative(team string) (Player, bool) {
	format, ok := r.Format.(*Scramble)
	if !ok {
		return Player{}, false
	}
	members := format.Teams[team]
	if len(members) == 0 {
		return Player{}, false
	}
	return r.Player(members[0])
}

// scrambleHandicap is the mean of the team members' handicap indexes.
func (r *Round) scrambleHandicap(team string) (float64, bool) {
	format, ok := r.Format.(*Scramble)
	if !ok {
		return 0, false
	}
	members := format.Teams[team]
	if len(members) == 0 {
		return 0, false
	}
	sum := 0.0
	counted := 0
	for _, id := range members {
		p, ok := r.Player(id)
		if !ok {
			continue
		}
		sum += p.HandicapIndex
		counted++
	}
	if counted == 0 {
		return 0, false
	}
	return sum / float64(counted), true
}

// ScrambleGross sums the team's recorded gross strokes over the segment.
func (r *Round) ScrambleGross(team string, seg Segment) int {
	rep, ok := r.ScrambleRepresentative(team)
	if !ok {
		return 0
	}
	return r.GrossTotal(rep.ID, seg)
}

// ScrambleNet sums the team's per-hole net scores over the segment, using
// the team's average handicap for stroke allocation. Holes without a
// recorded score or course metadata contribute nothing.
func (r *Round) ScrambleNet(team string, seg Segment) int {
	rep, ok := r.ScrambleRepresentative(team)
	if !ok {
		return 0
	}
	handicap, ok := r.scrambleHandicap(team)
	if !ok {
		return 0
	}

	total := 0
	for hole := seg.First; hole <= seg.Last; hole++ {
		gross, ok := r.Scores.Gross(hole, rep.ID)
		if !ok {
			continue
		}
		h, ok := r.Course.Hole(hole)
		if !ok {
			continue
		}
		net := gross - StrokesForHole(handicap, h.StrokeIndex, false)
		if net < 0 {
			net = 0
		}
		total += net
	}
	return total
}

// ScrambleStandings returns every team's gross and net totals over the full
// round, keyed by team name. Empty for non-scramble rounds.
func (r *Round) ScrambleStandings() map[string]TeamTotals {
	standings := make(map[string]TeamTotals)
	format, ok := r.Format.(*Scramble)
	if !ok {
		return standings
	}
	for name := range format.Teams {
		standings[name] = TeamTotals{
			Gross: r.ScrambleGross(name, FullRound),
			Net:   r.ScrambleNet(name, FullRound),
		}
	}
	return standings
}
