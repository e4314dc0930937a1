package scoring

import (
	"math"

	"github.com/google/uuid"
)

// strokeplay.go — gross and net stroke totals.
//
// These totals back every format's scorecard view, not just stroke-play
// rounds: a skins round still shows each player's running gross and net.
// Net is accumulated hole by hole — each hole's net is derived and summed —
// rather than subtracting the handicap from the gross total once, so a
// partially played round still shows a meaningful net.

// GrossTotal sums a player's recorded gross strokes over the segment.
// Holes without a recorded score contribute nothing.
func (r *Round) GrossTotal(player uuid.UUID, seg Segment) int {
	total := 0
	for hole := seg.First; hole <= seg.Last; hole++ {
		if gross, ok := r.Scores.Gross(hole, player); ok {
			total += gross
		}
	}
	return total
}

// NetTotal sums a player's per-hole net scores over the segment.
//
// When the round has no course there are no stroke indexes to allocate
// against, so the total degrades to the segment's gross total minus the
// player's whole-number handicap, subtracted once per requested segment.
// Each segment is its own estimate under this rule: the front and back nets
// do not add up to the 18-hole net, since each had the full handicap taken
// off.
func (r *Round) NetTotal(player uuid.UUID, seg Segment) int {
	if r.Course == nil {
		p, ok := r.Player(player)
		if !ok {
			return 0
		}
		return r.GrossTotal(player, seg) - int(math.Round(p.HandicapIndex))
	}

	total := 0
	for hole := seg.First; hole <= seg.Last; hole++ {
		if net, ok := r.NetScore(hole, player); ok {
			total += net
		}
	}
	return total
}

// PlayerTotals is one player's line on the scorecard.
type PlayerTotals struct {
	Player                            uuid.UUID
	FrontGross, BackGross, TotalGross int
	FrontNet, BackNet, TotalNet       int
}

// Totals computes the scorecard lines for every player in the round, in the
// round's player order.
func (r *Round) Totals() []PlayerTotals {
	totals := make([]PlayerTotals, 0, len(r.Players))
	for _, p := range r.Players {
		totals = append(totals, PlayerTotals{
			Player:     p.ID,
			FrontGross: r.GrossTotal(p.ID, FrontNine),
			BackGross:  r.GrossTotal(p.ID, BackNine),
			TotalGross: r.GrossTotal(p.ID, FullRound),
			FrontNet:   r.NetTotal(p.ID, FrontNine),
			BackNet:    r.NetTotal(p.ID, BackNine),
			TotalNet:   r.NetTotal(p.ID, FullRound),
		})
	}
	return totals
}
