package scoring

import "github.com/google/uuid"

// skins.go — the skins game.
//
// Every hole is worth one skin. The skin goes to the player with the
// strictly lowest net score among everyone who has a score on the hole; if
// the low net is shared, nobody wins it. What happens to an unwon skin
// depends on the carryover setting: with carryover on, it rides onto the
// next hole that produces a sole winner (three tied holes followed by a win
// pays four skins); with carryover off it is simply lost.
//
// Money is settled one of two ways, chosen by configuration. Pot payout:
// every player antes the same contribution, each skin is worth an equal
// share of the pot, and a player's net take is their skins' value minus
// their ante. Legacy payout: each skin has a fixed dollar value and players
// settle pairwise, the lower earner paying the higher earner the difference.

// HoleSkinWinner returns the player holding the strictly lowest net on the
// hole. ok is false when nobody has a score there or when the low net is
// shared — a tied hole has no winner.
func (r *Round) HoleSkinWinner(hole int) (uuid.UUID, bool) {
	var winner uuid.UUID
	best, found, tied := 0, false, false
	for _, p := range r.Players {
		net, ok := r.NetScore(hole, p.ID)
		if !ok {
			continue
		}
		switch {
		case !found || net < best:
			best, found, tied = net, true, false
			winner = p.ID
		case net == best:
			tied = true
		}
	}
	if !found || tied {
		return uuid.Nil, false
	}
	return winner, true
}

// SkinsByPlayer walks holes 1 through 18 in order and tallies skins won,
// keyed by player ID. A running accumulator tracks consecutive tied holes:
// a won hole pays the accumulator plus one and resets it; a tied hole
// increments it when carryover is enabled and discards it otherwise.
// Every player in the round appears in the result, at zero if skinless.
// Empty for rounds not playing skins.
func (r *Round) SkinsByPlayer() map[uuid.UUID]int {
	skins := make(map[uuid.UUID]int)
	format, ok := r.Format.(*Skins)
	if !ok {
		return skins
	}
	for _, p := range r.Players {
		skins[p.ID] = 0
	}

	carried := 0
	for hole := 1; hole <= 18; hole++ {
		// A hole nobody has scored yet neither awards nor carries anything.
		if !r.holeScored(hole) {
			continue
		}
		if winner, won := r.HoleSkinWinner(hole); won {
			skins[winner] += carried + 1
			carried = 0
		} else if format.Carryover {
			carried++
		} else {
			carried = 0
		}
	}
	return skins
}

// holeScored reports whether any player has a recorded score on the hole.
func (r *Round) holeScored(hole int) bool {
	for _, p := range r.Players {
		if _, ok := r.Scores.Gross(hole, p.ID); ok {
			return true
		}
	}
	return false
}

// SkinsPayouts settles the money, keyed by player ID. Positive values are
// winnings, negative values are owed. The payout mode follows the round's
// configuration: pot-based when a pot contribution is set, otherwise the
// legacy fixed-value pairwise settlement. Empty for non-skins rounds.
func (r *Round) SkinsPayouts() map[uuid.UUID]float64 {
	payouts := make(map[uuid.UUID]float64)
	format, ok := r.Format.(*Skins)
	if !ok {
		return payouts
	}
	skins := r.SkinsByPlayer()

	if format.PotPerPlayer > 0 {
		// Pot mode. Until a skin has been won everyone is simply out their
		// ante; once skins exist each is worth an equal slice of the pot.
		pot := float64(len(r.Players)) * format.PotPerPlayer
		total := 0
		for _, n := range skins {
			total += n
		}
		perSkin := 0.0
		if total > 0 {
			perSkin = pot / float64(total)
		}
		for _, p := range r.Players {
			payouts[p.ID] = float64(skins[p.ID])*perSkin - format.PotPerPlayer
		}
		return payouts
	}

	// Legacy mode: every pair settles the difference between their skin
	// values, the lower paying the higher.
	for _, p := range r.Players {
		payouts[p.ID] = 0
	}
	for i := 0; i < len(r.Players); i++ {
		for j := i + 1; j < len(r.Players); j++ {
			a, b := r.Players[i].ID, r.Players[j].ID
			diff := float64(skins[a]-skins[b]) * format.SkinValue
			payouts[a] += diff
			payouts[b] -= diff
		}
	}
	return payouts
}
