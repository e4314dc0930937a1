package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skinsRound builds a four-player skins game, scratch handicaps.
func skinsRound(t *testing.T, format *Skins) (*Round, [4]Player) {
	t.Helper()
	players := [4]Player{
		newTestPlayer("alice", 0),
		newTestPlayer("bob", 0),
		newTestPlayer("carol", 0),
		newTestPlayer("dan", 0),
	}
	r := NewRound(testCourse(), players[:], format)
	return r, players
}

// tieHole gives every player the same score on a hole.
func tieHole(r *Round, players [4]Player, hole, gross int) {
	for _, p := range players {
		r.RecordGross(hole, p.ID, gross)
	}
}

// winHole gives the winner a better score than everyone else on a hole.
func winHole(r *Round, players [4]Player, hole int, winner Player) {
	for _, p := range players {
		gross := 5
		if p.ID == winner.ID {
			gross = 4
		}
		r.RecordGross(hole, p.ID, gross)
	}
}

func TestHoleSkinWinner(t *testing.T) {
	r, players := skinsRound(t, &Skins{})
	alice, bob := players[0], players[1]

	if _, won := r.HoleSkinWinner(1); won {
		t.Fatal("winner found on an unscored hole")
	}

	// Sole low net takes the skin even before everyone has scored.
	r.RecordGross(1, alice.ID, 4)
	winner, won := r.HoleSkinWinner(1)
	require.True(t, won)
	assert.Equal(t, alice.ID, winner)

	// A shared low net kills the hole.
	r.RecordGross(1, bob.ID, 4)
	if _, won := r.HoleSkinWinner(1); won {
		t.Error("winner found on a tied hole")
	}
}

// Three tied holes followed by a sole winner: with carryover the winner
// collects all four skins and the accumulator resets.
func TestSkinsCarryover(t *testing.T) {
	r, players := skinsRound(t, &Skins{Carryover: true})
	alice, bob := players[0], players[1]

	tieHole(r, players, 1, 4)
	tieHole(r, players, 2, 4)
	tieHole(r, players, 3, 4)
	winHole(r, players, 4, alice)
	winHole(r, players, 5, bob) // accumulator reset: worth exactly one

	skins := r.SkinsByPlayer()
	assert.Equal(t, 4, skins[alice.ID])
	assert.Equal(t, 1, skins[bob.ID])
	assert.Equal(t, 0, skins[players[2].ID])
}

// With carryover disabled the tied holes' skins are simply lost.
func TestSkinsCarryoverDisabled(t *testing.T) {
	r, players := skinsRound(t, &Skins{Carryover: false})
	alice := players[0]

	tieHole(r, players, 1, 4)
	tieHole(r, players, 2, 4)
	tieHole(r, players, 3, 4)
	winHole(r, players, 4, alice)

	skins := r.SkinsByPlayer()
	assert.Equal(t, 1, skins[alice.ID])
}

// Unscored holes neither award nor carry anything.
func TestSkinsSkipsUnscoredHoles(t *testing.T) {
	r, players := skinsRound(t, &Skins{Carryover: true})
	alice := players[0]

	tieHole(r, players, 1, 4)
	// Holes 2-7 unplayed.
	winHole(r, players, 8, alice)

	skins := r.SkinsByPlayer()
	assert.Equal(t, 2, skins[alice.ID], "the hole-1 tie carries across the gap")
}

// Four players, $10 pot each, one player wins every skin recorded:
// they collect the other three antes and everyone else is out theirs.
func TestSkinsPotPayout(t *testing.T) {
	r, players := skinsRound(t, &Skins{PotPerPlayer: 10, Carryover: true})
	alice := players[0]

	winHole(r, players, 1, alice)

	payouts := r.SkinsPayouts()
	assert.Equal(t, 30.0, payouts[alice.ID])
	for _, p := range players[1:] {
		assert.Equal(t, -10.0, payouts[p.ID])
	}
}

// Before any skin is won, everyone is simply out their contribution.
func TestSkinsPotPayoutNoSkins(t *testing.T) {
	r, players := skinsRound(t, &Skins{PotPerPlayer: 10})

	payouts := r.SkinsPayouts()
	for _, p := range players {
		assert.Equal(t, -10.0, payouts[p.ID])
	}
}

// Pot value splits evenly across all skins won.
func TestSkinsPotPayoutSplit(t *testing.T) {
	r, players := skinsRound(t, &Skins{PotPerPlayer: 10})
	alice, bob := players[0], players[1]

	winHole(r, players, 1, alice)
	winHole(r, players, 2, alice)
	winHole(r, players, 3, bob)
	winHole(r, players, 4, bob)

	// $40 pot over 4 skins: $10 per skin. Alice and bob break even at two
	// skins each; the others are out their ante.
	payouts := r.SkinsPayouts()
	assert.Equal(t, 10.0, payouts[alice.ID])
	assert.Equal(t, 10.0, payouts[bob.ID])
	assert.Equal(t, -10.0, payouts[players[2].ID])
}

// Legacy mode: fixed value per skin, settled pairwise.
func TestSkinsLegacyPayout(t *testing.T) {
	r, players := skinsRound(t, &Skins{SkinValue: 2})
	alice, bob := players[0], players[1]

	winHole(r, players, 1, alice)
	winHole(r, players, 2, alice)
	winHole(r, players, 3, alice)
	winHole(r, players, 4, bob)

	// Alice (3 skins) collects 2*(3-0)=6 from carol, 6 from dan, and
	// 2*(3-1)=4 from bob. Bob (1 skin) pays alice 4 but collects 2 each
	// from carol and dan.
	payouts := r.SkinsPayouts()
	assert.Equal(t, 16.0, payouts[alice.ID])
	assert.Equal(t, 0.0, payouts[bob.ID])
	assert.Equal(t, -8.0, payouts[players[2].ID])
	assert.Equal(t, -8.0, payouts[players[3].ID])
}

func TestSkinsWrongFormat(t *testing.T) {
	alice := newTestPlayer("alice", 0)
	r := NewRound(testCourse(), []Player{alice}, StrokePlay{})
	r.RecordGross(1, alice.ID, 3)

	assert.Empty(t, r.SkinsByPlayer())
	assert.Empty(t, r.SkinsPayouts())
}
