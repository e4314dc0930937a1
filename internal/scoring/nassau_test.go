package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nassauRound builds a two-player Nassau, scratch handicaps: A (alice) vs
// B (bob), one player per side.
func nassauRound(t *testing.T) (*Round, Player, Player) {
	t.Helper()
	alice := newTestPlayer("alice", 0)
	bob := newTestPlayer("bob", 0)
	format := &Nassau{Teams: TeamAssignment{
		"A": {alice.ID},
		"B": {bob.ID},
	}}
	r := NewRound(testCourse(), []Player{alice, bob}, format)
	return r, alice, bob
}

func TestPressWindow(t *testing.T) {
	tests := []struct {
		name  string
		press Press
		want  Segment
	}{
		{"front press at 5", Press{Match: MatchFront, StartingHole: 5}, Segment{5, 9}},
		{"front press clamps low", Press{Match: MatchFront, StartingHole: 0}, Segment{1, 9}},
		{"back press at 14", Press{Match: MatchBack, StartingHole: 14}, Segment{14, 18}},
		{"back press clamps to 10", Press{Match: MatchBack, StartingHole: 4}, Segment{10, 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.press.Window(); got != tt.want {
				t.Errorf("Window() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A base match finishing all square pays half a point to each side.
func TestNassauAllSquareFront(t *testing.T) {
	r, alice, bob := nassauRound(t)
	recordHoles(r, alice, evenRound(9, 4)...)
	recordHoles(r, bob, evenRound(9, 4)...)

	points := r.NassauPoints()
	assert.Equal(t, 0.5, points["A"])
	assert.Equal(t, 0.5, points["B"])
}

// Winner of front and overall with the back halved: 1 + 0.5 + 1 = 2.5.
func TestNassauPointsFullRound(t *testing.T) {
	r, alice, bob := nassauRound(t)

	// Front: alice takes hole 1, rest halved — A wins the front by one.
	// Back: alice takes 10, bob takes 11, rest halved — halved.
	// Overall: A is two up with one down, one up net — A wins overall.
	recordHoles(r, alice, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 4, 4, 4, 4, 4, 4, 4)
	recordHoles(r, bob, 5, 4, 4, 4, 4, 4, 4, 4, 4, 5, 4, 4, 4, 4, 4, 4, 4, 4)

	points := r.NassauPoints()
	assert.Equal(t, 2.5, points["A"])
	assert.Equal(t, 0.5, points["B"])

	matches := r.NassauMatches()
	require.Len(t, matches, 3)
	assert.Equal(t, "A wins 1 up", matches[0].Status.Text())
	assert.Equal(t, "match halved", matches[1].Status.Text())
	assert.Equal(t, "A wins 1 up", matches[2].Status.Text())
}

// An undecided match with holes still to play pays nothing yet.
func TestNassauOpenMatchPaysNothing(t *testing.T) {
	r, alice, bob := nassauRound(t)
	recordHoles(r, alice, 4, 4, 4)
	recordHoles(r, bob, 5, 4, 4)

	points := r.NassauPoints()
	assert.Equal(t, 0.0, points["A"])
	assert.Equal(t, 0.0, points["B"])
}

func TestNassauPresses(t *testing.T) {
	r, alice, bob := nassauRound(t)

	// Bob drops holes 1-2; being two down he presses from hole 3.
	recordHoles(r, alice, 4, 4)
	recordHoles(r, bob, 5, 5)

	if down, by := r.TeamDown(FrontNine); down != "B" || by != 2 {
		t.Fatalf("TeamDown = %q, %d; want B, 2", down, by)
	}
	require.True(t, r.CanPress("B", MatchFront))
	assert.False(t, r.CanPress("A", MatchFront), "the leading team cannot press")
	assert.False(t, r.CanPress("B", MatchOverall), "the overall match is never pressed")

	require.True(t, r.AddPress(Press{Match: MatchFront, StartingHole: 3, Team: "B"}))

	// Bob storms back: he takes holes 3-7, alice takes 8-9. That wins him
	// both the pressed window and, five holes to four, the base match.
	recordHoles(r, alice, 0, 0, 5, 5, 5, 5, 5, 4, 4)
	recordHoles(r, bob, 0, 0, 4, 4, 4, 4, 4, 5, 5)

	matches := r.NassauMatches()
	require.Len(t, matches, 4)
	press := matches[3]
	assert.True(t, press.Press)
	assert.Equal(t, Segment{3, 9}, press.Window)
	// Inside the pressed window B won five holes and dropped two.
	assert.Equal(t, "B wins 3 up", press.Status.Text())

	// Front base match: alice won 1,2,8,9 and bob won 3,4,5,6,7 — B by one.
	assert.Equal(t, "B wins 1 up", matches[0].Status.Text())

	points := r.NassauPoints()
	assert.Equal(t, 0.0, points["A"])
	assert.Equal(t, 2.0, points["B"]) // front base match + the press
}

func TestNassauPressRefusals(t *testing.T) {
	r, alice, bob := nassauRound(t)

	// All square: no press on offer.
	recordHoles(r, alice, 4, 4)
	recordHoles(r, bob, 4, 4)
	assert.False(t, r.CanPress("A", MatchFront))
	assert.False(t, r.AddPress(Press{Match: MatchFront, StartingHole: 3, Team: "A"}))

	// Non-Nassau rounds never press.
	other := NewRound(testCourse(), []Player{alice, bob}, StrokePlay{})
	assert.False(t, other.AddPress(Press{Match: MatchFront, StartingHole: 3, Team: "A"}))
}

// A press starting past the end of its nine covers no holes: AddPress
// refuses it, and one already sitting in the press log pays nothing rather
// than splitting the point as a finished all-square bet.
func TestNassauPressPastEndOfNine(t *testing.T) {
	r, alice, bob := nassauRound(t)

	// Bob is two down on the front, so pressing is on offer in principle.
	recordHoles(r, alice, 4, 4)
	recordHoles(r, bob, 5, 5)
	require.True(t, r.CanPress("B", MatchFront))

	assert.False(t, r.AddPress(Press{Match: MatchFront, StartingHole: 12, Team: "B"}))
	assert.False(t, r.AddPress(Press{Match: MatchBack, StartingHole: 19, Team: "B"}))

	// Same press injected directly, as a stored press log could carry it.
	format := r.Format.(*Nassau)
	format.Presses = append(format.Presses, Press{Match: MatchFront, StartingHole: 12, Team: "B"})

	matches := r.NassauMatches()
	require.Len(t, matches, 4)
	bad := matches[3]
	assert.Equal(t, 0, bad.Window.Len())
	assert.Equal(t, 0.0, bad.Points["A"])
	assert.Equal(t, 0.0, bad.Points["B"])

	points := r.NassauPoints()
	assert.Equal(t, 0.0, points["A"])
	assert.Equal(t, 0.0, points["B"])
}

func TestNextUnplayedHole(t *testing.T) {
	r, alice, bob := nassauRound(t)

	hole, ok := r.NextUnplayedHole(FrontNine)
	require.True(t, ok)
	assert.Equal(t, 1, hole)

	recordHoles(r, alice, 4, 4, 4)
	recordHoles(r, bob, 4, 4) // bob hasn't finished hole 3

	hole, ok = r.NextUnplayedHole(FrontNine)
	require.True(t, ok)
	assert.Equal(t, 3, hole, "a hole with one side unscored is still unplayed")

	recordHoles(r, alice, evenRound(9, 4)...)
	recordHoles(r, bob, evenRound(9, 4)...)
	_, ok = r.NextUnplayedHole(FrontNine)
	assert.False(t, ok, "the front nine is fully played")
}

func TestNassauWrongTeamCount(t *testing.T) {
	alice := newTestPlayer("alice", 0)
	r := NewRound(testCourse(), []Player{alice}, &Nassau{Teams: TeamAssignment{
		"A": {alice.ID},
	}})

	assert.Nil(t, r.NassauMatches())
	assert.Empty(t, r.NassauPoints())
}
