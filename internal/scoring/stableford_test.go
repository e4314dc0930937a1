package scoring

import "testing"

func TestStablefordTableDefaults(t *testing.T) {
	table := NewStablefordTable()

	tests := []struct {
		name     string
		netToPar int
		want     int
	}{
		{"double eagle or better", -3, 5},
		{"beyond double eagle", -5, 5},
		{"eagle", -2, 4},
		{"birdie", -1, 3},
		{"par", 0, 2},
		{"bogey", 1, 1},
		{"double bogey", 2, 0},
		{"worse than double bogey", 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Points(tt.netToPar); got != tt.want {
				t.Errorf("Points(%d) = %d, want %d", tt.netToPar, got, tt.want)
			}
		})
	}
}

func TestStablefordTableOverrideAndReset(t *testing.T) {
	table := NewStablefordTable()

	// Modified Stableford: bogeys cost a point.
	table.SetBogey(-1)
	table.SetPar(1)
	if got := table.Points(1); got != -1 {
		t.Errorf("overridden bogey = %d, want -1", got)
	}
	if got := table.Par(); got != 1 {
		t.Errorf("overridden par = %d, want 1", got)
	}

	table.Reset()
	if got := table.Points(1); got != 1 {
		t.Errorf("bogey after reset = %d, want 1", got)
	}
	if table.DoubleEagleOrBetter() != 5 || table.Eagle() != 4 || table.Birdie() != 3 ||
		table.Par() != 2 || table.Bogey() != 1 || table.DoubleBogeyOrWorse() != 0 {
		t.Error("reset did not restore all six defaults")
	}
}

func TestStablefordPoints(t *testing.T) {
	// Scratch player so net equals gross. Fixture pars:
	// hole 1 par 4, hole 2 par 5, hole 3 par 3.
	alice := newTestPlayer("alice", 0)
	r := NewRound(testCourse(), []Player{alice}, &Stableford{})

	r.RecordGross(1, alice.ID, 3) // birdie: 3 points
	r.RecordGross(2, alice.ID, 5) // par: 2 points
	r.RecordGross(3, alice.ID, 6) // triple bogey: 0 points
	// Holes 4..18 unscored: contribute 0, not a penalty.

	if got := r.StablefordPoints(alice.ID); got != 5 {
		t.Errorf("StablefordPoints = %d, want 5", got)
	}
}

// Every lookup goes through the injected table, so a custom table changes
// the totals uniformly.
func TestStablefordPointsCustomTable(t *testing.T) {
	table := NewStablefordTable()
	table.SetPar(3)

	alice := newTestPlayer("alice", 0)
	r := NewRound(testCourse(), []Player{alice}, &Stableford{Table: table})
	recordHoles(r, alice, 4, 5, 3) // three pars on the first three holes

	if got := r.StablefordPoints(alice.ID); got != 9 {
		t.Errorf("StablefordPoints with custom table = %d, want 9", got)
	}
}

// Handicap strokes feed the differential: a gross bogey on a stroked hole is
// a net par.
func TestStablefordUsesNetScore(t *testing.T) {
	// Handicap 1 strokes only on stroke index 1, which is hole 4 (par 4).
	alice := newTestPlayer("alice", 1)
	r := NewRound(testCourse(), []Player{alice}, &Stableford{})
	r.RecordGross(4, alice.ID, 5)

	if got := r.StablefordPoints(alice.ID); got != 2 {
		t.Errorf("StablefordPoints = %d, want 2 (net par)", got)
	}
}

func TestStablefordWrongFormat(t *testing.T) {
	alice := newTestPlayer("alice", 0)
	r := NewRound(testCourse(), []Player{alice}, StrokePlay{})
	recordHoles(r, alice, 3, 4, 2)

	if got := r.StablefordPoints(alice.ID); got != 0 {
		t.Errorf("StablefordPoints on a stroke-play round = %d, want 0", got)
	}
	if got := r.StablefordStandings(); len(got) != 0 {
		t.Errorf("StablefordStandings on a stroke-play round = %v, want empty", got)
	}
}
