package scoring

import "testing"

// scrambleRound builds a two-team scramble: team Eagles (alice 8, bob 12 —
// average handicap 10) and team Hawks (carol 0, dan 0). Alice and carol are
// the representatives their teams' scores are recorded under.
func scrambleRound(t *testing.T) (*Round, [4]Player) {
	t.Helper()
	alice := newTestPlayer("alice", 8)
	bob := newTestPlayer("bob", 12)
	carol := newTestPlayer("carol", 0)
	dan := newTestPlayer("dan", 0)
	teams := TeamAssignment{
		"Eagles": {alice.ID, bob.ID},
		"Hawks":  {carol.ID, dan.ID},
	}
	r := NewRound(testCourse(), []Player{alice, bob, carol, dan}, &Scramble{Teams: teams})
	return r, [4]Player{alice, bob, carol, dan}
}

func TestScrambleRepresentative(t *testing.T) {
	r, p := scrambleRound(t)

	rep, ok := r.ScrambleRepresentative("Eagles")
	if !ok || rep.ID != p[0].ID {
		t.Errorf("Eagles representative = %v, %v; want alice", rep.Name, ok)
	}
	if _, ok := r.ScrambleRepresentative("Falcons"); ok {
		t.Error("representative found for an unknown team")
	}
}

// The team plays off the average of its members' indexes: Eagles average 10,
// so they stroke on stroke indexes 1..10.
func TestScrambleNet(t *testing.T) {
	r, p := scrambleRound(t)
	alice, carol := p[0], p[2]

	// Hole 4 carries stroke index 1, hole 13 carries stroke index 18.
	r.RecordGross(4, alice.ID, 5)
	r.RecordGross(13, alice.ID, 5)
	r.RecordGross(4, carol.ID, 4)

	if got := r.ScrambleNet("Eagles", FullRound); got != 9 {
		t.Errorf("Eagles net = %d, want 9 (one stroke on hole 4, none on 13)", got)
	}
	if got := r.ScrambleGross("Eagles", FullRound); got != 10 {
		t.Errorf("Eagles gross = %d, want 10", got)
	}
	// Hawks average a scratch handicap: net equals gross.
	if got := r.ScrambleNet("Hawks", FullRound); got != 4 {
		t.Errorf("Hawks net = %d, want 4", got)
	}
}

func TestScrambleStandings(t *testing.T) {
	r, p := scrambleRound(t)
	alice, carol := p[0], p[2]

	recordHoles(r, alice, evenRound(18, 5)...)
	recordHoles(r, carol, evenRound(18, 4)...)

	standings := r.ScrambleStandings()
	if len(standings) != 2 {
		t.Fatalf("standings for %d teams, want 2", len(standings))
	}
	// Eagles: 90 gross, 10 allocated strokes off the average handicap.
	if got := standings["Eagles"]; got.Gross != 90 || got.Net != 80 {
		t.Errorf("Eagles = %+v, want 90/80", got)
	}
	if got := standings["Hawks"]; got.Gross != 72 || got.Net != 72 {
		t.Errorf("Hawks = %+v, want 72/72", got)
	}
}

func TestScrambleWrongFormat(t *testing.T) {
	alice := newTestPlayer("alice", 8)
	r := NewRound(testCourse(), []Player{alice}, StrokePlay{})
	recordHoles(r, alice, evenRound(18, 5)...)

	if got := r.ScrambleNet("Eagles", FullRound); got != 0 {
		t.Errorf("ScrambleNet on a stroke-play round = %d, want 0", got)
	}
	if got := r.ScrambleStandings(); len(got) != 0 {
		t.Errorf("ScrambleStandings on a stroke-play round = %v, want empty", got)
	}
}
