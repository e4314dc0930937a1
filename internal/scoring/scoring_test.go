package scoring

import (
	"github.com/google/uuid"
)

// Shared fixtures for the engine tests.

// testPars and testStrokeIndexes describe the fixture course hole by hole.
// The stroke indexes form a full 1..18 permutation, as the allocator expects.
var (
	testPars          = [18]int{4, 5, 3, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 5, 3, 4, 4}
	testStrokeIndexes = [18]int{5, 13, 17, 1, 9, 15, 3, 11, 7, 6, 14, 2, 18, 10, 4, 16, 8, 12}
)

// testCourse builds an 18-hole par-72 course.
func testCourse() *Course {
	c := &Course{Name: "Pebble Creek", Slope: 128, Rating: 71.6}
	for i := 0; i < 18; i++ {
		c.Holes = append(c.Holes, Hole{
			Number:      i + 1,
			Par:         testPars[i],
			StrokeIndex: testStrokeIndexes[i],
		})
	}
	return c
}

// newTestPlayer builds a player with a fixed ID so tests stay deterministic.
func newTestPlayer(name string, handicap float64) Player {
	return Player{
		ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:          name,
		HandicapIndex: handicap,
	}
}

// recordHoles records gross scores for a player starting at hole 1. Entries
// of 0 leave the hole unscored.
func recordHoles(r *Round, player Player, scores ...int) {
	for i, gross := range scores {
		if gross == 0 {
			continue
		}
		r.RecordGross(i+1, player.ID, gross)
	}
}

// evenRound is a filled slice of n identical scores, for building halved
// holes quickly.
func evenRound(n, gross int) []int {
	scores := make([]int, n)
	for i := range scores {
		scores[i] = gross
	}
	return scores
}
