package scoring

import "math"

// allocator.go — handicap-stroke allocation.
//
// Recreational handicap scoring gives weaker players extra strokes on the
// hardest holes. Each hole carries a stroke index (1 = hardest .. 18 =
// easiest); a player with an effective handicap of N receives one stroke on
// each of the N hardest holes. A handicap above 18 wraps around: every hole
// gets a base stroke, and the remainder above 18 is allocated to the hardest
// holes again (those holes get two).

// StrokesForHole returns how many handicap strokes a player with the given
// handicap index receives on a hole with the given stroke index.
//
// halfHandicap plays the round at half the player's index. No current format
// uses it — all segments score with the full index — but side games played at
// half handicap can opt in.
func StrokesForHole(handicapIndex float64, holeStrokeIndex int, halfHandicap bool) int {
	effective := handicapIndex
	if halfHandicap {
		effective = handicapIndex / 2
	}

	// Round the effective handicap to the nearest whole stroke, ties away
	// from zero: 14.5 plays as 15, -0.5 as -1.
	handicap := int(math.Round(effective))

	if handicap <= 18 {
		if holeStrokeIndex <= handicap {
			return 1
		}
		return 0
	}

	// Above 18 every hole gets one stroke, and the overflow is allocated to
	// the hardest holes a second time. A 20 handicap gets two strokes on
	// stroke-index 1 and 2, one stroke everywhere else.
	strokes := 1
	remainder := handicap % 18
	if remainder > 0 && holeStrokeIndex <= remainder {
		strokes++
	}
	return strokes
}
