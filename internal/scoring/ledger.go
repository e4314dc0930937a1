package scoring

import (
	"sort"

	"github.com/google/uuid"
)

// Ledger holds the raw gross strokes recorded for a round, keyed by hole
// number and player. A hole's entry is created lazily the first time any
// player records a score there; recording again for the same (hole, player)
// overwrites the previous value, so re-entering a corrected score needs no
// special path.
//
// The ledger knows nothing about handicaps or formats — net scores are
// derived by the Round, which combines the ledger with course metadata.
type Ledger struct {
	gross map[int]map[uuid.UUID]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{gross: make(map[int]map[uuid.UUID]int)}
}

// Record upserts the gross strokes for a (hole, player) cell.
func (l *Ledger) Record(hole int, player uuid.UUID, strokes int) {
	if l.gross[hole] == nil {
		l.gross[hole] = make(map[uuid.UUID]int)
	}
	l.gross[hole][player] = strokes
}

// Gross looks up the recorded gross strokes for a (hole, player) cell.
// ok is false when no score has been recorded there.
func (l *Ledger) Gross(hole int, player uuid.UUID) (int, bool) {
	strokes, ok := l.gross[hole][player]
	return strokes, ok
}

// Holes returns the hole numbers that have at least one recorded score,
// in ascending order.
func (l *Ledger) Holes() []int {
	holes := make([]int, 0, len(l.gross))
	for hole := range l.gross {
		holes = append(holes, hole)
	}
	sort.Ints(holes)
	return holes
}
