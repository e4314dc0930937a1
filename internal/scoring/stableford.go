package scoring

import (
	"sync"

	"github.com/google/uuid"
)

// stableford.go — Stableford points.
//
// Stableford turns each hole's net score relative to par into points, so one
// blow-up hole doesn't sink the whole card. The point values are not fixed by
// the engine: they come from a point table that the host application can
// reconfigure at runtime (some groups pay 2 for par, some leagues play
// modified Stableford with negative bogey values). Every lookup goes through
// the table so custom rules apply uniformly.

// PointTable supplies the points awarded for a hole, keyed by the hole's net
// score relative to par (net minus par; -1 is a net birdie).
type PointTable interface {
	Points(netToPar int) int
}

// Default Stableford point values.
const (
	defaultDoubleEagle = 5 // net -3 or better
	defaultEagle       = 4
	defaultBirdie      = 3
	defaultPar         = 2
	defaultBogey       = 1
	defaultDoubleBogey = 0 // net +2 or worse
)

// StablefordTable is the standard PointTable implementation: six values, one
// per score band, each independently gettable and settable. Reads and writes
// are guarded so the table can be shared between the scoring path and a
// settings endpoint updating it.
type StablefordTable struct {
	mu sync.RWMutex

	doubleEagle int // net -3 or better ("double eagle or better")
	eagle       int // net -2
	birdie      int // net -1
	par         int // net 0
	bogey       int // net +1
	doubleBogey int // net +2 or worse ("double bogey or worse")
}

// NewStablefordTable returns a table loaded with the default values
// 5, 4, 3, 2, 1, 0.
func NewStablefordTable() *StablefordTable {
	t := &StablefordTable{}
	t.Reset()
	return t
}

// Reset restores all six values to their defaults.
func (t *StablefordTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.doubleEagle = defaultDoubleEagle
	t.eagle = defaultEagle
	t.birdie = defaultBirdie
	t.par = defaultPar
	t.bogey = defaultBogey
	t.doubleBogey = defaultDoubleBogey
}

// Points maps a net-relative-to-par differential onto the configured values.
// Differentials beyond the table's edges collapse into the edge bands: -5 is
// still "double eagle or better", +4 is still "double bogey or worse".
func (t *StablefordTable) Points(netToPar int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	switch {
	case netToPar <= -3:
		return t.doubleEagle
	case netToPar == -2:
		return t.eagle
	case netToPar == -1:
		return t.birdie
	case netToPar == 0:
		return t.par
	case netToPar == 1:
		return t.bogey
	default:
		return t.doubleBogey
	}
}

func (t *StablefordTable) DoubleEagleOrBetter() int { t.mu.RLock(); defer t.mu.RUnlock(); return t.doubleEagle }
func (t *StablefordTable) Eagle() int               { t.mu.RLock(); defer t.mu.RUnlock(); return t.eagle }
func (t *StablefordTable) Birdie() int              { t.mu.RLock(); defer t.mu.RUnlock(); return t.birdie }
func (t *StablefordTable) Par() int                 { t.mu.RLock(); defer t.mu.RUnlock(); return t.par }
func (t *StablefordTable) Bogey() int               { t.mu.RLock(); defer t.mu.RUnlock(); return t.bogey }
func (t *StablefordTable) DoubleBogeyOrWorse() int  { t.mu.RLock(); defer t.mu.RUnlock(); return t.doubleBogey }

func (t *StablefordTable) SetDoubleEagleOrBetter(v int) { t.mu.Lock(); defer t.mu.Unlock(); t.doubleEagle = v }
func (t *StablefordTable) SetEagle(v int)               { t.mu.Lock(); defer t.mu.Unlock(); t.eagle = v }
func (t *StablefordTable) SetBirdie(v int)              { t.mu.Lock(); defer t.mu.Unlock(); t.birdie = v }
func (t *StablefordTable) SetPar(v int)                 { t.mu.Lock(); defer t.mu.Unlock(); t.par = v }
func (t *StablefordTable) SetBogey(v int)               { t.mu.Lock(); defer t.mu.Unlock(); t.bogey = v }
func (t *StablefordTable) SetDoubleBogeyOrWorse(v int)  { t.mu.Lock(); defer t.mu.Unlock(); t.doubleBogey = v }

// StablefordPoints totals a player's Stableford points across the round.
// Holes without course metadata or without a recorded gross score contribute
// zero points — an unplayed hole is not a penalty, it's simply not scored
// yet. Returns 0 for rounds that aren't playing Stableford.
func (r *Round) StablefordPoints(player uuid.UUID) int {
	format, ok := r.Format.(*Stableford)
	if !ok {
		return 0
	}
	table := format.Table
	if table == nil {
		table = NewStablefordTable()
	}

	total := 0
	for hole := 1; hole <= 18; hole++ {
		h, ok := r.Course.Hole(hole)
		if !ok {
			continue
		}
		net, ok := r.NetScore(hole, player)
		if !ok {
			continue
		}
		total += table.Points(net - h.Par)
	}
	return total
}

// StablefordStandings returns every player's point total, keyed by player ID.
func (r *Round) StablefordStandings() map[uuid.UUID]int {
	standings := make(map[uuid.UUID]int, len(r.Players))
	if _, ok := r.Format.(*Stableford); !ok {
		return standings
	}
	for _, p := range r.Players {
		standings[p.ID] = r.StablefordPoints(p.ID)
	}
	return standings
}
