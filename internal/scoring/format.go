package scoring

import "fmt"

// format.go — the closed set of round formats.
//
// A round's format is fixed at creation and decides which derived
// computations apply. Each format is its own type carrying its own
// configuration payload (team assignments for the match-play variants, pot
// and carryover settings for skins), and the engine dispatches on the
// concrete type rather than comparing tag strings. The string tag survives
// only at the persistence boundary, via Tag and ParseFormat.

// Format is implemented by exactly the seven round formats below.
type Format interface {
	// Tag returns the format's persistence tag, e.g. "nassau".
	Tag() string

	isFormat()
}

// Format persistence tags.
const (
	TagStroke            = "stroke"
	TagStableford        = "stableford"
	TagBestBall          = "bestball"
	TagBestBallMatchPlay = "bestball_matchplay"
	TagNassau            = "nassau"
	TagSkins             = "skins"
	TagScramble          = "scramble"
)

// StrokePlay is plain stroke play: fewest total strokes wins, gross and net.
type StrokePlay struct{}

// Stableford converts each hole's net score relative to par into points via
// a configurable point table. A nil Table scores with the default table.
type Stableford struct {
	Table PointTable
}

// BestBall is team stroke play where the team's score on a hole is the best
// individual score among its members.
type BestBall struct {
	Teams TeamAssignment
}

// BestBallMatchPlay is best ball scored as a single 18-hole match: holes are
// won, lost, or halved on team best-ball net. Exactly two teams.
type BestBallMatchPlay struct {
	Teams TeamAssignment
}

// Nassau splits the round into three matches — front nine, back nine, and
// overall — each worth a point, plus any presses added during play.
// Exactly two teams.
type Nassau struct {
	Teams   TeamAssignment
	Presses []Press
}

// Skins awards each hole to its sole lowest-net player, with ties optionally
// carrying the skin forward. Exactly one payout mode is active per round:
// pot-based when PotPerPlayer is set, otherwise the legacy fixed value per
// skin with pairwise settlement.
type Skins struct {
	PotPerPlayer float64 // each player's contribution to the pot; > 0 selects pot payout
	Carryover    bool    // tied holes push their skins onto the next won hole
	SkinValue    float64 // legacy mode: fixed dollar value per skin
}

// Scramble is the team format where everyone plays from the best shot; one
// score per team per hole, recorded under the team's first listed member.
type Scramble struct {
	Teams TeamAssignment
}

func (StrokePlay) Tag() string         { return TagStroke }
func (*Stableford) Tag() string        { return TagStableford }
func (*BestBall) Tag() string          { return TagBestBall }
func (*BestBallMatchPlay) Tag() string { return TagBestBallMatchPlay }
func (*Nassau) Tag() string            { return TagNassau }
func (*Skins) Tag() string             { return TagSkins }
func (*Scramble) Tag() string          { return TagScramble }

func (StrokePlay) isFormat()         {}
func (*Stableford) isFormat()        {}
func (*BestBall) isFormat()          {}
func (*BestBallMatchPlay) isFormat() {}
func (*Nassau) isFormat()            {}
func (*Skins) isFormat()             {}
func (*Scramble) isFormat()          {}

// ParseFormat reconstructs a format value from its persistence tag.
// The returned format carries a zero-value payload; the caller fills in
// teams, presses, and skins configuration from their own stored columns.
func ParseFormat(tag string) (Format, error) {
	switch tag {
	case TagStroke:
		return StrokePlay{}, nil
	case TagStableford:
		return &Stableford{}, nil
	case TagBestBall:
		return &BestBall{}, nil
	case TagBestBallMatchPlay:
		return &BestBallMatchPlay{}, nil
	case TagNassau:
		return &Nassau{}, nil
	case TagSkins:
		return &Skins{}, nil
	case TagScramble:
		return &Scramble{}, nil
	default:
		return nil, fmt.Errorf("unknown format tag %q", tag)
	}
}

// teams returns the round format's team assignment, for the formats that
// have one. Formats without teams return ok=false.
func formatTeams(f Format) (TeamAssignment, bool) {
	switch f := f.(type) {
	case *BestBall:
		return f.Teams, true
	case *BestBallMatchPlay:
		return f.Teams, true
	case *Nassau:
		return f.Teams, true
	case *Scramble:
		return f.Teams, true
	default:
		return nil, false
	}
}
