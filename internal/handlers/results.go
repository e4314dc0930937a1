package handlers

// results.go — GET /api/v1/rounds/:id/results, the read side of the engine.
// The response always carries the stroke totals; the format-specific section
// is chosen by the round's format. Everything is recomputed from the ledger
// on every call.

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-scorecard/internal/scoring"
)

// GetResults returns the handler for GET /api/v1/rounds/:id/results.
func GetResults(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid round id",
			})
		}
		results := computeResults(db, id)
		if results == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}
		return c.JSON(results)
	}
}

// computeResults loads a round, runs it through the engine, and renders the
// format-appropriate results. Nil when the round doesn't exist or its stored
// configuration can't be parsed.
func computeResults(db *gorm.DB, roundID uuid.UUID) fiber.Map {
	round, err := loadRound(db, roundID)
	if err != nil {
		return nil
	}
	engine, err := assembleRound(round)
	if err != nil {
		return nil
	}

	results := fiber.Map{
		"round_id":  round.ID.String(),
		"format":    engine.Format.Tag(),
		"scorecard": scorecard(engine),
	}

	switch engine.Format.(type) {
	case scoring.StrokePlay:
		// The scorecard totals are the whole story.

	case *scoring.Stableford:
		points := make(map[string]int)
		for id, pts := range engine.StablefordStandings() {
			points[id.String()] = pts
		}
		results["stableford_points"] = points

	case *scoring.BestBall:
		results["best_ball"] = bestBallSection(engine)

	case *scoring.BestBallMatchPlay:
		results["best_ball"] = bestBallSection(engine)
		if status, ok := engine.MatchStatus(scoring.FullRound); ok {
			results["match"] = matchSection(engine, status)
		}

	case *scoring.Nassau:
		matches := engine.NassauMatches()
		sections := make([]fiber.Map, 0, len(matches))
		for _, m := range matches {
			sections = append(sections, fiber.Map{
				"match":      string(m.Match),
				"first_hole": m.Window.First,
				"last_hole":  m.Window.Last,
				"press":      m.Press,
				"status":     m.Status.Text(),
				"points":     m.Points,
			})
		}
		results["nassau_matches"] = sections
		results["nassau_points"] = engine.NassauPoints()

	case *scoring.Skins:
		skins := make(map[string]int)
		for id, n := range engine.SkinsByPlayer() {
			skins[id.String()] = n
		}
		payouts := make(map[string]float64)
		for id, amount := range engine.SkinsPayouts() {
			payouts[id.String()] = amount
		}
		results["skins"] = skins
		results["payouts"] = payouts

	case *scoring.Scramble:
		standings := make(map[string]fiber.Map)
		for team, totals := range engine.ScrambleStandings() {
			standings[team] = fiber.Map{"gross": totals.Gross, "net": totals.Net}
		}
		results["scramble_standings"] = standings
	}

	return results
}

// bestBallSection renders each team's best-ball totals per window.
func bestBallSection(r *scoring.Round) fiber.Map {
	section := fiber.Map{}
	for _, window := range []struct {
		name string
		seg  scoring.Segment
	}{
		{"front", scoring.FrontNine},
		{"back", scoring.BackNine},
		{"total", scoring.FullRound},
	} {
		teams := fiber.Map{}
		for name, totals := range r.BestBallTotals(window.seg) {
			teams[name] = fiber.Map{"gross": totals.Gross, "net": totals.Net}
		}
		section[window.name] = teams
	}
	return section
}

// matchSection renders the 18-hole match's standing alongside the helper
// queries the app uses to drive its match banner.
func matchSection(r *scoring.Round, status scoring.MatchStatus) fiber.Map {
	section := fiber.Map{
		"status":          status.Text(),
		"leader":          status.Leader,
		"holes_up":        status.HolesUp,
		"holes_played":    status.HolesPlayed,
		"holes_remaining": status.HolesRemaining,
		"decided":         status.Decided,
	}
	if hole, ok := r.NextUnplayedHole(scoring.FullRound); ok {
		section["next_hole"] = hole
	}
	return section
}
