// Package handlers contains the HTTP route handler functions for the Golf
// Scorecard API. Each exported function follows the handler factory pattern:
// it takes a *gorm.DB (and sometimes the websocket hub) and returns a
// fiber.Handler, so dependencies are injected without globals.
//
// Handlers do no scoring of their own. This file is the bridge between the
// persistence rows in models and the engine in scoring: it loads a round and
// everything it references and assembles a scoring.Round the engine can
// compute from. Derived values are never stored — every request recomputes
// from the ledger, so there is no cached state to invalidate.
package handlers

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-scorecard/internal/models"
	"github.com/trentd187/golf-scorecard/internal/scoring"
)

// stablefordTable is the process-wide Stableford point table: the settings
// endpoints update it and every assembled stableford round scores through
// it, so custom point rules apply uniformly and immediately.
var stablefordTable = scoring.NewStablefordTable()

// loadRound fetches a round row with its course, players, and scores.
func loadRound(db *gorm.DB, id uuid.UUID) (*models.Round, error) {
	var round models.Round
	err := db.
		Preload("Course.Holes.Distances").
		Preload("Players.Player").
		Preload("Scores").
		First(&round, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// assembleRound turns persistence rows into the engine's value types:
// course metadata, the ordered player list, the parsed format payload, and
// a ledger filled with the recorded gross scores.
func assembleRound(round *models.Round) (*scoring.Round, error) {
	format, err := assembleFormat(round)
	if err != nil {
		return nil, err
	}

	r := &scoring.Round{
		ID:       round.ID,
		Course:   assembleCourse(round.Course),
		Players:  assemblePlayers(round.Players),
		Format:   format,
		Tracking: map[uuid.UUID]bool{},
		Scores:   scoring.NewLedger(),
	}
	if round.TeeColor != nil {
		r.TeeColor = *round.TeeColor
	}
	if tracking, err := scoring.ParseTracking(round.Tracking); err == nil {
		r.Tracking = tracking
	}
	for _, s := range round.Scores {
		r.RecordGross(s.HoleNumber, s.PlayerID, s.GrossStrokes)
	}
	return r, nil
}

// assembleCourse maps a course row and its holes into the engine's course.
// A round without a course assembles to nil, which the engine treats as the
// degraded "no stroke indexes" path.
func assembleCourse(course *models.Course) *scoring.Course {
	if course == nil {
		return nil
	}
	c := &scoring.Course{
		Name:   course.Name,
		Slope:  course.Slope,
		Rating: course.Rating,
	}
	for _, h := range course.Holes {
		hole := scoring.Hole{
			Number:      h.HoleNumber,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
		}
		if len(h.Distances) > 0 {
			hole.Yardages = make(map[string]int, len(h.Distances))
			for _, d := range h.Distances {
				hole.Yardages[d.Color] = d.Yards
			}
		}
		c.Holes = append(c.Holes, hole)
	}
	sort.Slice(c.Holes, func(i, j int) bool { return c.Holes[i].Number < c.Holes[j].Number })
	return c
}

// assemblePlayers maps the round's player rows into the engine's ordered
// player list, sorted by the position they were added in.
func assemblePlayers(roundPlayers []models.RoundPlayer) []scoring.Player {
	sorted := make([]models.RoundPlayer, len(roundPlayers))
	copy(sorted, roundPlayers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	players := make([]scoring.Player, 0, len(sorted))
	for _, rp := range sorted {
		players = append(players, scoring.Player{
			ID:            rp.Player.ID,
			Name:          rp.Player.Name,
			HandicapIndex: rp.Player.HandicapIndex,
			DeviceOwner:   rp.Player.DeviceOwner,
		})
	}
	return players
}

// assembleFormat parses the round's format tag and fills the payload from
// the row's configuration columns.
func assembleFormat(round *models.Round) (scoring.Format, error) {
	format, err := scoring.ParseFormat(round.Format)
	if err != nil {
		return nil, err
	}

	switch f := format.(type) {
	case *scoring.Stableford:
		f.Table = stablefordTable
	case *scoring.BestBall:
		if f.Teams, err = scoring.ParseTeams(round.Teams); err != nil {
			return nil, err
		}
	case *scoring.BestBallMatchPlay:
		if f.Teams, err = scoring.ParseTeams(round.Teams); err != nil {
			return nil, err
		}
	case *scoring.Nassau:
		if f.Teams, err = scoring.ParseTeams(round.Teams); err != nil {
			return nil, err
		}
		if f.Presses, err = scoring.ParsePresses(round.Presses); err != nil {
			return nil, err
		}
	case *scoring.Skins:
		if round.PotPerPlayer != nil {
			f.PotPerPlayer = *round.PotPerPlayer
		}
		if round.SkinValue != nil {
			f.SkinValue = *round.SkinValue
		}
		f.Carryover = round.Carryover
	case *scoring.Scramble:
		if f.Teams, err = scoring.ParseTeams(round.Teams); err != nil {
			return nil, err
		}
	}
	return format, nil
}
