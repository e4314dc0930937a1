package handlers

// rounds.go — the /api/v1/rounds routes: starting a round, reading its live
// scorecard, pressing a Nassau match, and marking it complete.

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-scorecard/internal/models"
	"github.com/trentd187/golf-scorecard/internal/scoring"
)

// CreateRoundRequest is the JSON body for POST /api/v1/rounds.
// Teams is required for the team formats; pot/carryover/skin_value apply to
// skins only. A round with no course id is scored on the degraded path
// (gross minus whole handicap) until course data exists.
type CreateRoundRequest struct {
	CourseID     *string             `json:"course_id"`
	Format       string              `json:"format"`
	TeeColor     *string             `json:"tee_color"`
	PlayerIDs    []string            `json:"player_ids"`
	Teams        map[string][]string `json:"teams"`
	TrackingIDs  []string            `json:"tracking_player_ids"`
	PotPerPlayer *float64            `json:"pot_per_player"`
	Carryover    bool                `json:"carryover"`
	SkinValue    *float64            `json:"skin_value"`
}

// RoundResponse is the round's configuration as the app sees it.
type RoundResponse struct {
	ID        string              `json:"id"`
	CourseID  *string             `json:"course_id"`
	Format    string              `json:"format"`
	TeeColor  *string             `json:"tee_color"`
	Status    string              `json:"status"`
	Players   []PlayerResponse    `json:"players"`
	Teams     map[string][]string `json:"teams,omitempty"`
	Presses   []PressResponse     `json:"presses,omitempty"`
	Tracking  []string            `json:"tracking_player_ids,omitempty"`
	CreatedAt string              `json:"created_at"`
}

// PressResponse is one pressed Nassau bet.
type PressResponse struct {
	Match        string `json:"match"`
	StartingHole int    `json:"starting_hole"`
	Team         string `json:"team"`
}

func roundResponse(round *models.Round) RoundResponse {
	resp := RoundResponse{
		ID:        round.ID.String(),
		Format:    round.Format,
		TeeColor:  round.TeeColor,
		Status:    string(round.Status),
		CreatedAt: round.CreatedAt.UTC().Format(time.RFC3339),
	}
	if round.CourseID != nil {
		id := round.CourseID.String()
		resp.CourseID = &id
	}
	for _, rp := range round.Players {
		resp.Players = append(resp.Players, playerResponse(&rp.Player))
	}
	if teams, err := scoring.ParseTeams(round.Teams); err == nil && len(teams) > 0 {
		resp.Teams = make(map[string][]string, len(teams))
		for name, members := range teams {
			ids := make([]string, 0, len(members))
			for _, id := range members {
				ids = append(ids, id.String())
			}
			resp.Teams[name] = ids
		}
	}
	if presses, err := scoring.ParsePresses(round.Presses); err == nil {
		for _, p := range presses {
			resp.Presses = append(resp.Presses, PressResponse{
				Match:        string(p.Match),
				StartingHole: p.StartingHole,
				Team:         p.Team,
			})
		}
	}
	if tracking, err := scoring.ParseTracking(round.Tracking); err == nil {
		for id := range tracking {
			resp.Tracking = append(resp.Tracking, id.String())
		}
	}
	return resp
}

// CreateRound returns the handler for POST /api/v1/rounds.
func CreateRound(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, _ := c.Locals("userID").(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid user ID",
			})
		}

		var req CreateRoundRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if _, err := scoring.ParseFormat(req.Format); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown format",
			})
		}
		if len(req.PlayerIDs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player_ids is required",
			})
		}

		playerIDs := make([]uuid.UUID, 0, len(req.PlayerIDs))
		inRound := make(map[uuid.UUID]bool, len(req.PlayerIDs))
		for _, raw := range req.PlayerIDs {
			id, err := uuid.Parse(raw)
			if err != nil || inRound[id] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "player_ids must be unique valid ids",
				})
			}
			playerIDs = append(playerIDs, id)
			inRound[id] = true
		}

		var count int64
		db.Model(&models.Player{}).Where("id IN ?", playerIDs).Count(&count)
		if count != int64(len(playerIDs)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown player in player_ids",
			})
		}

		var courseID *uuid.UUID
		if req.CourseID != nil && *req.CourseID != "" {
			id, err := uuid.Parse(*req.CourseID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "invalid course_id",
				})
			}
			var course models.Course
			if err := db.First(&course, "id = ?", id).Error; err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "course not found",
				})
			}
			courseID = &id
		}

		// Teams may only name players who are in the round.
		teams := make(scoring.TeamAssignment, len(req.Teams))
		for name, rawIDs := range req.Teams {
			members := make([]uuid.UUID, 0, len(rawIDs))
			for _, raw := range rawIDs {
				id, err := uuid.Parse(raw)
				if err != nil || !inRound[id] {
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
						"error": "team member is not in the round",
					})
				}
				members = append(members, id)
			}
			teams[name] = members
		}

		tracking := make(map[uuid.UUID]bool, len(req.TrackingIDs))
		for _, raw := range req.TrackingIDs {
			id, err := uuid.Parse(raw)
			if err != nil || !inRound[id] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "tracking player is not in the round",
				})
			}
			tracking[id] = true
		}

		var created models.Round
		txErr := db.Transaction(func(tx *gorm.DB) error {
			round := models.Round{
				CourseID:     courseID,
				Format:       req.Format,
				TeeColor:     req.TeeColor,
				Teams:        scoring.EncodeTeams(teams),
				Tracking:     scoring.EncodeTracking(tracking),
				PotPerPlayer: req.PotPerPlayer,
				Carryover:    req.Carryover,
				SkinValue:    req.SkinValue,
				Status:       models.RoundStatusActive,
				CreatedBy:    userID,
			}
			if err := tx.Create(&round).Error; err != nil {
				return err
			}
			for i, id := range playerIDs {
				rp := models.RoundPlayer{RoundID: round.ID, PlayerID: id, Position: i}
				if err := tx.Create(&rp).Error; err != nil {
					return err
				}
			}
			created = round
			return nil
		})
		if txErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create round",
			})
		}

		db.Preload("Players.Player").First(&created, "id = ?", created.ID)
		return c.Status(fiber.StatusCreated).JSON(roundResponse(&created))
	}
}

// GetRound returns the handler for GET /api/v1/rounds/:id: the round's
// configuration plus its live scorecard (per-hole gross and derived net for
// every player, and segment totals).
func GetRound(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid round id",
			})
		}
		round, err := loadRound(db, id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}
		engine, err := assembleRound(round)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "round configuration is corrupt",
			})
		}

		resp := fiber.Map{
			"round":     roundResponse(round),
			"scorecard": scorecard(engine),
			"complete":  engine.Complete(),
		}
		return c.JSON(resp)
	}
}

// ScorecardLine is one player's row on the live scorecard. Gross and Net are
// keyed by hole number; holes with nothing recorded are simply absent, which
// the app renders as blank cells.
type ScorecardLine struct {
	PlayerID   string      `json:"player_id"`
	Name       string      `json:"name"`
	Gross      map[int]int `json:"gross"`
	Net        map[int]int `json:"net"`
	FrontGross int         `json:"front_gross"`
	BackGross  int         `json:"back_gross"`
	TotalGross int         `json:"total_gross"`
	FrontNet   int         `json:"front_net"`
	BackNet    int         `json:"back_net"`
	TotalNet   int         `json:"total_net"`
}

// scorecard renders every player's line from the engine.
func scorecard(r *scoring.Round) []ScorecardLine {
	lines := make([]ScorecardLine, 0, len(r.Players))
	for _, totals := range r.Totals() {
		p, _ := r.Player(totals.Player)
		line := ScorecardLine{
			PlayerID:   p.ID.String(),
			Name:       p.Name,
			Gross:      make(map[int]int),
			Net:        make(map[int]int),
			FrontGross: totals.FrontGross,
			BackGross:  totals.BackGross,
			TotalGross: totals.TotalGross,
			FrontNet:   totals.FrontNet,
			BackNet:    totals.BackNet,
			TotalNet:   totals.TotalNet,
		}
		for hole := 1; hole <= 18; hole++ {
			if gross, ok := r.Gross(hole, p.ID); ok {
				line.Gross[hole] = gross
			}
			if net, ok := r.NetScore(hole, p.ID); ok {
				line.Net[hole] = net
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// AddPress returns the handler for POST /api/v1/rounds/:id/presses.
// The engine decides whether the press stands: Nassau rounds only, and only
// for a team strictly down in the pressed nine.
func AddPress(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid round id",
			})
		}
		var req PressResponse
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		round, err := loadRound(db, id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}
		engine, err := assembleRound(round)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "round configuration is corrupt",
			})
		}

		press := scoring.Press{
			Match:        scoring.MatchType(req.Match),
			StartingHole: req.StartingHole,
			Team:         req.Team,
		}
		if !engine.AddPress(press) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "press not available: a team strictly down may press its nine from a hole within it",
			})
		}

		nassau := engine.Format.(*scoring.Nassau)
		if err := db.Model(round).Update("presses", scoring.EncodePresses(nassau.Presses)).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to record press",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"presses": nassau.Presses,
		})
	}
}

// CompleteRound returns the handler for POST /api/v1/rounds/:id/complete.
// A round completes only when all 18 holes hold a gross score for every
// player; otherwise the caller learns what's missing by reading the card.
func CompleteRound(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid round id",
			})
		}
		round, err := loadRound(db, id)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}
		engine, err := assembleRound(round)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "round configuration is corrupt",
			})
		}
		if !engine.Complete() {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "round is not fully scored",
			})
		}
		if err := db.Model(round).Update("status", models.RoundStatusCompleted).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to complete round",
			})
		}
		return c.JSON(fiber.Map{"status": string(models.RoundStatusCompleted)})
	}
}
