package handlers

// scores.go — PUT /api/v1/rounds/:id/scores, the single write path into the
// ledger. Score entry is an upsert on (round, hole, player): entering hole 7
// again just replaces hole 7. After each write the results are recomputed
// through the engine and pushed to everyone watching the round.

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trentd187/golf-scorecard/internal/models"
	"github.com/trentd187/golf-scorecard/internal/websocket"
)

// UpsertScoreRequest is the JSON body for PUT /api/v1/rounds/:id/scores.
type UpsertScoreRequest struct {
	HoleNumber   int    `json:"hole_number"`
	PlayerID     string `json:"player_id"`
	GrossStrokes int    `json:"gross_strokes"`
}

// UpsertScore returns the handler that records one gross score.
func UpsertScore(db *gorm.DB, hub *websocket.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr, _ := c.Locals("userID").(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid user ID",
			})
		}

		roundID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid round id",
			})
		}
		var req UpsertScoreRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.HoleNumber < 1 || req.HoleNumber > 18 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "hole_number must be within 1-18",
			})
		}
		if req.GrossStrokes < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "gross_strokes must be positive",
			})
		}
		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player_id",
			})
		}

		var round models.Round
		if err := db.First(&round, "id = ?", roundID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}
		if round.Status != models.RoundStatusActive {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "round is not active",
			})
		}

		// The ledger never holds a score for a player outside the round.
		var member int64
		db.Model(&models.RoundPlayer{}).
			Where("round_id = ? AND player_id = ?", roundID, playerID).
			Count(&member)
		if member == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "player is not in this round",
			})
		}

		// ON CONFLICT on the (round, hole, player) index keeps the upsert a
		// single statement.
		score := models.Score{
			RoundID:      roundID,
			HoleNumber:   req.HoleNumber,
			PlayerID:     playerID,
			GrossStrokes: req.GrossStrokes,
			EnteredBy:    userID,
		}
		err = db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "round_id"}, {Name: "hole_number"}, {Name: "player_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"gross_strokes", "entered_by", "updated_at"}),
		}).Create(&score).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to record score",
			})
		}

		// Recompute and push the fresh results to every watcher.
		results := computeResults(db, roundID)
		if results != nil {
			if data, err := json.Marshal(results); err == nil {
				hub.BroadcastToRound(roundID.String(), data)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"hole_number":   req.HoleNumber,
			"player_id":     req.PlayerID,
			"gross_strokes": req.GrossStrokes,
		})
	}
}
