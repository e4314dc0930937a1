package handlers

// players.go — the /api/v1/players routes. Players are the golfers on the
// scorecard, separate from authenticated users: one phone typically manages
// a whole group's players.

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-scorecard/internal/models"
)

// PlayerResponse is a player as the app sees them.
type PlayerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	HandicapIndex float64 `json:"handicap_index"`
	DeviceOwner   bool    `json:"device_owner"`
}

func playerResponse(p *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		HandicapIndex: p.HandicapIndex,
		DeviceOwner:   p.DeviceOwner,
	}
}

// CreatePlayerRequest is the JSON body for POST /api/v1/players.
type CreatePlayerRequest struct {
	Name          string  `json:"name"`
	HandicapIndex float64 `json:"handicap_index"`
	DeviceOwner   bool    `json:"device_owner"`
}

// CreatePlayer returns the handler for POST /api/v1/players.
func CreatePlayer(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreatePlayerRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "name is required",
			})
		}

		player := models.Player{
			Name:          req.Name,
			HandicapIndex: req.HandicapIndex,
			DeviceOwner:   req.DeviceOwner,
		}
		if err := db.Create(&player).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create player",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(playerResponse(&player))
	}
}

// GetPlayers returns the handler for GET /api/v1/players.
func GetPlayers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch players",
			})
		}
		resp := make([]PlayerResponse, 0, len(players))
		for i := range players {
			resp = append(resp, playerResponse(&players[i]))
		}
		return c.JSON(resp)
	}
}

// UpdateHandicapRequest is the JSON body for PATCH /api/v1/players/:id/handicap.
type UpdateHandicapRequest struct {
	HandicapIndex float64 `json:"handicap_index"`
}

// UpdatePlayerHandicap returns the handler for PATCH /api/v1/players/:id/handicap.
// Handicaps change between rounds, not during them: the update is refused
// while the player is in an active round, so a card in progress keeps the
// allocation it started with.
func UpdatePlayerHandicap(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player id",
			})
		}
		var req UpdateHandicapRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		var player models.Player
		if err := db.First(&player, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}

		var active int64
		db.Model(&models.RoundPlayer{}).
			Joins("JOIN rounds ON rounds.id = round_players.round_id").
			Where("round_players.player_id = ? AND rounds.status = ?", id, models.RoundStatusActive).
			Count(&active)
		if active > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "player is in an active round; handicaps change between rounds",
			})
		}

		if err := db.Model(&player).Update("handicap_index", req.HandicapIndex).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update handicap",
			})
		}
		player.HandicapIndex = req.HandicapIndex
		return c.JSON(playerResponse(&player))
	}
}
