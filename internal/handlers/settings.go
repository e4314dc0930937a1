package handlers

// settings.go — the /api/v1/settings/stableford routes. The six Stableford
// point values live in one process-wide table (see assemble.go); updating
// them changes the scoring of every stableford round immediately, since the
// engine reads the table on every lookup.

import "github.com/gofiber/fiber/v2"

// StablefordSettingsResponse is the point table as the app sees it.
type StablefordSettingsResponse struct {
	DoubleEagleOrBetter int `json:"double_eagle_or_better"`
	Eagle               int `json:"eagle"`
	Birdie              int `json:"birdie"`
	Par                 int `json:"par"`
	Bogey               int `json:"bogey"`
	DoubleBogeyOrWorse  int `json:"double_bogey_or_worse"`
}

func stablefordSettings() StablefordSettingsResponse {
	return StablefordSettingsResponse{
		DoubleEagleOrBetter: stablefordTable.DoubleEagleOrBetter(),
		Eagle:               stablefordTable.Eagle(),
		Birdie:              stablefordTable.Birdie(),
		Par:                 stablefordTable.Par(),
		Bogey:               stablefordTable.Bogey(),
		DoubleBogeyOrWorse:  stablefordTable.DoubleBogeyOrWorse(),
	}
}

// GetStablefordSettings handles GET /api/v1/settings/stableford.
func GetStablefordSettings(c *fiber.Ctx) error {
	return c.JSON(stablefordSettings())
}

// UpdateStablefordSettingsRequest allows any subset of the six values to be
// changed; pointers distinguish "not sent" from an explicit zero.
type UpdateStablefordSettingsRequest struct {
	DoubleEagleOrBetter *int `json:"double_eagle_or_better"`
	Eagle               *int `json:"eagle"`
	Birdie              *int `json:"birdie"`
	Par                 *int `json:"par"`
	Bogey               *int `json:"bogey"`
	DoubleBogeyOrWorse  *int `json:"double_bogey_or_worse"`
}

// UpdateStablefordSettings handles PUT /api/v1/settings/stableford.
func UpdateStablefordSettings(c *fiber.Ctx) error {
	var req UpdateStablefordSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.DoubleEagleOrBetter != nil {
		stablefordTable.SetDoubleEagleOrBetter(*req.DoubleEagleOrBetter)
	}
	if req.Eagle != nil {
		stablefordTable.SetEagle(*req.Eagle)
	}
	if req.Birdie != nil {
		stablefordTable.SetBirdie(*req.Birdie)
	}
	if req.Par != nil {
		stablefordTable.SetPar(*req.Par)
	}
	if req.Bogey != nil {
		stablefordTable.SetBogey(*req.Bogey)
	}
	if req.DoubleBogeyOrWorse != nil {
		stablefordTable.SetDoubleBogeyOrWorse(*req.DoubleBogeyOrWorse)
	}
	return c.JSON(stablefordSettings())
}

// ResetStablefordSettings handles DELETE /api/v1/settings/stableford:
// back to 5, 4, 3, 2, 1, 0.
func ResetStablefordSettings(c *fiber.Ctx) error {
	stablefordTable.Reset()
	return c.JSON(stablefordSettings())
}
