package handlers

// courses.go — the /api/v1/courses routes. A course is created whole: name,
// ratings, and all of its holes (par + stroke index, optional per-tee-color
// yardages) in one request, since the engine is only correct against a full
// 1..18 stroke-index ranking.

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-scorecard/internal/models"
)

// HoleRequest is one hole in a course creation request.
type HoleRequest struct {
	HoleNumber  int            `json:"hole_number"`  // 1-18
	Par         int            `json:"par"`          // 3, 4, or 5
	StrokeIndex int            `json:"stroke_index"` // 1 = hardest .. 18 = easiest
	Yardages    map[string]int `json:"yardages"`     // optional: tee color -> yards
}

// CreateCourseRequest is the JSON body for POST /api/v1/courses.
type CreateCourseRequest struct {
	Name   string        `json:"name"`
	Slope  int           `json:"slope"`
	Rating float64       `json:"rating"`
	Holes  []HoleRequest `json:"holes"`
}

// HoleResponse mirrors HoleRequest on the way out.
type HoleResponse struct {
	HoleNumber  int            `json:"hole_number"`
	Par         int            `json:"par"`
	StrokeIndex int            `json:"stroke_index"`
	Yardages    map[string]int `json:"yardages,omitempty"`
}

// CourseResponse is what the app receives for a course.
type CourseResponse struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Slope  int            `json:"slope"`
	Rating float64        `json:"rating"`
	Holes  []HoleResponse `json:"holes,omitempty"`
}

func courseResponse(course *models.Course, withHoles bool) CourseResponse {
	resp := CourseResponse{
		ID:     course.ID.String(),
		Name:   course.Name,
		Slope:  course.Slope,
		Rating: course.Rating,
	}
	if !withHoles {
		return resp
	}
	for _, h := range course.Holes {
		hole := HoleResponse{
			HoleNumber:  h.HoleNumber,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
		}
		if len(h.Distances) > 0 {
			hole.Yardages = make(map[string]int, len(h.Distances))
			for _, d := range h.Distances {
				hole.Yardages[d.Color] = d.Yards
			}
		}
		resp.Holes = append(resp.Holes, hole)
	}
	return resp
}

// CreateCourse returns the handler for POST /api/v1/courses.
// Requires admin or manager (enforced by RequireRole on the route).
func CreateCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateCourseRequest
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
		seen := make(map[int]bool, len(req.Holes))
		for _, h := range req.Holes {
			if h.HoleNumber < 1 || h.HoleNumber > 18 || seen[h.HoleNumber] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "hole numbers must be unique and within 1-18",
				})
			}
			seen[h.HoleNumber] = true
		}

		// The course and its holes are written in one transaction so a
		// failed hole insert never leaves a half-described course behind.
		var created models.Course
		txErr := db.Transaction(func(tx *gorm.DB) error {
			course := models.Course{
				Name:   req.Name,
				Slope:  req.Slope,
				Rating: req.Rating,
			}
			if err := tx.Create(&course).Error; err != nil {
				return err
			}
			for _, h := range req.Holes {
				hole := models.Hole{
					CourseID:    course.ID,
					HoleNumber:  h.HoleNumber,
					Par:         h.Par,
					StrokeIndex: h.StrokeIndex,
				}
				if err := tx.Create(&hole).Error; err != nil {
					return err
				}
				for color, yards := range h.Yardages {
					dist := models.TeeDistance{HoleID: hole.ID, Color: color, Yards: yards}
					if err := tx.Create(&dist).Error; err != nil {
						return err
					}
				}
			}
			created = course
			return nil
		})
		if txErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create course",
			})
		}

		db.Preload("Holes.Distances").First(&created, "id = ?", created.ID)
		return c.Status(fiber.StatusCreated).JSON(courseResponse(&created, true))
	}
}

// GetCourses returns the handler for GET /api/v1/courses: all courses,
// holes omitted for brevity.
func GetCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var courses []models.Course
		if err := db.Order("name").Find(&courses).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch courses",
			})
		}
		resp := make([]CourseResponse, 0, len(courses))
		for i := range courses {
			resp = append(resp, courseResponse(&courses[i], false))
		}
		return c.JSON(resp)
	}
}

// GetCourse returns the handler for GET /api/v1/courses/:id, holes included.
func GetCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid course id",
			})
		}
		var course models.Course
		if err := db.Preload("Holes.Distances").First(&course, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "course not found",
			})
		}
		return c.JSON(courseResponse(&course, true))
	}
}
