package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookit/experience-booking/internal/model"
	"github.com/bookit/experience-booking/internal/repository"
)

// ExperienceHandler serves the public catalog.  Responses expose only the
// fields a guest needs for browsing and checkout.
type ExperienceHandler struct {
	Repo *repository.ExperienceRepo
}

// NewExperienceHandler returns a handler over the given catalog repository.
func NewExperienceHandler(repo *repository.ExperienceRepo) *ExperienceHandler {
	return &ExperienceHandler{Repo: repo}
}

type experienceSummary struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Price       int64  `json:"price"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type slotView struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Capacity int64  `json:"capacity"`
}

type experienceDetail struct {
	experienceSummary
	Slots []slotView `json:"slots"`
}

// List handles GET /v1/experiences.
func (h *ExperienceHandler) List(c echo.Context) error {
	items, err := h.Repo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]experienceSummary, 0, len(items))
	for _, e := range items {
		out = append(out, summarize(&e))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/experiences/:id.  The detail response includes every
// slot with its remaining capacity so clients can render availability.
func (h *ExperienceHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid experience id"})
	}
	exp, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "experience not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	detail := experienceDetail{summarize(exp), make([]slotView, 0, len(exp.Slots))}
	for _, s := range exp.Slots {
		detail.Slots = append(detail.Slots, slotView{Date: s.Date, Time: s.Time, Capacity: s.Capacity})
	}
	return c.JSON(http.StatusOK, detail)
}

func summarize(e *model.Experience) experienceSummary {
	return experienceSummary{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Price:       e.Price,
		Location:    e.Location,
		Description: e.Description,
		Image:       e.Image,
	}
}
