package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// ClassHandler handles HTTP requests for the class catalogue.
type ClassHandler struct {
	classes ports.ClassService
}

func NewClassHandler(classes ports.ClassService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

type createClassRequest struct {
	Name            string  `json:"name" validate:"required"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructor_name"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	AvailableSeats  int     `json:"available_seats"`
	Price           float64 `json:"price" validate:"gte=0"`
}

type feedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// List handles GET /classes. An optional email query restricts the result to
// one instructor's classes; ordering is always enrolled_student descending.
//
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Param        email  query     string  false  "Instructor email filter"
// @Success      200    {array}   domain.Class
// @Router       /classes [get]
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.classes.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// ListApproved handles GET /approved — the public catalogue.
//
// @Summary      List approved classes
// @Tags         classes
// @Produce      json
// @Success      200  {array}  domain.Class
// @Router       /approved [get]
func (h *ClassHandler) ListApproved(c echo.Context) error {
	classes, err := h.classes.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// Get handles GET /classes/:id. A missing class answers JSON null, not 404;
// absence is not an error for lookups.
//
// @Summary      Get a class by id
// @Tags         classes
// @Produce      json
// @Param        id   path      string  true  "Class id"
// @Success      200  {object}  domain.Class
// @Failure      400  {object}  map[string]string
// @Router       /classes/{id} [get]
func (h *ClassHandler) Get(c echo.Context) error {
	class, err := h.classes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}

// Create handles POST /classes — instructor only. No uniqueness check:
// an instructor may list the same class twice.
//
// @Summary      Create a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClassRequest  true  "Class details"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.classes.Create(c.Request().Context(), &domain.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}

// Update handles PATCH /classes/:id — shallow merge of the provided fields.
//
// @Summary      Partially update a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Class id"
// @Param        body  body      partialUpdate  true  "Fields to merge"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  map[string]string
// @Router       /classes/{id} [patch]
func (h *ClassHandler) Update(c echo.Context) error {
	// Bind the body only. The full binder would also fold the :id path
	// param into the map and it would end up inside the $set document.
	var fields partialUpdate
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(fields) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty update")
	}

	res, err := h.classes.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// SetFeedback handles PUT /classes/:id — admin only, feedback field only,
// upsert-if-absent semantics.
//
// @Summary      Set admin feedback on a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Class id"
// @Param        body  body      feedbackRequest  true  "Feedback"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /classes/{id} [put]
func (h *ClassHandler) SetFeedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.classes.SetFeedback(c.Request().Context(), c.Param("id"), req.Feedback)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
