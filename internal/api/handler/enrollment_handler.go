package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// EnrollmentHandler handles HTTP requests for class selection and enrollment.
type EnrollmentHandler struct {
	enrollments ports.EnrollmentService
}

func NewEnrollmentHandler(enrollments ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

type selectClassRequest struct {
	ClassID         string  `json:"class_id"`
	ClassName       string  `json:"class_name" validate:"required"`
	ClassImage      string  `json:"class_image"`
	InstructorEmail string  `json:"instructor_email"`
	StudentEmail    string  `json:"student_email" validate:"required,email"`
	Price           float64 `json:"price" validate:"gte=0"`
}

// ListSelected handles GET /enrolls/selected — the student's cart.
//
// @Summary      List selected (unpaid) enrollments
// @Tags         enrolls
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Student email"
// @Success      200    {array}   domain.Enrollment
// @Failure      401    {object}  map[string]string
// @Router       /enrolls/selected [get]
func (h *EnrollmentHandler) ListSelected(c echo.Context) error {
	return h.listByStatus(c, domain.PaymentSelected)
}

// ListEnrolled handles GET /enrolls/enrolled — paid enrollments.
//
// @Summary      List enrolled (paid) enrollments
// @Tags         enrolls
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Student email"
// @Success      200    {array}   domain.Enrollment
// @Failure      401    {object}  map[string]string
// @Router       /enrolls/enrolled [get]
func (h *EnrollmentHandler) ListEnrolled(c echo.Context) error {
	return h.listByStatus(c, domain.PaymentEnrolled)
}

func (h *EnrollmentHandler) listByStatus(c echo.Context, status domain.PaymentStatus) error {
	enrollments, err := h.enrollments.ListByStatus(c.Request().Context(), c.QueryParam("email"), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollments)
}

// Get handles GET /enrolls/:id. A missing enrollment answers JSON null.
//
// @Summary      Get an enrollment by id
// @Tags         enrolls
// @Produce      json
// @Param        id   path      string  true  "Enrollment id"
// @Success      200  {object}  domain.Enrollment
// @Failure      400  {object}  map[string]string
// @Router       /enrolls/{id} [get]
func (h *EnrollmentHandler) Get(c echo.Context) error {
	enrollment, err := h.enrollments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollment)
}

// Select handles POST /enrolls. Selecting a class the student already holds
// answers 400; the uniqueness guard is atomic at the store level.
//
// @Summary      Select a class
// @Tags         enrolls
// @Accept       json
// @Produce      json
// @Param        body  body      selectClassRequest  true  "Selection details"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  map[string]string
// @Router       /enrolls [post]
func (h *EnrollmentHandler) Select(c echo.Context) error {
	var req selectClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.enrollments.Select(c.Request().Context(), &domain.Enrollment{
		ClassID:         req.ClassID,
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		InstructorEmail: req.InstructorEmail,
		StudentEmail:    req.StudentEmail,
		Price:           req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}

// Update handles PATCH /enrolls/:id — shallow field merge. The payment flow
// uses this to move payment_status from selected to enrolled.
//
// @Summary      Partially update an enrollment
// @Tags         enrolls
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Enrollment id"
// @Param        body  body      partialUpdate  true  "Fields to merge"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  map[string]string
// @Router       /enrolls/{id} [patch]
func (h *EnrollmentHandler) Update(c echo.Context) error {
	// Bind the body only. The full binder would also fold the :id path
	// param into the map and it would end up inside the $set document.
	var fields partialUpdate
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(fields) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty update")
	}

	res, err := h.enrollments.Update(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Remove handles DELETE /enrolls/:id. Deleting an absent id reports
// deleted_count 0 rather than an error.
//
// @Summary      Remove an enrollment
// @Tags         enrolls
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Enrollment id"
// @Success      200  {object}  ports.DeleteResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /enrolls/{id} [delete]
func (h *EnrollmentHandler) Remove(c echo.Context) error {
	res, err := h.enrollments.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
