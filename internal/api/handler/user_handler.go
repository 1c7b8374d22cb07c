package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photo_url"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type adminFlagResponse struct {
	Admin bool `json:"admin"`
}

type instructorFlagResponse struct {
	Instructor bool `json:"instructor"`
}

// List handles GET /users — all users, admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListInstructors handles GET /instructors — public instructor directory.
//
// @Summary      List instructors
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /instructors [get]
func (h *UserHandler) ListInstructors(c echo.Context) error {
	users, err := h.users.ListInstructors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// AdminFlag handles GET /users/admin/:email. The check is self-only: asking
// about anyone else's email answers false without touching the store.
//
// @Summary      Report whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  adminFlagResponse
// @Failure      401    {object}  map[string]string
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminFlag(c echo.Context) error {
	caller, err := ctxEmail(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if caller != email {
		return c.JSON(http.StatusOK, adminFlagResponse{Admin: false})
	}

	isAdmin, err := h.users.HasRole(c.Request().Context(), email, domain.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminFlagResponse{Admin: isAdmin})
}

// InstructorFlag handles GET /users/instructor/:email, self-only like AdminFlag.
//
// @Summary      Report whether the caller is an instructor
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  instructorFlagResponse
// @Failure      401    {object}  map[string]string
// @Router       /users/instructor/{email} [get]
func (h *UserHandler) InstructorFlag(c echo.Context) error {
	caller, err := ctxEmail(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if caller != email {
		return c.JSON(http.StatusOK, instructorFlagResponse{Instructor: false})
	}

	isInstructor, err := h.users.HasRole(c.Request().Context(), email, domain.RoleInstructor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, instructorFlagResponse{Instructor: isInstructor})
}

// Create handles POST /users — idempotent by email. Hitting an existing
// account answers with a message instead of a conflict status; first sign-in
// and repeat sign-in look the same to the client.
//
// @Summary      Create a user on first sign-in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, existed, err := h.users.Create(c.Request().Context(), &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}
	if existed {
		return c.JSON(http.StatusOK, messageResponse{Message: "user already exists"})
	}
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}

// SetRole handles PATCH /users/role/:id — admin-only single-field update.
//
// @Summary      Set a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User id"
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      200   {object}  ports.UpdateResult
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /users/role/{id} [patch]
func (h *UserHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.users.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
