package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/escoffier/enrollment-system/internal/core/domain"
	"github.com/escoffier/enrollment-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for payment intents and history.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type recordPaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	TransactionID string   `json:"transaction_id"`
	Amount        float64  `json:"amount" validate:"gte=0"`
	ClassNames    []string `json:"class_names"`
	ClassIDs      []string `json:"class_ids"`
	EnrollmentIDs []string `json:"enrollment_ids"`
}

// CreateIntent handles POST /create-payment-intent. Any authenticated caller
// may initiate an intent; there is no role check. Provider failures propagate
// as request failures.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Price in decimal currency units"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	secret, err := h.payments.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: secret})
}

// History handles GET /payments — most recent first.
//
// @Summary      List payment history
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Payer email"
// @Success      200    {array}   domain.Payment
// @Failure      401    {object}  map[string]string
// @Router       /payments [get]
func (h *PaymentHandler) History(c echo.Context) error {
	payments, err := h.payments.History(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Record handles POST /payments — appends a payment record.
//
// @Summary      Record a completed payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordPaymentRequest  true  "Payment details"
// @Success      200   {object}  insertResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.payments.Record(c.Request().Context(), &domain.Payment{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		ClassNames:    req.ClassNames,
		ClassIDs:      req.ClassIDs,
		EnrollmentIDs: req.EnrollmentIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}
