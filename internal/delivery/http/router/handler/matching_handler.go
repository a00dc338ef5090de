package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mentorhub/internal/delivery/http/middleware"
	"mentorhub/internal/delivery/http/response"
	"mentorhub/internal/domain/entity"
	"mentorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchingHandler holds dependencies for matching-request handlers.
type MatchingHandler struct {
	uc     usecase.MatchingUsecase
	logger *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler, injected by Fx.
func NewMatchingHandler(uc usecase.MatchingUsecase, logger *slog.Logger) *MatchingHandler {
	return &MatchingHandler{
		uc:     uc,
		logger: logger,
	}
}

type createRequestBody struct {
	MentorID int64  `json:"mentorId" validate:"required"`
	Message  string `json:"message" validate:"max=500"`
}

type resolveRequestBody struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// CreateRequest handles a mentee submitting a matching request.
func (h *MatchingHandler) CreateRequest(c echo.Context) error {
	actingID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var body createRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid matching request input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid matching request input")
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), &usecase.CreateRequestInput{
		MenteeID: actingID,
		MentorID: body.MentorID,
		Message:  body.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Matching request created")
}

// Resolve handles a mentor accepting or rejecting a pending request.
// The target state comes from the request body.
func (h *MatchingHandler) Resolve(c echo.Context) error {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "request id must be a number")
	}

	actingID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var body resolveRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolve input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "status must be accepted or rejected")
	}

	var request *entity.MatchingRequest
	if body.Status == entity.RequestStatusAccepted.String() {
		request, err = h.uc.Accept(c.Request().Context(), requestID, actingID)
	} else {
		request, err = h.uc.Reject(c.Request().Context(), requestID, actingID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Matching request updated")
}

// Cancel handles a mentee withdrawing a pending request.
func (h *MatchingHandler) Cancel(c echo.Context) error {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "request id must be a number")
	}

	actingID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	request, err := h.uc.Cancel(c.Request().Context(), requestID, actingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Matching request cancelled")
}

// ListOutgoing handles a mentee listing their own requests.
func (h *MatchingHandler) ListOutgoing(c echo.Context) error {
	actingID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.ListOutgoing(c.Request().Context(), actingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Outgoing requests retrieved")
}

// ListIncoming handles a mentor listing requests addressed to them.
func (h *MatchingHandler) ListIncoming(c echo.Context) error {
	actingID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.ListIncoming(c.Request().Context(), actingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Incoming requests retrieved")
}
