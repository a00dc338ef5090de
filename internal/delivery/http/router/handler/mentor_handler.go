package handler

import (
	"log/slog"
	"net/http"

	"mentorhub/internal/delivery/http/response"
	"mentorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MentorHandler holds dependencies for the mentor directory handlers.
type MentorHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewMentorHandler is the constructor for MentorHandler, injected by Fx.
func NewMentorHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *MentorHandler {
	return &MentorHandler{
		uc:     uc,
		logger: logger,
	}
}

// SearchMentors handles the mentor directory search request.
// Both query parameters are optional: skill filters by tech stack substring,
// sortBy orders the result by "name" or "techStack".
func (h *MentorHandler) SearchMentors(c echo.Context) error {
	input := &usecase.SearchMentorsInput{
		TechStack: c.QueryParam("skill"),
		SortBy:    c.QueryParam("sortBy"),
	}

	mentors, err := h.uc.SearchMentors(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mentors, "Mentors retrieved successfully")
}
