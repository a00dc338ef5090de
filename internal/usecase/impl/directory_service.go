package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "mentorhub/internal/delivery/context"
	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchMentors lists mentor accounts, optionally filtered by a tech stack
// substring (case-sensitive, matched against the raw comma-joined field) and
// sorted by the requested key. An unknown sort key preserves store order.
func (srv *directoryService) SearchMentors(ctx context.Context, input *usecase.SearchMentorsInput) ([]*entity.MentorSummary, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users for mentor search", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	mentors := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.Role != entity.RoleMentor {
			continue
		}
		if input.TechStack != "" && !strings.Contains(user.TechStack, input.TechStack) {
			continue
		}
		mentors = append(mentors, user)
	}

	switch input.SortBy {
	case usecase.SortByName:
		sort.SliceStable(mentors, func(i, j int) bool {
			return strings.ToLower(mentors[i].Name) < strings.ToLower(mentors[j].Name)
		})
	case usecase.SortByTechStack:
		sort.SliceStable(mentors, func(i, j int) bool {
			return strings.ToLower(mentors[i].TechStack) < strings.ToLower(mentors[j].TechStack)
		})
	}

	summaries := make([]*entity.MentorSummary, 0, len(mentors))
	for _, mentor := range mentors {
		summaries = append(summaries, &entity.MentorSummary{
			ID:              mentor.ID,
			Name:            mentor.Name,
			Bio:             mentor.Bio,
			ProfileImageURL: mentor.ProfileImageURL,
			Skills:          mentor.Skills(),
		})
	}

	srv.log(ctx).Debug("Mentor search completed",
		slog.String("techStack", input.TechStack),
		slog.Int("count", len(summaries)))

	return summaries, nil
}
