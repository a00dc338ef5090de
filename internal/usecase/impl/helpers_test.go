package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mentorhub/config"
	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/service"
	"mentorhub/internal/infra/auth"
	"mentorhub/internal/infra/persistence/memory"
	"mentorhub/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			// MinCost keeps bcrypt cheap in tests.
			BcryptCost: bcrypt.MinCost,
		},
	}
	cfg.SecretKey.Token = "test-secret"

	return cfg
}

// testFixtures wires the services against the in-memory store so tests
// exercise real transactions, hashing and token signing end to end.
type testFixtures struct {
	store        *memory.Store
	authService  usecase.AuthUsecase
	directory    usecase.DirectoryUsecase
	matching     usecase.MatchingUsecase
	hasher       service.PasswordHasher
	tokenService service.TokenService
}

func createTestFixtures(t *testing.T) testFixtures {
	t.Helper()

	cfg := newTestConfig()
	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	logger := newDiscardLogger()

	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authService := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     store.UserRepo(),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	directory := NewDirectoryService(DirectoryServiceParams{
		UserRepo: store.UserRepo(),
		Logger:   logger,
	})

	matching := NewMatchingService(MatchingServiceParams{
		TxManager:    txManager,
		MatchingRepo: store.MatchingRepo(),
		Logger:       logger,
	})

	return testFixtures{
		store:        store,
		authService:  authService,
		directory:    directory,
		matching:     matching,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (f testFixtures) registerUser(t *testing.T, email, name string, role entity.Role) *entity.PublicProfile {
	t.Helper()

	output, err := f.authService.Register(context.Background(), &usecase.RegisterInput{
		Email:    email,
		Password: "password1",
		Role:     role,
		Name:     name,
	})
	require.NoError(t, err)

	return output.User
}

func (f testFixtures) setTechStack(t *testing.T, userID int64, techStack string) {
	t.Helper()

	_, err := f.authService.UpdateProfile(context.Background(), userID, &usecase.UpdateProfileInput{
		TechStack: &techStack,
	})
	require.NoError(t, err)
}
