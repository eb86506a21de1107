package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fangate/config"
	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	mockRepo "fangate/internal/mocks/repository"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	userRepo         *mockRepo.MockUserRepository
	verificationRepo *mockRepo.MockVerificationRepository
	attemptRepo      *mockRepo.MockQuizAttemptRepository
}

func createTestAdminService(t *testing.T, adminEmail string) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	attemptRepo := mockRepo.NewMockQuizAttemptRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{Admin: &config.AdminConfig{Email: adminEmail}}
	service := NewAdminService(AdminServiceParams{
		UserRepo:         userRepo,
		VerificationRepo: verificationRepo,
		AttemptRepo:      attemptRepo,
		Config:           cfg,
		Logger:           logger,
	})

	return adminServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		attemptRepo:      attemptRepo,
	}
}

func TestAdminService_ListUsers_Success(t *testing.T) {
	fx := createTestAdminService(t, "ops@example.com")

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Email: "first@example.com"},
		{ID: uuid.New(), Email: "second@example.com"},
	}
	userIDs := []uuid.UUID{users[0].ID, users[1].ID}
	verification := &entity.Verification{ID: uuid.New(), UserID: users[0].ID, FanScore: 120}
	attempt := &entity.QuizAttempt{ID: uuid.New(), UserID: users[0].ID, Score: 8}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)
	fx.verificationRepo.EXPECT().LatestByUserIDs(ctx, userIDs).
		Return(map[uuid.UUID]*entity.Verification{users[0].ID: verification}, nil)
	fx.attemptRepo.EXPECT().LatestByUserIDs(ctx, userIDs).
		Return(map[uuid.UUID]*entity.QuizAttempt{users[0].ID: attempt}, nil)

	rows, err := fx.service.ListUsers(ctx, "ops@example.com")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, users[0], rows[0].User)
	assert.Equal(t, verification, rows[0].LatestVerification)
	assert.Equal(t, attempt, rows[0].LatestAttempt)
	assert.Nil(t, rows[1].LatestVerification)
	assert.Nil(t, rows[1].LatestAttempt)
}

func TestAdminService_ListUsers_CaseInsensitiveEmail(t *testing.T) {
	fx := createTestAdminService(t, "ops@example.com")

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx).Return([]*entity.User{}, nil)
	fx.verificationRepo.EXPECT().LatestByUserIDs(ctx, []uuid.UUID{}).
		Return(map[uuid.UUID]*entity.Verification{}, nil)
	fx.attemptRepo.EXPECT().LatestByUserIDs(ctx, []uuid.UUID{}).
		Return(map[uuid.UUID]*entity.QuizAttempt{}, nil)

	rows, err := fx.service.ListUsers(ctx, "OPS@Example.COM")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAdminService_ListUsers_Forbidden(t *testing.T) {
	fx := createTestAdminService(t, "ops@example.com")

	ctx := context.Background()

	rows, err := fx.service.ListUsers(ctx, "someone@example.com")

	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdminService_ListUsers_LockedWhenUnset(t *testing.T) {
	fx := createTestAdminService(t, "")

	ctx := context.Background()

	rows, err := fx.service.ListUsers(ctx, "")

	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdminService_ListUsers_ListError(t *testing.T) {
	fx := createTestAdminService(t, "ops@example.com")

	ctx := context.Background()

	fx.userRepo.EXPECT().List(ctx).Return(nil, errors.New("db error"))

	rows, err := fx.service.ListUsers(ctx, "ops@example.com")

	assert.Nil(t, rows)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")
}
