package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/domain/service"
	mockRepo "fangate/internal/mocks/repository"
	mockService "fangate/internal/mocks/service"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service          usecase.VerificationUsecase
	userRepo         *mockRepo.MockUserRepository
	accountRepo      *mockRepo.MockAccountRepository
	verificationRepo *mockRepo.MockVerificationRepository
	provider         *mockService.MockStreamingProvider
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	provider := mockService.NewMockStreamingProvider(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewVerificationService(VerificationServiceParams{
		UserRepo:         userRepo,
		AccountRepo:      accountRepo,
		VerificationRepo: verificationRepo,
		Provider:         provider,
		Logger:           logger,
	})

	return verificationServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		accountRepo:      accountRepo,
		verificationRepo: verificationRepo,
		provider:         provider,
	}
}

func testUser(userID uuid.UUID, createdAt time.Time) *entity.User {
	return &entity.User{
		ID:        userID,
		SpotifyID: "spotify-user",
		Email:     "fan@example.com",
		CreatedAt: createdAt,
	}
}

func testAccount(userID uuid.UUID, expiresAt time.Time) *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		UserID:       userID,
		Provider:     entity.ProviderSpotify,
		AccessToken:  "stale-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    expiresAt,
	}
}

func TestVerificationService_Verify_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))
	snapshot := &entity.Snapshot{
		TopArtists: []entity.Artist{
			{ID: "3Nrfpe0tUJi4K4DXYWgMUX", Name: "BTS"},
			{ID: "5vV3bFXnN6D6N3Nj4xRvaV", Name: "Jung Kook"},
		},
	}
	verificationID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(snapshot, nil)
	fx.verificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Verification")).
		Run(func(ctx context.Context, verification *entity.Verification) {
			verification.ID = verificationID
		}).
		Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, verificationID, output.VerificationID)
	assert.Equal(t, 70, output.FanScore)
	assert.True(t, output.CanProceed)
	assert.False(t, output.Synthetic)
	assert.NotEmpty(t, output.Breakdown)
}

func TestVerificationService_Verify_BelowThreshold(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))
	snapshot := &entity.Snapshot{
		TopArtists: []entity.Artist{{ID: "3Nrfpe0tUJi4K4DXYWgMUX", Name: "BTS"}},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(snapshot, nil)
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 50, output.FanScore)
	assert.False(t, output.CanProceed)
}

func TestVerificationService_Verify_AgeBonusFromUserCreation(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The streaming account was linked long ago but the user record is new,
	// so the age bonus must not apply.
	account := testAccount(userID, time.Now().Add(time.Hour))
	account.CreatedAt = time.Now().Add(-100 * 24 * time.Hour)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now().Add(-10*24*time.Hour)), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(&entity.Snapshot{}, nil)
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, output.FanScore)
}

func TestVerificationService_Verify_AgeBonusForOldUser(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now().Add(-100*24*time.Hour)), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(&entity.Snapshot{}, nil)
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 10, output.FanScore)
}

func TestVerificationService_Verify_UserNotFound(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Verify(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestVerificationService_Verify_AccountNotLinked(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Verify(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotLinked))
}

func TestVerificationService_Verify_ProactiveRefresh(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(30*time.Second))
	newExpiry := time.Now().Add(time.Hour)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().Synthetic().Return(false)
	fx.provider.EXPECT().RefreshAccessToken(ctx, "refresh-token").Return(&service.TokenRefresh{
		AccessToken:  "fresh-token",
		RefreshToken: "rotated-refresh",
		ExpiresAt:    newExpiry,
	}, nil)
	fx.accountRepo.EXPECT().UpdateTokens(ctx, account).Return(nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "fresh-token").Return(&entity.Snapshot{}, nil)
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, output.FanScore)
	assert.Equal(t, "fresh-token", account.AccessToken)
	assert.Equal(t, "rotated-refresh", account.RefreshToken)
	assert.Equal(t, newExpiry, account.ExpiresAt)
}

func TestVerificationService_Verify_SyntheticSkipsTokenRefresh(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(30*time.Second))
	snapshot := &entity.Snapshot{Synthetic: true, Notice: "demo data"}

	// No RefreshAccessToken or UpdateTokens expectations: a canned gateway
	// must leave the stored token set alone even when it is about to expire.
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().Synthetic().Return(true)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(snapshot, nil)
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.Synthetic)
	assert.Equal(t, "stale-token", account.AccessToken)
	assert.Equal(t, "refresh-token", account.RefreshToken)
}

func TestVerificationService_Verify_RetryAfterRejection(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(nil, service.ErrProviderAuth).Once()
	fx.provider.EXPECT().RefreshAccessToken(ctx, "refresh-token").Return(&service.TokenRefresh{
		AccessToken:  "fresh-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil)
	fx.accountRepo.EXPECT().UpdateTokens(ctx, account).Return(nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "fresh-token").Return(&entity.Snapshot{}, nil).Once()
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	_, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
}

func TestVerificationService_Verify_SessionExpiredAfterRefresh(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(nil, service.ErrProviderAuth).Once()
	fx.provider.EXPECT().RefreshAccessToken(ctx, "refresh-token").Return(&service.TokenRefresh{
		AccessToken:  "fresh-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}, nil)
	fx.accountRepo.EXPECT().UpdateTokens(ctx, account).Return(nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "fresh-token").Return(nil, service.ErrProviderAuth).Once()

	output, err := fx.service.Verify(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderSessionExpired))
}

func TestVerificationService_Verify_RefreshTokenRejected(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(-time.Minute))

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().Synthetic().Return(false)
	fx.provider.EXPECT().RefreshAccessToken(ctx, "refresh-token").Return(nil, service.ErrProviderAuth)

	output, err := fx.service.Verify(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderSessionExpired))
}

func TestVerificationService_Verify_UpstreamUnavailable(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(nil, errors.New("spotify returned status 502"))

	output, err := fx.service.Verify(ctx, userID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}

func TestVerificationService_Verify_SyntheticSnapshot(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	account := testAccount(userID, time.Now().Add(time.Hour))
	snapshot := &entity.Snapshot{
		TopArtists: []entity.Artist{{ID: "3Nrfpe0tUJi4K4DXYWgMUX", Name: "BTS"}},
		Synthetic:  true,
		Notice:     "demo data",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser(userID, time.Now()), nil)
	fx.accountRepo.EXPECT().FindByUserAndProvider(ctx, userID, entity.ProviderSpotify).Return(account, nil)
	fx.provider.EXPECT().FetchSnapshot(ctx, "stale-token").Return(snapshot, nil)
	fx.verificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Verification")).Return(nil)

	output, err := fx.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.Synthetic)
	assert.Equal(t, "demo data", output.Notice)
}
