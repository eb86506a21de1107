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
	mockRepo "fangate/internal/mocks/repository"
	mockService "fangate/internal/mocks/service"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service          usecase.CredentialUsecase
	verificationRepo *mockRepo.MockVerificationRepository
	tokenService     *mockService.MockTokenService
	qrcodeService    *mockService.MockQRCodeService
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	verificationRepo := mockRepo.NewMockVerificationRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCredentialService(CredentialServiceParams{
		VerificationRepo: verificationRepo,
		TokenService:     tokenService,
		QRCodeService:    qrcodeService,
		Logger:           logger,
	})

	return credentialServiceFixtures{
		service:          service,
		verificationRepo: verificationRepo,
		tokenService:     tokenService,
		qrcodeService:    qrcodeService,
	}
}

func passedVerification(userID uuid.UUID) *entity.Verification {
	return &entity.Verification{
		ID:       uuid.New(),
		UserID:   userID,
		FanScore: 150,
		Passed:   true,
	}
}

func TestCredentialService_IssueCredential_Success(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	expiresAt := time.Now().Add(10 * time.Minute)

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.tokenService.EXPECT().
		GeneratePassToken(userID, verification.ID, 150).
		Return("signed-pass", expiresAt, nil)
	fx.verificationRepo.EXPECT().UpdatePassToken(ctx, verification.ID, "signed-pass", expiresAt).Return(nil)

	output, err := fx.service.IssueCredential(ctx, userID, verification.ID)

	require.NoError(t, err)
	assert.Equal(t, verification.ID, output.VerificationID)
	assert.Equal(t, "signed-pass", output.PassToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)

	require.NotNil(t, verification.PassToken)
	assert.Equal(t, "signed-pass", *verification.PassToken)
}

func TestCredentialService_IssueCredential_NotEligible(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	verification.Passed = false

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)

	output, err := fx.service.IssueCredential(ctx, userID, verification.ID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotEligible))
}

func TestCredentialService_IssueCredential_Forbidden(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	verification := passedVerification(uuid.New())

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)

	output, err := fx.service.IssueCredential(ctx, uuid.New(), verification.ID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCredentialService_IssueCredential_NotFound(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	verificationID := uuid.New()

	fx.verificationRepo.EXPECT().FindByID(ctx, verificationID).Return(nil, repository.ErrVerificationNotFound)

	output, err := fx.service.IssueCredential(ctx, uuid.New(), verificationID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationNotFound))
}

func TestCredentialService_IssueCredential_Reissue(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	oldToken := "old-pass"
	oldExpiry := time.Now().Add(5 * time.Minute)
	verification.PassToken = &oldToken
	verification.TokenExpiresAt = &oldExpiry
	newExpiry := time.Now().Add(10 * time.Minute)

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.tokenService.EXPECT().
		GeneratePassToken(userID, verification.ID, 150).
		Return("new-pass", newExpiry, nil)
	fx.verificationRepo.EXPECT().UpdatePassToken(ctx, verification.ID, "new-pass", newExpiry).Return(nil)

	output, err := fx.service.IssueCredential(ctx, userID, verification.ID)

	require.NoError(t, err)
	assert.Equal(t, "new-pass", output.PassToken)
	assert.Equal(t, "new-pass", *verification.PassToken)
}

func TestCredentialService_RenderCredentialQR_ReusesValidToken(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	token := "stored-pass"
	expiry := time.Now().Add(5 * time.Minute)
	verification.PassToken = &token
	verification.TokenExpiresAt = &expiry

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.qrcodeService.EXPECT().GeneratePassQR("stored-pass").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.RenderCredentialQR(ctx, userID, verification.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCredentialService_RenderCredentialQR_ReissuesExpiredToken(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	token := "expired-pass"
	expiry := time.Now().Add(-time.Minute)
	verification.PassToken = &token
	verification.TokenExpiresAt = &expiry
	newExpiry := time.Now().Add(10 * time.Minute)

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.tokenService.EXPECT().
		GeneratePassToken(userID, verification.ID, 150).
		Return("fresh-pass", newExpiry, nil)
	fx.verificationRepo.EXPECT().UpdatePassToken(ctx, verification.ID, "fresh-pass", newExpiry).Return(nil)
	fx.qrcodeService.EXPECT().GeneratePassQR("fresh-pass").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.RenderCredentialQR(ctx, userID, verification.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestCredentialService_RenderCredentialQR_NotEligible(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	verification.Passed = false

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)

	png, err := fx.service.RenderCredentialQR(ctx, userID, verification.ID)

	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrNotEligible))
}

func TestCredentialService_RenderCredentialQR_RenderError(t *testing.T) {
	fx := createTestCredentialService(t)

	ctx := context.Background()
	userID := uuid.New()
	verification := passedVerification(userID)
	token := "stored-pass"
	expiry := time.Now().Add(5 * time.Minute)
	verification.PassToken = &token
	verification.TokenExpiresAt = &expiry

	fx.verificationRepo.EXPECT().FindByID(ctx, verification.ID).Return(verification, nil)
	fx.qrcodeService.EXPECT().GeneratePassQR("stored-pass").Return(nil, errors.New("encode failed"))

	png, err := fx.service.RenderCredentialQR(ctx, userID, verification.ID)

	assert.Nil(t, png)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render credential QR")
}
