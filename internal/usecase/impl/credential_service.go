package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fangate/internal/delivery/context"
	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/domain/service"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	verificationRepo repository.VerificationRepository
	tokenService     service.TokenService
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	VerificationRepo repository.VerificationRepository
	TokenService     service.TokenService
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewCredentialService is the constructor for credentialService. It receives all dependencies as interfaces.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		verificationRepo: params.VerificationRepo,
		tokenService:     params.TokenService,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCredential signs a fresh short-lived credential for a passed
// verification. Reissuing replaces whatever token was stored before, so the
// newest credential is always the one on record.
func (srv *credentialService) IssueCredential(ctx context.Context, userID, verificationID uuid.UUID) (*usecase.CredentialOutput, error) {
	verification, err := srv.loadOwned(ctx, userID, verificationID)
	if err != nil {
		return nil, err
	}

	return srv.issue(ctx, verification)
}

// RenderCredentialQR returns the credential as a PNG QR code. A stored token
// that has not expired is reused; otherwise a fresh one is issued first.
func (srv *credentialService) RenderCredentialQR(ctx context.Context, userID, verificationID uuid.UUID) ([]byte, error) {
	verification, err := srv.loadOwned(ctx, userID, verificationID)
	if err != nil {
		return nil, err
	}

	token := ""
	if verification.HasValidToken(time.Now()) {
		token = *verification.PassToken
	} else {
		credential, err := srv.issue(ctx, verification)
		if err != nil {
			return nil, err
		}
		token = credential.PassToken
	}

	png, err := srv.qrcodeService.GeneratePassQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render credential QR")
	}

	return png, nil
}

// loadOwned fetches a verification and checks it belongs to the caller.
func (srv *credentialService) loadOwned(ctx context.Context, userID, verificationID uuid.UUID) (*entity.Verification, error) {
	verification, err := srv.verificationRepo.FindByID(ctx, verificationID)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationNotFound) {
			return nil, domainerrors.ErrVerificationNotFound.WrapMessage("unknown verification")
		}

		return nil, errors.Wrap(err, "failed to load verification")
	}
	if verification.UserID != userID {
		return nil, domainerrors.ErrForbidden.WrapMessage("verification belongs to another user")
	}

	return verification, nil
}

// issue signs and persists a new pass token for a passed verification.
func (srv *credentialService) issue(ctx context.Context, verification *entity.Verification) (*usecase.CredentialOutput, error) {
	if !verification.Passed {
		return nil, domainerrors.ErrNotEligible.WrapMessage("combined verdict did not pass")
	}

	token, expiresAt, err := srv.tokenService.GeneratePassToken(verification.UserID, verification.ID, verification.FanScore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign pass token")
	}

	if err := srv.verificationRepo.UpdatePassToken(ctx, verification.ID, token, expiresAt); err != nil {
		srv.log(ctx).Error("Failed to store pass token", slog.Any("verificationID", verification.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store pass token")
	}

	verification.PassToken = &token
	verification.TokenExpiresAt = &expiresAt

	srv.log(ctx).Info("Pass credential issued",
		slog.Any("userID", verification.UserID),
		slog.Any("verificationID", verification.ID),
		slog.Time("expiresAt", expiresAt),
	)

	return &usecase.CredentialOutput{
		VerificationID: verification.ID,
		PassToken:      token,
		ExpiresAt:      expiresAt,
	}, nil
}
