// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fangate/internal/delivery/context"
	"fangate/internal/domain/entity"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/domain/scoring"
	"fangate/internal/domain/service"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenRefreshWindow is how close to expiry an access token may get before
// the service refreshes it ahead of calling the provider.
const tokenRefreshWindow = 60 * time.Second

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	userRepo         repository.UserRepository
	accountRepo      repository.AccountRepository
	verificationRepo repository.VerificationRepository
	provider         service.StreamingProvider
	logger           *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	AccountRepo      repository.AccountRepository
	VerificationRepo repository.VerificationRepository
	Provider         service.StreamingProvider
	Logger           *slog.Logger
}

// NewVerificationService is the constructor for verificationService. It receives all dependencies as interfaces.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		userRepo:         params.UserRepo,
		accountRepo:      params.AccountRepo,
		verificationRepo: params.VerificationRepo,
		provider:         params.Provider,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify fetches the user's listening snapshot, scores it and records a new verification.
func (srv *verificationService) Verify(ctx context.Context, userID uuid.UUID) (*usecase.VerifyOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("unknown user")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	account, err := srv.accountRepo.FindByUserAndProvider(ctx, userID, entity.ProviderSpotify)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotLinked.WrapMessage("no streaming account linked")
		}

		return nil, errors.Wrap(err, "failed to load provider account")
	}

	snapshot, err := srv.fetchSnapshot(ctx, account)
	if err != nil {
		return nil, err
	}

	// Account age is measured from the user record, not from when the
	// streaming account was linked.
	result := scoring.Score(snapshot, user.CreatedAt, time.Now())

	verification := &entity.Verification{
		UserID:   userID,
		FanScore: result.Total,
	}
	if err := srv.verificationRepo.Create(ctx, verification); err != nil {
		srv.log(ctx).Error("Failed to record verification", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record verification")
	}

	srv.log(ctx).Info("Listening history scored",
		slog.Any("userID", userID),
		slog.Any("verificationID", verification.ID),
		slog.Int("fanScore", result.Total),
		slog.Bool("synthetic", snapshot.Synthetic),
	)

	return &usecase.VerifyOutput{
		VerificationID: verification.ID,
		FanScore:       result.Total,
		CanProceed:     result.Total >= scoring.ProceedThreshold,
		Breakdown:      result.Breakdown,
		Evidence:       result.Evidence,
		Synthetic:      snapshot.Synthetic,
		Notice:         snapshot.Notice,
	}, nil
}

// fetchSnapshot reads the listening snapshot, refreshing the access token
// proactively when it is about to expire and once more reactively if the
// provider still rejects it. A rejection after a fresh token means the
// provider session is gone and the user has to reconnect. A synthetic
// provider ignores tokens, so the refresh cycle is skipped entirely and the
// stored account is never touched.
func (srv *verificationService) fetchSnapshot(ctx context.Context, account *entity.Account) (*entity.Snapshot, error) {
	refreshed := false

	if account.TokenExpiresWithin(tokenRefreshWindow, time.Now()) && !srv.provider.Synthetic() {
		if err := srv.refreshTokens(ctx, account); err != nil {
			return nil, err
		}
		refreshed = true
	}

	snapshot, err := srv.provider.FetchSnapshot(ctx, account.AccessToken)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, service.ErrProviderAuth) {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}
	if refreshed {
		return nil, domainerrors.ErrProviderSessionExpired.WrapMessage("provider rejected a freshly refreshed token")
	}

	// The stored token looked valid but the provider disagreed. Refresh and
	// retry exactly once.
	srv.log(ctx).Info("Access token rejected, refreshing", slog.Any("accountID", account.ID))
	if err := srv.refreshTokens(ctx, account); err != nil {
		return nil, err
	}

	snapshot, err = srv.provider.FetchSnapshot(ctx, account.AccessToken)
	if err != nil {
		if errors.Is(err, service.ErrProviderAuth) {
			return nil, domainerrors.ErrProviderSessionExpired.WrapMessage("provider rejected a freshly refreshed token")
		}

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	return snapshot, nil
}

// refreshTokens exchanges the refresh token and persists the new token set
// on the account, mutating it in place for the caller.
func (srv *verificationService) refreshTokens(ctx context.Context, account *entity.Account) error {
	refresh, err := srv.provider.RefreshAccessToken(ctx, account.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrProviderAuth) {
			return domainerrors.ErrProviderSessionExpired.WrapMessage("refresh token rejected")
		}

		return domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	account.AccessToken = refresh.AccessToken
	account.RefreshToken = refresh.RefreshToken
	account.ExpiresAt = refresh.ExpiresAt

	if err := srv.accountRepo.UpdateTokens(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist refreshed tokens")
	}

	return nil
}
