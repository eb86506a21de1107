package impl

import (
	"context"
	"log/slog"
	"strings"

	"fangate/config"
	deliverycontext "fangate/internal/delivery/context"
	domainerrors "fangate/internal/domain/errors"
	"fangate/internal/domain/repository"
	"fangate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo         repository.UserRepository
	verificationRepo repository.VerificationRepository
	attemptRepo      repository.QuizAttemptRepository
	adminEmail       string
	logger           *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	VerificationRepo repository.VerificationRepository
	AttemptRepo      repository.QuizAttemptRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAdminService is the constructor for adminService. It receives all dependencies as interfaces.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	adminEmail := ""
	if params.Config != nil && params.Config.Admin != nil {
		adminEmail = params.Config.Admin.Email
	}

	return &adminService{
		userRepo:         params.UserRepo,
		verificationRepo: params.VerificationRepo,
		attemptRepo:      params.AttemptRepo,
		adminEmail:       adminEmail,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every user with their latest verification and quiz
// attempt. Access is restricted to the single configured operator email; an
// unset email locks the surface entirely.
func (srv *adminService) ListUsers(ctx context.Context, requesterEmail string) ([]*usecase.AdminUserRow, error) {
	if srv.adminEmail == "" || !strings.EqualFold(requesterEmail, srv.adminEmail) {
		srv.log(ctx).Warn("Admin access denied", slog.String("requester", requesterEmail))

		return nil, domainerrors.ErrForbidden.WrapMessage("operator access required")
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	userIDs := make([]uuid.UUID, 0, len(users))
	for _, user := range users {
		userIDs = append(userIDs, user.ID)
	}

	latestVerifications, err := srv.verificationRepo.LatestByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest verifications")
	}

	latestAttempts, err := srv.attemptRepo.LatestByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load latest quiz attempts")
	}

	rows := make([]*usecase.AdminUserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, &usecase.AdminUserRow{
			User:               user,
			LatestVerification: latestVerifications[user.ID],
			LatestAttempt:      latestAttempts[user.ID],
		})
	}

	return rows, nil
}
