package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviebag/internal/config"
	domainUser "moviebag/internal/domain/user"
	"moviebag/internal/logger"
	appErrors "moviebag/pkg/errors"
	"moviebag/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer delivers the password-reset email.
type Mailer interface {
	Send(to, subject, body string) error
}

// Service implements the authentication use cases
type Service struct {
	userRepo domainUser.Repository
	mailer   Mailer
	config   *config.Config
}

// NewService creates a new auth service
func NewService(userRepo domainUser.Repository, mailer Mailer, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		mailer:   mailer,
		config:   cfg,
	}
}

// Signup creates a new credential record and returns its identifier.
// Email uniqueness is left to the store's unique index rather than a
// check-then-insert, which would race under concurrent signups.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (uuid.UUID, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return uuid.Nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrEmailTaken) {
			logger.Warn("Signup attempt with existing email",
				zap.String("email", req.Email),
				zap.String("event", "signup_failed_duplicate_email"),
			)
		}
		return uuid.Nil, err
	}

	logger.Info("User signed up successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("event", "user_signed_up"),
	)

	return user.ID, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password return the same error so the response never
// discloses whether an account exists.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return "", appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_unknown_email"),
			)
			return "", appErrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", user.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return "", appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.config.JWT.Secret, s.config.JWT.ExpiryHours)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "login_success"),
	)

	return token, nil
}

// ForgotPassword issues a fresh reset token and mails it to the account
// owner. An unknown email is a silent no-op; the caller sees the same
// result either way.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrNotFound) {
			logger.Info("Password reset requested for non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "password_reset_unknown_email"),
			)
			return nil
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}

	rawToken, err := utils.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(s.config.Reset.TokenTTLMinutes) * time.Minute)

	// Overwrites any previously issued token: at most one is active.
	if err := s.userRepo.SetResetToken(ctx, user.ID, utils.HashResetToken(rawToken), expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s?token=%s", s.config.Reset.LinkBaseURL, rawToken)
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Reset your password</a></p>"+
			"<p>The link expires in %d minutes. If you did not request this, you can ignore this email.</p>",
		link, s.config.Reset.TokenTTLMinutes,
	)

	if err := s.mailer.Send(user.Email, "Reset your password", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	logger.Info("Password reset token issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt),
		zap.String("event", "password_reset_token_issued"),
	)

	return nil
}

// ResetPassword consumes a reset token and replaces the password hash.
// Wrong, expired and already-consumed tokens all fail the same way.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.userRepo.ConsumePasswordReset(ctx, utils.HashResetToken(req.Token), hashedPassword, time.Now())
	if err != nil {
		if errors.Is(err, domainUser.ErrInvalidResetToken) {
			logger.Warn("Password reset attempt with invalid token",
				zap.String("event", "password_reset_failed_invalid_token"),
			)
		}
		return err
	}

	logger.Info("Password reset successfully",
		zap.String("event", "password_reset_success"),
	)

	return nil
}
