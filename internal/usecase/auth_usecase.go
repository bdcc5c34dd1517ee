package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/pkg/errors"
	"qrstudio/pkg/logger"
)

const (
	maxLoginAttempts = 3
	lockoutDuration  = 5 * time.Minute
)

type AuthUseCase struct {
	authRepo   repository.AuthRepository
	sessionTTL time.Duration
}

func NewAuthUseCase(authRepo repository.AuthRepository, sessionTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		authRepo:   authRepo,
		sessionTTL: sessionTTL,
	}
}

// EnsureCredentials seeds the operator account on first boot. Existing
// credentials are left alone so a password change survives restarts.
func (uc *AuthUseCase) EnsureCredentials(ctx context.Context, username, password string) error {
	existing, err := uc.authRepo.GetCredentials(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if password == "" {
		return errors.Internal("ADMIN_PASSWORD must be set on first boot", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash admin password", err)
	}

	logger.Info("Seeding admin credentials for %q", username)
	return uc.authRepo.SaveCredentials(ctx, &entity.AdminCredentials{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Login validates the credentials and opens the admin session. While a
// lockout is active every attempt is refused, correct password included.
// Wrong username and wrong password produce the same error so nothing
// leaks about which part was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, username, password, fingerprint string) (*entity.AdminSession, error) {
	attempts, err := uc.authRepo.GetAttempts(ctx)
	if err != nil {
		return nil, err
	}

	if attempts.LockedAt != nil {
		remaining := lockoutDuration - time.Since(*attempts.LockedAt)
		if remaining > 0 {
			minutes := int(remaining.Minutes()) + 1
			return nil, errors.TooManyRequests(fmt.Sprintf("Too many failed attempts, try again in %d minute(s)", minutes))
		}
		// Lockout elapsed; start over.
		attempts = &entity.LoginAttempts{}
		if err := uc.authRepo.ResetAttempts(ctx); err != nil {
			return nil, err
		}
	}

	creds, err := uc.authRepo.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}

	valid := creds != nil &&
		creds.Username == username &&
		bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) == nil

	if !valid {
		attempts.Count++
		if attempts.Count >= maxLoginAttempts {
			now := time.Now()
			attempts.LockedAt = &now
			logger.Warn("Admin login locked out after %d failed attempts", attempts.Count)
		}
		if err := uc.authRepo.SaveAttempts(ctx, attempts); err != nil {
			return nil, err
		}
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	if err := uc.authRepo.ResetAttempts(ctx); err != nil {
		return nil, err
	}

	session := &entity.AdminSession{
		Token:       uuid.New().String(),
		Fingerprint: fingerprint,
		ExpiresAt:   time.Now().Add(uc.sessionTTL),
	}
	if err := uc.authRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Validate checks a presented token against the stored session. Expired or
// fingerprint-mismatched sessions are removed on sight, which is how the
// forced logout is realized without a background timer.
func (uc *AuthUseCase) Validate(ctx context.Context, token, fingerprint string) (*entity.AdminSession, error) {
	session, err := uc.authRepo.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Token != token {
		return nil, errors.Unauthorized("Invalid or expired session", nil)
	}

	if time.Now().After(session.ExpiresAt) {
		if err := uc.authRepo.DeleteSession(ctx); err != nil {
			logger.Error("Failed to drop expired admin session: %v", err)
		}
		return nil, errors.Unauthorized("Invalid or expired session", nil)
	}

	if session.Fingerprint != "" && session.Fingerprint != fingerprint {
		logger.Warn("Admin session fingerprint mismatch, dropping session")
		if err := uc.authRepo.DeleteSession(ctx); err != nil {
			logger.Error("Failed to drop mismatched admin session: %v", err)
		}
		return nil, errors.Unauthorized("Invalid or expired session", nil)
	}

	return session, nil
}

// Logout discards the session record.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.authRepo.DeleteSession(ctx)
}
