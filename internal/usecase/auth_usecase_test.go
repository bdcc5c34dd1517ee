package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrstudio/internal/adapter/repository"
	"qrstudio/internal/domain/entity"
	domainrepo "qrstudio/internal/domain/repository"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/pkg/errors"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, domainrepo.AuthRepository) {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	authRepo := repository.NewLocalstoreAuthRepository(store)
	uc := NewAuthUseCase(authRepo, 30*time.Minute)

	require.NoError(t, uc.EnsureCredentials(context.Background(), "admin", "correct-horse"))
	return uc, authRepo
}

func TestLoginSuccess(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "ua-1", session.Fingerprint)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, err := uc.Login(context.Background(), "admin", "nope", "ua-1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginWrongUsernameSameError(t *testing.T) {
	uc, _ := newAuthUseCase(t)

	_, badUser := uc.Login(context.Background(), "root", "correct-horse", "ua-1")
	_, badPass := uc.Login(context.Background(), "admin", "nope", "ua-1")

	require.Error(t, badUser)
	require.Error(t, badPass)
	assert.Equal(t, badUser.Error(), badPass.Error())
}

func TestLockoutAfterThreeFailures(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Login(ctx, "admin", "nope", "ua-1")
		assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	}

	// The correct password is refused too while the lockout is active.
	_, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}

func TestLockoutExpiryResetsCounter(t *testing.T) {
	uc, authRepo := newAuthUseCase(t)
	ctx := context.Background()

	lockedAt := time.Now().Add(-6 * time.Minute)
	require.NoError(t, authRepo.SaveAttempts(ctx, &entity.LoginAttempts{
		Count:    3,
		LockedAt: &lockedAt,
	}))

	session, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	attempts, err := authRepo.GetAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, attempts.Count)
	assert.Nil(t, attempts.LockedAt)
}

func TestValidateSession(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	require.NoError(t, err)

	got, err := uc.Validate(ctx, session.Token, "ua-1")
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)

	_, err = uc.Validate(ctx, "not-the-token", "ua-1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

// failingSessionRepo wraps a real repository but refuses to delete the
// session, standing in for a store write failure.
type failingSessionRepo struct {
	domainrepo.AuthRepository
}

func (r *failingSessionRepo) DeleteSession(ctx context.Context) error {
	return errors.Internal("Failed to delete admin session", nil)
}

func TestValidateStillRejectsWhenSessionCleanupFails(t *testing.T) {
	ctx := context.Background()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	base := repository.NewLocalstoreAuthRepository(store)
	uc := NewAuthUseCase(&failingSessionRepo{AuthRepository: base}, 30*time.Minute)
	require.NoError(t, uc.EnsureCredentials(ctx, "admin", "correct-horse"))

	require.NoError(t, base.SaveSession(ctx, &entity.AdminSession{
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err = uc.Validate(ctx, "stale", "ua-1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	// The stale record survives the failed delete but stays unusable.
	stored, err := base.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	_, err = uc.Validate(ctx, stored.Token, "ua-1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestValidateExpiredSessionIsDropped(t *testing.T) {
	uc, authRepo := newAuthUseCase(t)
	ctx := context.Background()

	require.NoError(t, authRepo.SaveSession(ctx, &entity.AdminSession{
		Token:       "stale",
		Fingerprint: "ua-1",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}))

	_, err := uc.Validate(ctx, "stale", "ua-1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	stored, err := authRepo.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestValidateFingerprintMismatchDropsSession(t *testing.T) {
	uc, authRepo := newAuthUseCase(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	require.NoError(t, err)

	_, err = uc.Validate(ctx, session.Token, "ua-2")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	stored, err := authRepo.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestValidateEmptyFingerprintOnSessionSkipsCheck(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, "admin", "correct-horse", "")
	require.NoError(t, err)

	_, err = uc.Validate(ctx, session.Token, "anything")
	assert.NoError(t, err)
}

func TestLogout(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	session, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))

	_, err = uc.Validate(ctx, session.Token, "ua-1")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestEnsureCredentialsKeepsExisting(t *testing.T) {
	uc, _ := newAuthUseCase(t)
	ctx := context.Background()

	// A second seed with a different password must not overwrite.
	require.NoError(t, uc.EnsureCredentials(ctx, "admin", "different"))

	_, err := uc.Login(ctx, "admin", "correct-horse", "ua-1")
	assert.NoError(t, err)
}
