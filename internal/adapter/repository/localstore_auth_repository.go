package repository

import (
	"context"
	"sync"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/pkg/errors"
)

const (
	credentialsKey = "admin_credentials"
	sessionKey     = "admin_session"
	attemptsKey    = "login_attempts"
)

type localstoreAuthRepository struct {
	store *localstore.Store
	mu    sync.Mutex
}

func NewLocalstoreAuthRepository(store *localstore.Store) repository.AuthRepository {
	return &localstoreAuthRepository{
		store: store,
	}
}

func (r *localstoreAuthRepository) GetCredentials(ctx context.Context) (*entity.AdminCredentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var creds *entity.AdminCredentials
	if err := r.store.Get(credentialsKey, &creds); err != nil {
		return nil, errors.Internal("Failed to load admin credentials", err)
	}
	return creds, nil
}

func (r *localstoreAuthRepository) SaveCredentials(ctx context.Context, creds *entity.AdminCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(credentialsKey, creds); err != nil {
		return errors.Internal("Failed to save admin credentials", err)
	}
	return nil
}

func (r *localstoreAuthRepository) GetSession(ctx context.Context) (*entity.AdminSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var session *entity.AdminSession
	if err := r.store.Get(sessionKey, &session); err != nil {
		return nil, errors.Internal("Failed to load admin session", err)
	}
	return session, nil
}

func (r *localstoreAuthRepository) SaveSession(ctx context.Context, session *entity.AdminSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(sessionKey, session); err != nil {
		return errors.Internal("Failed to save admin session", err)
	}
	return nil
}

func (r *localstoreAuthRepository) DeleteSession(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(sessionKey); err != nil {
		return errors.Internal("Failed to delete admin session", err)
	}
	return nil
}

func (r *localstoreAuthRepository) GetAttempts(ctx context.Context) (*entity.LoginAttempts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempts := &entity.LoginAttempts{}
	if err := r.store.Get(attemptsKey, attempts); err != nil {
		return nil, errors.Internal("Failed to load login attempts", err)
	}
	return attempts, nil
}

func (r *localstoreAuthRepository) SaveAttempts(ctx context.Context, attempts *entity.LoginAttempts) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(attemptsKey, attempts); err != nil {
		return errors.Internal("Failed to save login attempts", err)
	}
	return nil
}

func (r *localstoreAuthRepository) ResetAttempts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(attemptsKey); err != nil {
		return errors.Internal("Failed to reset login attempts", err)
	}
	return nil
}
