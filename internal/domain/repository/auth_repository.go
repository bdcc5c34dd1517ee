package repository

import (
	"context"

	"qrstudio/internal/domain/entity"
)

// AuthRepository persists the operator account, the single admin session
// and the login failure counter.
type AuthRepository interface {
	GetCredentials(ctx context.Context) (*entity.AdminCredentials, error)
	SaveCredentials(ctx context.Context, creds *entity.AdminCredentials) error

	GetSession(ctx context.Context) (*entity.AdminSession, error)
	SaveSession(ctx context.Context, session *entity.AdminSession) error
	DeleteSession(ctx context.Context) error

	GetAttempts(ctx context.Context) (*entity.LoginAttempts, error)
	SaveAttempts(ctx context.Context, attempts *entity.LoginAttempts) error
	ResetAttempts(ctx context.Context) error
}
