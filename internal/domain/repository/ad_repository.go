package repository

import (
	"context"

	"qrstudio/internal/domain/entity"
)

type AdRepository interface {
	GetAll(ctx context.Context) (entity.AdPlacements, error)
	Get(ctx context.Context, position string) (string, error)
	Put(ctx context.Context, position, html string) error
	Delete(ctx context.Context, position string) error
}
