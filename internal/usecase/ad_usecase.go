package usecase

import (
	"context"
	"strings"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/pkg/errors"
)

type AdUseCase struct {
	adRepo repository.AdRepository
}

func NewAdUseCase(adRepo repository.AdRepository) *AdUseCase {
	return &AdUseCase{
		adRepo: adRepo,
	}
}

func (uc *AdUseCase) GetAll(ctx context.Context) (entity.AdPlacements, error) {
	return uc.adRepo.GetAll(ctx)
}

func (uc *AdUseCase) Get(ctx context.Context, position string) (string, error) {
	return uc.adRepo.Get(ctx, position)
}

// Put creates or overwrites the slot content. The position key is free
// form; pages render whatever slots exist.
func (uc *AdUseCase) Put(ctx context.Context, position, html string) error {
	position = strings.TrimSpace(position)
	if position == "" {
		return errors.BadRequest("Position is required", nil)
	}
	if strings.TrimSpace(html) == "" {
		return errors.BadRequest("Ad content is required", nil)
	}
	return uc.adRepo.Put(ctx, position, html)
}

func (uc *AdUseCase) Remove(ctx context.Context, position string) error {
	return uc.adRepo.Delete(ctx, position)
}
