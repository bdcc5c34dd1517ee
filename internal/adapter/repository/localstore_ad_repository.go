package repository

import (
	"context"
	"sync"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/pkg/errors"
)

const adPlacementsKey = "ad_placements"

type localstoreAdRepository struct {
	store *localstore.Store
	mu    sync.Mutex
}

func NewLocalstoreAdRepository(store *localstore.Store) repository.AdRepository {
	return &localstoreAdRepository{
		store: store,
	}
}

func (r *localstoreAdRepository) GetAll(ctx context.Context) (entity.AdPlacements, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *localstoreAdRepository) Get(ctx context.Context, position string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	placements, err := r.load()
	if err != nil {
		return "", err
	}

	html, ok := placements[position]
	if !ok {
		return "", errors.NotFound("Ad placement", nil)
	}
	return html, nil
}

func (r *localstoreAdRepository) Put(ctx context.Context, position, html string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	placements, err := r.load()
	if err != nil {
		return err
	}

	placements[position] = html
	return r.save(placements)
}

func (r *localstoreAdRepository) Delete(ctx context.Context, position string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	placements, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := placements[position]; !ok {
		return errors.NotFound("Ad placement", nil)
	}

	delete(placements, position)
	return r.save(placements)
}

func (r *localstoreAdRepository) load() (entity.AdPlacements, error) {
	placements := entity.AdPlacements{}
	if err := r.store.Get(adPlacementsKey, &placements); err != nil {
		return nil, errors.Internal("Failed to load ad placements", err)
	}
	return placements, nil
}

func (r *localstoreAdRepository) save(placements entity.AdPlacements) error {
	if err := r.store.Put(adPlacementsKey, placements); err != nil {
		return errors.Internal("Failed to save ad placements", err)
	}
	return nil
}
