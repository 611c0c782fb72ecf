package city

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/tripnorth/tripnorth/internal/types"
)

var _ Repository = (*InMemoryCityRepository)(nil)

// Repository is the city catalog contract. Writes only happen during
// seeding, before any request traffic.
type Repository interface {
	GetAllCities(ctx context.Context) ([]types.City, error)
	GetCityByID(ctx context.Context, id int) (*types.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*types.City, error)
	CreateCity(ctx context.Context, city types.InsertCity) (types.City, error)
}

// InMemoryCityRepository keeps the catalog in an id-indexed map with an
// explicit next-id counter.
type InMemoryCityRepository struct {
	logger *slog.Logger

	mu         sync.RWMutex
	cities     map[int]types.City
	nextCityID int
}

func NewCityRepository(logger *slog.Logger) *InMemoryCityRepository {
	return &InMemoryCityRepository{
		logger:     logger,
		cities:     make(map[int]types.City),
		nextCityID: 1,
	}
}

func (r *InMemoryCityRepository) GetAllCities(ctx context.Context) ([]types.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cities := make([]types.City, 0, len(r.cities))
	for _, c := range r.cities {
		cities = append(cities, c)
	}
	// Map iteration order is random; callers expect insertion order.
	sort.Slice(cities, func(i, j int) bool { return cities[i].ID < cities[j].ID })
	return cities, nil
}

func (r *InMemoryCityRepository) GetCityByID(ctx context.Context, id int) (*types.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.cities[id]
	if !ok {
		return nil, types.ErrCityNotFound
	}
	return &c, nil
}

func (r *InMemoryCityRepository) GetCityBySlug(ctx context.Context, slug string) (*types.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cities {
		if c.Slug == slug {
			city := c
			return &city, nil
		}
	}
	return nil, types.ErrCityNotFound
}

func (r *InMemoryCityRepository) CreateCity(ctx context.Context, city types.InsertCity) (types.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newCity := types.City{
		ID:          r.nextCityID,
		Name:        city.Name,
		Slug:        city.Slug,
		Description: city.Description,
		ImageURL:    city.ImageURL,
	}
	r.cities[newCity.ID] = newCity
	r.nextCityID++
	return newCity, nil
}
