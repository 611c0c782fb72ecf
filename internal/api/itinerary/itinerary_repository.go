package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/tripnorth/tripnorth/internal/api/city"
	"github.com/tripnorth/tripnorth/internal/types"
)

var _ Repository = (*InMemoryItineraryRepository)(nil)

// Repository holds pre-authored day/activity records per city and assembles
// them into complete itineraries. Writes only happen during seeding.
type Repository interface {
	GetAttractionByID(ctx context.Context, id int) (*types.Attraction, error)
	GetAttractionsByCityID(ctx context.Context, cityID int) ([]types.Attraction, error)
	GetDayHeadersByCityID(ctx context.Context, cityID int) ([]types.DayHeader, error)
	GetItineraryItemsByCityAndDay(ctx context.Context, cityID, dayNumber int) ([]types.ItineraryItem, error)
	CreateAttraction(ctx context.Context, attraction types.InsertAttraction) (types.Attraction, error)
	CreateDayHeader(ctx context.Context, header types.InsertDayHeader) (types.DayHeader, error)
	CreateItineraryItem(ctx context.Context, item types.InsertItineraryItem) (types.ItineraryItem, error)

	// GetItinerary assembles day headers, items and attractions for days
	// 1..days. Days without a header are silently skipped, so the result
	// may have fewer days than requested. Returns ErrItineraryNotFound
	// when the city is unknown or no day could be assembled.
	GetItinerary(ctx context.Context, citySlug string, days int) (*types.CompleteItinerary, error)
}

// InMemoryItineraryRepository stores every entity in an id-indexed map with
// an explicit next-id counter per entity type. The city catalog is consulted
// for slug resolution; attraction references are one-way lookup keys.
type InMemoryItineraryRepository struct {
	logger   *slog.Logger
	cityRepo city.Repository

	mu              sync.RWMutex
	attractions     map[int]types.Attraction
	dayHeaders      map[int]types.DayHeader
	itineraryItems  map[int]types.ItineraryItem
	nextAttraction  int
	nextDayHeader   int
	nextItineraryID int
}

func NewItineraryRepository(cityRepo city.Repository, logger *slog.Logger) *InMemoryItineraryRepository {
	return &InMemoryItineraryRepository{
		logger:          logger,
		cityRepo:        cityRepo,
		attractions:     make(map[int]types.Attraction),
		dayHeaders:      make(map[int]types.DayHeader),
		itineraryItems:  make(map[int]types.ItineraryItem),
		nextAttraction:  1,
		nextDayHeader:   1,
		nextItineraryID: 1,
	}
}

func (r *InMemoryItineraryRepository) GetAttractionByID(ctx context.Context, id int) (*types.Attraction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.attractions[id]
	if !ok {
		return nil, fmt.Errorf("attraction %d: %w", id, types.ErrItineraryNotFound)
	}
	return &a, nil
}

func (r *InMemoryItineraryRepository) GetAttractionsByCityID(ctx context.Context, cityID int) ([]types.Attraction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var attractions []types.Attraction
	for _, a := range r.attractions {
		if a.CityID == cityID {
			attractions = append(attractions, a)
		}
	}
	sort.Slice(attractions, func(i, j int) bool { return attractions[i].ID < attractions[j].ID })
	return attractions, nil
}

func (r *InMemoryItineraryRepository) GetDayHeadersByCityID(ctx context.Context, cityID int) ([]types.DayHeader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var headers []types.DayHeader
	for _, h := range r.dayHeaders {
		if h.CityID == cityID {
			headers = append(headers, h)
		}
	}
	sort.Slice(headers, func(i, j int) bool { return headers[i].DayNumber < headers[j].DayNumber })
	return headers, nil
}

func (r *InMemoryItineraryRepository) GetItineraryItemsByCityAndDay(ctx context.Context, cityID, dayNumber int) ([]types.ItineraryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []types.ItineraryItem
	for _, item := range r.itineraryItems {
		if item.CityID == cityID && item.DayNumber == dayNumber {
			items = append(items, item)
		}
	}
	// Stable sort keeps insertion order for duplicate sortOrder values,
	// which are tolerated rather than validated.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *InMemoryItineraryRepository) CreateAttraction(ctx context.Context, attraction types.InsertAttraction) (types.Attraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newAttraction := types.Attraction{
		ID:             r.nextAttraction,
		CityID:         attraction.CityID,
		Name:           attraction.Name,
		Description:    attraction.Description,
		Location:       attraction.Location,
		Cost:           attraction.Cost,
		TipTitle:       attraction.TipTitle,
		TipDescription: attraction.TipDescription,
	}
	r.attractions[newAttraction.ID] = newAttraction
	r.nextAttraction++
	return newAttraction, nil
}

func (r *InMemoryItineraryRepository) CreateDayHeader(ctx context.Context, header types.InsertDayHeader) (types.DayHeader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newHeader := types.DayHeader{
		ID:        r.nextDayHeader,
		CityID:    header.CityID,
		DayNumber: header.DayNumber,
		Title:     header.Title,
	}
	r.dayHeaders[newHeader.ID] = newHeader
	r.nextDayHeader++
	return newHeader, nil
}

func (r *InMemoryItineraryRepository) CreateItineraryItem(ctx context.Context, item types.InsertItineraryItem) (types.ItineraryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newItem := types.ItineraryItem{
		ID:           r.nextItineraryID,
		CityID:       item.CityID,
		AttractionID: item.AttractionID,
		DayNumber:    item.DayNumber,
		StartTime:    item.StartTime,
		EndTime:      item.EndTime,
		Duration:     item.Duration,
		Title:        item.Title,
		SortOrder:    item.SortOrder,
	}
	r.itineraryItems[newItem.ID] = newItem
	r.nextItineraryID++
	return newItem, nil
}

func (r *InMemoryItineraryRepository) GetItinerary(ctx context.Context, citySlug string, days int) (*types.CompleteItinerary, error) {
	c, err := r.cityRepo.GetCityBySlug(ctx, citySlug)
	if err != nil {
		if errors.Is(err, types.ErrCityNotFound) {
			return nil, fmt.Errorf("no stored itinerary for %q: %w", citySlug, types.ErrItineraryNotFound)
		}
		return nil, err
	}

	headers, err := r.GetDayHeadersByCityID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	itineraryDays := make([]types.ItineraryDay, 0, days)
	for dayNumber := 1; dayNumber <= days; dayNumber++ {
		var header *types.DayHeader
		for i := range headers {
			if headers[i].DayNumber == dayNumber {
				header = &headers[i]
				break
			}
		}
		if header == nil {
			continue
		}

		items, err := r.GetItineraryItemsByCityAndDay(ctx, c.ID, dayNumber)
		if err != nil {
			return nil, err
		}

		activities := make([]types.ItineraryActivity, 0, len(items))
		for _, item := range items {
			attraction, err := r.GetAttractionByID(ctx, item.AttractionID)
			if err != nil {
				// Dangling attraction reference; skip the item.
				continue
			}
			activities = append(activities, types.ItineraryActivity{
				ID:             item.ID,
				StartTime:      item.StartTime,
				EndTime:        item.EndTime,
				Duration:       item.Duration,
				Title:          item.Title,
				Description:    attraction.Description,
				Location:       attraction.Location,
				Cost:           attraction.Cost,
				TipTitle:       attraction.TipTitle,
				TipDescription: attraction.TipDescription,
			})
		}

		itineraryDays = append(itineraryDays, types.ItineraryDay{
			DayNumber:  dayNumber,
			Title:      header.Title,
			Activities: activities,
		})
	}

	if len(itineraryDays) == 0 {
		return nil, fmt.Errorf("no stored itinerary days for %q: %w", citySlug, types.ErrItineraryNotFound)
	}

	return &types.CompleteItinerary{
		City: *c,
		Days: itineraryDays,
	}, nil
}
