package itinerary

import (
	"context"
	"fmt"

	"github.com/tripnorth/tripnorth/internal/api/city"
	"github.com/tripnorth/tripnorth/internal/types"
)

// Seed loads the curated Canadian dataset into the catalog and itinerary
// repositories. It runs once at startup, before any request traffic.
func Seed(ctx context.Context, cities city.Repository, itineraries Repository) error {
	toronto, err := cities.CreateCity(ctx, types.InsertCity{
		Name:        "Toronto",
		Slug:        "toronto",
		Description: "Explore Canada's largest city with iconic landmarks, cultural diversity, and urban adventures.",
		ImageURL:    "https://images.unsplash.com/photo-1517090504586-fde19ea6066f?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
	})
	if err != nil {
		return fmt.Errorf("failed to seed cities: %w", err)
	}

	vancouver, err := cities.CreateCity(ctx, types.InsertCity{
		Name:        "Vancouver",
		Slug:        "vancouver",
		Description: "Discover the west coast gem with stunning nature, mountains, and ocean all in one breathtaking city.",
		ImageURL:    "https://images.unsplash.com/photo-1560813962-ff3d8fcf59ba?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
	})
	if err != nil {
		return fmt.Errorf("failed to seed cities: %w", err)
	}

	for _, c := range []types.InsertCity{
		{
			Name:        "Montreal",
			Slug:        "montreal",
			Description: "Experience the European charm of Canada with rich history, french culture, and amazing food.",
			ImageURL:    "https://images.unsplash.com/photo-1519178614-68673b201f36?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		},
		{
			Name:        "Quebec City",
			Slug:        "quebec",
			Description: "Step back in time with cobblestone streets, historic architecture, and French heritage.",
			ImageURL:    "https://images.unsplash.com/photo-1557456170-0cf4f4d0d362?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		},
		{
			Name:        "Banff",
			Slug:        "banff",
			Description: "Immerse yourself in the majestic Rocky Mountains with pristine lakes, wildlife, and outdoor activities.",
			ImageURL:    "https://images.unsplash.com/photo-1527153818091-1a9638521e2a?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		},
		{
			Name:        "Halifax",
			Slug:        "halifax",
			Description: "Enjoy maritime charm with coastal views, friendly locals, and fresh seafood in Nova Scotia's capital.",
			ImageURL:    "https://images.unsplash.com/photo-1588732570005-5012ee9c0224?ixlib=rb-1.2.1&auto=format&fit=crop&w=1500&q=80",
		},
	} {
		if _, err := cities.CreateCity(ctx, c); err != nil {
			return fmt.Errorf("failed to seed cities: %w", err)
		}
	}

	// Toronto attractions
	var seedErr error
	createAttraction := func(a types.InsertAttraction) types.Attraction {
		created, err := itineraries.CreateAttraction(ctx, a)
		if err != nil && seedErr == nil {
			seedErr = err
		}
		return created
	}

	cnTower := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "CN Tower Experience",
		Description:    "Start your Toronto adventure with spectacular views from one of the world's tallest free-standing structures. Take the glass elevator to the observation deck and walk on the glass floor if you dare!",
		Location:       "290 Bremner Blvd",
		Cost:           "$40 CAD per person",
		TipTitle:       "Traveler Tip",
		TipDescription: "Purchase tickets online in advance to avoid long lines. For the best experience, try to visit early in the morning to avoid crowds.",
	})

	ripleysAquarium := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "Ripley's Aquarium of Canada",
		Description:    "Located at the base of the CN Tower, this aquarium features a moving walkway through an underwater tunnel, where you can observe sharks, rays, and colorful fish swimming overhead.",
		Location:       "288 Bremner Blvd",
		Cost:           "$35 CAD per person",
		TipTitle:       "Traveler Tip",
		TipDescription: "Check the feeding schedule upon arrival to catch these exciting events. The Dangerous Lagoon tunnel is a must-see attraction!",
	})

	rom := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "Royal Ontario Museum",
		Description:    "Explore Canada's largest museum of world cultures and natural history. The ROM features extensive galleries of art, archaeology and natural science from around the world and across the ages.",
		Location:       "100 Queen's Park",
		Cost:           "$23 CAD per person",
		TipTitle:       "Traveler Tip",
		TipDescription: "Don't miss the dinosaur exhibit and the crystal architecture of the Michael Lee-Chin Crystal. On Wednesdays, admission is discounted during the last hour before closing.",
	})

	distilleryDistrict := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "Distillery District & Dinner",
		Description:    "End your day at this historic and pedestrian-only village set in beautifully restored Victorian industrial buildings. Enjoy boutique shops, art galleries, and dine at one of the many restaurants.",
		Location:       "55 Mill St",
		Cost:           "$30-50 CAD for dinner",
		TipTitle:       "Traveler Tip",
		TipDescription: "Try the Mill Street Brewery for local craft beers or El Catrin for excellent Mexican food with a beautiful patio during summer months.",
	})

	torontoIslands := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "Toronto Islands Day Trip",
		Description:    "Take the ferry to the Toronto Islands for a day of relaxation away from the city bustle. Enjoy beaches, picnic areas, walking trails, and fantastic skyline views.",
		Location:       "Jack Layton Ferry Terminal",
		Cost:           "$8.50 CAD round trip",
		TipTitle:       "Traveler Tip",
		TipDescription: "Bring a picnic lunch and plenty of water. Rent bikes on the island to explore more efficiently.",
	})

	kensingtonMarket := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "Kensington Market & Chinatown",
		Description:    "Explore these vibrant multicultural neighborhoods with their unique shops, international cuisine, and street art.",
		Location:       "Kensington Ave & Spadina Ave",
		Cost:           "Free (shopping/food extra)",
		TipTitle:       "Traveler Tip",
		TipDescription: "Visit on the last Sunday of the month in summer when the streets are closed to vehicles for Pedestrian Sundays.",
	})

	casaLoma := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "Casa Loma",
		Description:    "Explore this Gothic Revival castle and gardens in midtown Toronto, complete with towers, secret passages, and elegant rooms.",
		Location:       "1 Austin Terrace",
		Cost:           "$30 CAD per person",
		TipTitle:       "Traveler Tip",
		TipDescription: "Don't miss the stunning views of the city from the towers and the beautiful gardens during summer.",
	})

	highPark := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "High Park Exploration",
		Description:    "Toronto's largest public park features hiking trails, sports facilities, a zoo, playgrounds, and beautiful cherry blossoms in spring.",
		Location:       "1873 Bloor St W",
		Cost:           "Free",
		TipTitle:       "Traveler Tip",
		TipDescription: "Visit in late April or early May to see the famous cherry blossoms, but get there early as it gets very crowded.",
	})

	stLawrenceMarket := createAttraction(types.InsertAttraction{
		CityID:         toronto.ID,
		Name:           "St. Lawrence Market",
		Description:    "One of the world's great food markets, featuring over 120 vendors selling fresh food, prepared foods, and unique non-food items.",
		Location:       "93 Front St E",
		Cost:           "Free (food costs extra)",
		TipTitle:       "Traveler Tip",
		TipDescription: "Try the peameal bacon sandwich at Carousel Bakery, a Toronto specialty. The market is closed on Mondays and Sundays.",
	})

	// Toronto day headers
	torontoDayTitles := map[int]string{
		1: "Exploring Downtown Toronto",
		2: "Nature & Island Adventure",
		3: "Cultural Exploration",
		4: "Historic Toronto",
		5: "Artistic Adventures",
		6: "Neighborhood Discoveries",
		7: "Relaxation & Recreation",
	}
	for day := 1; day <= 7; day++ {
		if _, err := itineraries.CreateDayHeader(ctx, types.InsertDayHeader{
			CityID:    toronto.ID,
			DayNumber: day,
			Title:     torontoDayTitles[day],
		}); err != nil {
			return fmt.Errorf("failed to seed day headers: %w", err)
		}
	}

	torontoItems := []types.InsertItineraryItem{
		{CityID: toronto.ID, AttractionID: cnTower.ID, DayNumber: 1, StartTime: "9:00 AM", EndTime: "11:00 AM", Duration: "2 hours", Title: "CN Tower Experience", SortOrder: 1},
		{CityID: toronto.ID, AttractionID: ripleysAquarium.ID, DayNumber: 1, StartTime: "11:30 AM", EndTime: "1:30 PM", Duration: "2 hours", Title: "Ripley's Aquarium of Canada", SortOrder: 2},
		{CityID: toronto.ID, AttractionID: rom.ID, DayNumber: 1, StartTime: "2:00 PM", EndTime: "5:00 PM", Duration: "3 hours", Title: "Royal Ontario Museum", SortOrder: 3},
		{CityID: toronto.ID, AttractionID: distilleryDistrict.ID, DayNumber: 1, StartTime: "6:00 PM", EndTime: "9:00 PM", Duration: "3 hours", Title: "Distillery District & Dinner", SortOrder: 4},
		{CityID: toronto.ID, AttractionID: torontoIslands.ID, DayNumber: 2, StartTime: "10:00 AM", EndTime: "3:00 PM", Duration: "5 hours", Title: "Toronto Islands Day Trip", SortOrder: 1},
		{CityID: toronto.ID, AttractionID: distilleryDistrict.ID, DayNumber: 2, StartTime: "4:00 PM", EndTime: "7:00 PM", Duration: "3 hours", Title: "Shopping & Dinner at Eaton Centre", SortOrder: 2},
		{CityID: toronto.ID, AttractionID: kensingtonMarket.ID, DayNumber: 3, StartTime: "9:00 AM", EndTime: "11:00 AM", Duration: "2 hours", Title: "Kensington Market & Chinatown", SortOrder: 1},
		{CityID: toronto.ID, AttractionID: casaLoma.ID, DayNumber: 3, StartTime: "12:00 PM", EndTime: "3:00 PM", Duration: "3 hours", Title: "Casa Loma", SortOrder: 2},
		{CityID: toronto.ID, AttractionID: stLawrenceMarket.ID, DayNumber: 4, StartTime: "9:00 AM", EndTime: "11:00 AM", Duration: "2 hours", Title: "St. Lawrence Market", SortOrder: 1},
		{CityID: toronto.ID, AttractionID: highPark.ID, DayNumber: 4, StartTime: "1:00 PM", EndTime: "5:00 PM", Duration: "4 hours", Title: "High Park Exploration", SortOrder: 2},
	}
	for _, item := range torontoItems {
		if _, err := itineraries.CreateItineraryItem(ctx, item); err != nil {
			return fmt.Errorf("failed to seed itinerary items: %w", err)
		}
	}

	// Vancouver
	stanleyPark := createAttraction(types.InsertAttraction{
		CityID:         vancouver.ID,
		Name:           "Stanley Park Seawall",
		Description:    "Enjoy a scenic walk, bike ride, or rollerblade along the 8.8km seawall that surrounds Vancouver's urban park with ocean views.",
		Location:       "Stanley Park",
		Cost:           "Free",
		TipTitle:       "Traveler Tip",
		TipDescription: "Rent a bike at the park entrance and plan for 2-3 hours to complete the full loop.",
	})
	if seedErr != nil {
		return fmt.Errorf("failed to seed attractions: %w", seedErr)
	}

	if _, err := itineraries.CreateDayHeader(ctx, types.InsertDayHeader{
		CityID:    vancouver.ID,
		DayNumber: 1,
		Title:     "Vancouver's Natural Beauty",
	}); err != nil {
		return fmt.Errorf("failed to seed day headers: %w", err)
	}

	if _, err := itineraries.CreateItineraryItem(ctx, types.InsertItineraryItem{
		CityID:       vancouver.ID,
		AttractionID: stanleyPark.ID,
		DayNumber:    1,
		StartTime:    "9:00 AM",
		EndTime:      "12:00 PM",
		Duration:     "3 hours",
		Title:        "Stanley Park Exploration",
		SortOrder:    1,
	}); err != nil {
		return fmt.Errorf("failed to seed itinerary items: %w", err)
	}

	return nil
}
