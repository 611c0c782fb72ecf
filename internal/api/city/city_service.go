package city

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tripnorth/tripnorth/config"
	generativeAI "github.com/tripnorth/tripnorth/internal/api/generative_ai"
	"github.com/tripnorth/tripnorth/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for catalog operations.
type Service interface {
	GetAllCities(ctx context.Context) ([]types.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*types.City, error)
	// SearchCities filters the catalog against a free-text query. An empty
	// or whitespace-only query returns the full list unchanged. The LLM
	// match is best-effort; a deterministic substring match covers every
	// failure mode, so SearchCities never fails because of the provider.
	SearchCities(ctx context.Context, query string) ([]types.City, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger    *slog.Logger
	repo      Repository
	aiClient  generativeAI.CompletionClient
	searchCfg config.StageConfig
}

func NewCityService(repo Repository, aiClient generativeAI.CompletionClient, searchCfg config.StageConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		repo:      repo,
		aiClient:  aiClient,
		searchCfg: searchCfg,
	}
}

func (s *ServiceImpl) GetAllCities(ctx context.Context) ([]types.City, error) {
	return s.repo.GetAllCities(ctx)
}

func (s *ServiceImpl) GetCityBySlug(ctx context.Context, slug string) (*types.City, error) {
	return s.repo.GetCityBySlug(ctx, slug)
}

func (s *ServiceImpl) SearchCities(ctx context.Context, query string) ([]types.City, error) {
	l := s.logger.With(slog.String("method", "SearchCities"), slog.String("query", query))

	cities, err := s.repo.GetAllCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load city list: %w", err)
	}

	if strings.TrimSpace(query) == "" {
		return cities, nil
	}

	matches, err := s.aiSearch(ctx, query, cities)
	if err != nil {
		l.WarnContext(ctx, "AI city search failed, using substring match", slog.Any("error", err))
		return substringSearch(query, cities), nil
	}
	if len(matches) == 0 {
		l.InfoContext(ctx, "AI city search returned no matches, using substring match")
		return substringSearch(query, cities), nil
	}
	return matches, nil
}

// aiSearch asks the model to act as a matcher over the full serialized city
// list and return matching slugs.
func (s *ServiceImpl) aiSearch(ctx context.Context, query string, cities []types.City) ([]types.City, error) {
	serialized, err := json.MarshalIndent(cities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize city list: %w", err)
	}

	response, err := s.aiClient.Complete(ctx, generativeAI.CompletionRequest{
		UserPrompt:  getCitySearchPrompt(query, string(serialized)),
		Temperature: s.searchCfg.Temperature,
		MaxTokens:   s.searchCfg.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}

	slugs, err := parseSlugArray(response)
	if err != nil {
		return nil, err
	}

	slugSet := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		slugSet[slug] = true
	}

	var matches []types.City
	for _, c := range cities {
		if slugSet[c.Slug] {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// parseSlugArray accepts either {"cities": ["toronto"]} or a bare
// ["toronto"] response.
func parseSlugArray(jsonStr string) ([]string, error) {
	cleaned := cleanJSONResponse(jsonStr)

	var wrapped struct {
		Cities []string `json:"cities"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && len(wrapped.Cities) > 0 {
		return wrapped.Cities, nil
	}

	var bare []string
	if err := json.Unmarshal([]byte(cleaned), &bare); err != nil {
		return nil, fmt.Errorf("failed to parse slug array from search response: %w", err)
	}
	return bare, nil
}

func cleanJSONResponse(txt string) string {
	cleaned := strings.TrimSpace(txt)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// substringSearch is the deterministic fallback. It is total: it never
// fails and always returns a (possibly empty) subset of the input.
func substringSearch(query string, cities []types.City) []types.City {
	q := strings.ToLower(query)
	matches := make([]types.City, 0)
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Description), q) {
			matches = append(matches, c)
		}
	}
	return matches
}
