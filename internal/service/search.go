package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fittrack/fittrack-cli/internal/model"
	"github.com/fittrack/fittrack-cli/internal/provider/spoonacular"
	"github.com/fittrack/fittrack-cli/internal/store"
)

// FoodSearcher is the optional external lookup. Absent (nil) it simply
// disables the remote fallback; the local catalog always works.
type FoodSearcher interface {
	SearchFoods(ctx context.Context, query string, limit int) ([]spoonacular.FoodLookup, error)
}

// SearchLocalFoods is a case-insensitive substring match over the catalog.
func SearchLocalFoods(s *store.Store, query string) []model.Food {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []model.Food
	for _, f := range Foods(s) {
		if strings.Contains(strings.ToLower(f.Name), query) {
			out = append(out, f)
		}
	}
	return out
}

// SearchFoods tries the local catalog first and falls back to the remote
// provider when configured. Remote hits are per-100g records merged into the
// catalog so they can be logged by id later; provider ids never collide with
// seeded ids (the provider's id space starts far above the seeded range).
func SearchFoods(ctx context.Context, s *store.Store, searcher FoodSearcher, query string, limit int) ([]model.Food, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if local := SearchLocalFoods(s, query); len(local) > 0 {
		return local, nil
	}
	if searcher == nil {
		return nil, nil
	}

	hits, err := searcher.SearchFoods(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("food search for %q failed: %w", query, err)
	}

	foods := make([]model.Food, 0, len(hits))
	for _, hit := range hits {
		foods = append(foods, model.Food{
			ID:       hit.ID,
			Name:     hit.Name,
			Calories: hit.Calories,
			ProteinG: hit.ProteinG,
			CarbsG:   hit.CarbsG,
			FatG:     hit.FatG,
			ServingG: 100,
			Image:    hit.ImageURL,
		})
	}
	if len(foods) > 0 {
		if err := mergeFoods(s, foods); err != nil {
			return nil, err
		}
	}
	return foods, nil
}

func mergeFoods(s *store.Store, incoming []model.Food) error {
	catalog := Foods(s)
	known := make(map[int64]bool, len(catalog))
	for _, f := range catalog {
		known[f.ID] = true
	}
	changed := false
	for _, f := range incoming {
		if !known[f.ID] {
			catalog = append(catalog, f)
			known[f.ID] = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return store.Write(s, store.KeyFoodsDB, catalog)
}
