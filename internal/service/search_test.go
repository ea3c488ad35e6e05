package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fittrack/fittrack-cli/internal/provider/spoonacular"
	"github.com/fittrack/fittrack-cli/internal/service"
)

type fakeSearcher struct {
	hits  []spoonacular.FoodLookup
	err   error
	calls int
}

func (f *fakeSearcher) SearchFoods(ctx context.Context, query string, limit int) ([]spoonacular.FoodLookup, error) {
	f.calls++
	return f.hits, f.err
}

func TestSearchLocalFoods(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if err := service.EnsureSeedData(s); err != nil {
		t.Fatalf("seed data: %v", err)
	}

	hits := service.SearchLocalFoods(s, "  CHICKEN ")
	if len(hits) != 1 || hits[0].Name != "Chicken breast" {
		t.Fatalf("unexpected local hits %+v", hits)
	}
	if hits := service.SearchLocalFoods(s, "zzz"); len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
	if hits := service.SearchLocalFoods(s, "   "); len(hits) != 0 {
		t.Fatalf("expected no hits for blank query, got %+v", hits)
	}
}

func TestSearchFoodsPrefersLocalCatalog(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if err := service.EnsureSeedData(s); err != nil {
		t.Fatalf("seed data: %v", err)
	}
	searcher := &fakeSearcher{hits: []spoonacular.FoodLookup{{ID: 99001, Name: "chicken thigh"}}}

	hits, err := service.SearchFoods(context.Background(), s, searcher, "chicken", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].Name != "Chicken breast" {
		t.Fatalf("expected the local hit, got %+v", hits)
	}
	if searcher.calls != 0 {
		t.Fatalf("remote searcher must not run on a local hit")
	}
}

func TestSearchFoodsMergesRemoteHits(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if err := service.EnsureSeedData(s); err != nil {
		t.Fatalf("seed data: %v", err)
	}
	searcher := &fakeSearcher{hits: []spoonacular.FoodLookup{
		{ID: 99001, Name: "dragon fruit", Calories: 60, ProteinG: 1.2, CarbsG: 13, FatG: 0.4},
	}}

	hits, err := service.SearchFoods(context.Background(), s, searcher, "dragon fruit", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != 99001 || hits[0].ServingG != 100 {
		t.Fatalf("unexpected remote hits %+v", hits)
	}

	// The hit landed in the catalog: the next search finds it locally.
	local := service.SearchLocalFoods(s, "dragon")
	if len(local) != 1 || local[0].Calories != 60 {
		t.Fatalf("expected remote hit merged into catalog, got %+v", local)
	}

	// Searching again must not duplicate the catalog row.
	if _, err := service.SearchFoods(context.Background(), s, searcher, "dragon fruit", 5); err != nil {
		t.Fatalf("second search: %v", err)
	}
	if local := service.SearchLocalFoods(s, "dragon"); len(local) != 1 {
		t.Fatalf("expected a single catalog row, got %d", len(local))
	}
}

func TestSearchFoodsWithoutSearcher(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if err := service.EnsureSeedData(s); err != nil {
		t.Fatalf("seed data: %v", err)
	}

	hits, err := service.SearchFoods(context.Background(), s, nil, "zzz", 5)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits without a remote searcher, got %+v", hits)
	}

	if _, err := service.SearchFoods(context.Background(), s, nil, "  ", 5); err == nil {
		t.Fatalf("expected error for empty query")
	}
}

func TestSearchFoodsWrapsRemoteError(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	if err := service.EnsureSeedData(s); err != nil {
		t.Fatalf("seed data: %v", err)
	}
	searcher := &fakeSearcher{err: fmt.Errorf("quota exceeded")}

	if _, err := service.SearchFoods(context.Background(), s, searcher, "zzz", 5); err == nil {
		t.Fatalf("expected remote error to surface")
	}
}
