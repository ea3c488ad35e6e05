package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.spoonacular.com"

// FoodLookup is one search hit, nutrition per 100 g.
type FoodLookup struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ImageURL string  `json:"image_url,omitempty"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type searchResponse struct {
	Results []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"results"`
}

type informationResponse struct {
	Image     string `json:"image"`
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	} `json:"nutrition"`
}

// SearchFoods runs an ingredient search followed by one nutrition lookup per
// hit, for amounts of 100 g.
func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]FoodLookup, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing spoonacular API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if limit <= 0 {
		limit = 6
	}

	params := url.Values{}
	params.Set("query", strings.TrimSpace(query))
	params.Set("number", fmt.Sprintf("%d", limit))
	params.Set("apiKey", c.APIKey)
	searchURL := fmt.Sprintf("%s/food/ingredients/search?%s", base, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create spoonacular search request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute spoonacular search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read spoonacular search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("spoonacular search request failed with status %d", resp.StatusCode)
	}
	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode spoonacular search response: %w", err)
	}

	out := make([]FoodLookup, 0, len(parsed.Results))
	for _, hit := range parsed.Results {
		if strings.TrimSpace(hit.Name) == "" {
			continue
		}
		lookup, err := c.foodInformation(ctx, httpClient, base, hit.ID, hit.Name, hit.Image)
		if err != nil {
			// One failed detail fetch does not ruin the whole search.
			continue
		}
		out = append(out, lookup)
	}
	return out, nil
}

func (c *Client) foodInformation(ctx context.Context, httpClient *http.Client, base string, id int64, name, image string) (FoodLookup, error) {
	infoURL := fmt.Sprintf("%s/food/ingredients/%d/information?amount=100&unit=grams&apiKey=%s", base, id, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return FoodLookup{}, fmt.Errorf("create spoonacular info request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return FoodLookup{}, fmt.Errorf("execute spoonacular info request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FoodLookup{}, fmt.Errorf("read spoonacular info response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return FoodLookup{}, fmt.Errorf("spoonacular info request failed with status %d", resp.StatusCode)
	}
	var parsed informationResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return FoodLookup{}, fmt.Errorf("decode spoonacular info response: %w", err)
	}

	nutrient := func(fragment string) float64 {
		for _, n := range parsed.Nutrition.Nutrients {
			if strings.Contains(strings.ToLower(n.Name), fragment) {
				return n.Amount
			}
		}
		return 0
	}

	imageName := parsed.Image
	if imageName == "" {
		imageName = image
	}
	imageURL := ""
	if imageName != "" {
		imageURL = fmt.Sprintf("https://img.spoonacular.com/ingredients_100x100/%s", imageName)
	}

	return FoodLookup{
		ID:       id,
		Name:     name,
		Calories: math.Round(nutrient("calories")),
		ProteinG: roundTo1(nutrient("protein")),
		CarbsG:   roundTo1(nutrient("carbo")),
		FatG:     roundTo1(nutrient("fat")),
		ImageURL: imageURL,
	}, nil
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
