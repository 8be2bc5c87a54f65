// Package search filters the catalog by a free-text term and structured
// flags, and serves name autocompletion from a Redis sorted set.
package search

import (
	"context"
	"fmt"
	"strings"

	"grillz/catalog"
	"grillz/models"
	"grillz/rdx"

	"github.com/redis/go-redis/v9"
)

const autocompleteKey = "autocomplete:menu"

// Filters narrows a search beyond the text term. Zero values mean "any".
type Filters struct {
	Category   string
	MinPrice   int
	MaxPrice   int
	Spicy      bool
	Vegetarian bool
	Popular    bool
}

// Results is one search response.
type Results struct {
	Items      []models.MenuItem `json:"items"`
	TotalCount int               `json:"totalCount"`
	HasResults bool              `json:"hasResults"`
}

// Query runs term + filter matching over the catalog. A term matches the
// item name, description, or category, case-insensitively.
func Query(term string, f Filters) Results {
	term = strings.ToLower(strings.TrimSpace(term))
	items := []models.MenuItem{}
	for _, it := range catalog.Items() {
		if term != "" && !matchesTerm(it, term) {
			continue
		}
		if !matchesFilters(it, f) {
			continue
		}
		items = append(items, it)
	}
	return Results{Items: items, TotalCount: len(items), HasResults: len(items) > 0}
}

func matchesTerm(it models.MenuItem, term string) bool {
	return strings.Contains(strings.ToLower(it.Name), term) ||
		strings.Contains(strings.ToLower(it.Description), term) ||
		strings.Contains(strings.ToLower(it.Category), term)
}

func matchesFilters(it models.MenuItem, f Filters) bool {
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.MinPrice > 0 && it.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && it.Price > f.MaxPrice {
		return false
	}
	if f.Spicy && !it.IsSpicy {
		return false
	}
	if f.Vegetarian && !it.IsVegetarian {
		return false
	}
	if f.Popular && !it.IsPopular {
		return false
	}
	return true
}

// IndexAutocomplete loads every item name into the autocomplete sorted set.
// Called once at startup; failures are logged by the caller.
func IndexAutocomplete(ctx context.Context) error {
	members := make([]redis.Z, 0)
	for _, it := range catalog.Items() {
		members = append(members, redis.Z{Score: 0, Member: it.Name})
	}
	if err := rdx.Conn.ZAdd(ctx, autocompleteKey, members...).Err(); err != nil {
		return fmt.Errorf("autocomplete index: %w", err)
	}
	return nil
}

// Suggest returns up to limit item names starting with the prefix,
// case-insensitively.
func Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	names, err := rdx.Conn.ZRange(ctx, autocompleteKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, name := range names {
		if prefix == "" || strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
