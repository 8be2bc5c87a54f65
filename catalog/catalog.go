// Package catalog serves the static, read-only menu. The menu ships with
// the binary, is seeded into MongoDB at startup for reporting queries, and
// item reads go through a Redis cache.
package catalog

import (
	"context"
	"log"

	"grillz/db"
	"grillz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var itemIndex map[string]models.MenuItem

func init() {
	itemIndex = make(map[string]models.MenuItem)
	for _, cat := range menuData {
		for _, it := range cat.Items {
			itemIndex[it.ItemID] = it
		}
	}
}

// Categories returns the full menu grouped by category.
func Categories() []models.MenuCategory {
	out := make([]models.MenuCategory, len(menuData))
	copy(out, menuData)
	return out
}

// Items returns every orderable item in display order.
func Items() []models.MenuItem {
	var out []models.MenuItem
	for _, cat := range menuData {
		out = append(out, cat.Items...)
	}
	return out
}

// Get looks up one item by id.
func Get(id string) (models.MenuItem, bool) {
	it, ok := itemIndex[id]
	return it, ok
}

// Seed upserts the menu into MongoDB so ops tooling can query it alongside
// analytics. Failures are logged, not fatal; the in-process catalog is the
// source of truth.
func Seed(ctx context.Context) {
	for _, it := range Items() {
		filter := bson.M{"itemid": it.ItemID}
		update := bson.M{"$set": it}
		opts := options.Update().SetUpsert(true)
		if _, err := db.MenuCollection.UpdateOne(ctx, filter, update, opts); err != nil {
			log.Printf("catalog seed: upsert %s failed: %v", it.ItemID, err)
		}
	}
}
