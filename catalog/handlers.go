package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"grillz/rdx"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
)

// GetCatalog returns the menu grouped by category.
func GetCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}

// GetItems returns the flat item list.
func GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Items())
}

// GetItem returns one item by id, caching the encoded item in Redis.
func GetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itemID := ps.ByName("itemid")
	cacheKey := fmt.Sprintf("menu:item:%s", itemID)

	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	item, ok := Get(itemID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	if encoded, err := json.Marshal(item); err == nil {
		rdx.RdxSet(cacheKey, string(encoded))
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}
