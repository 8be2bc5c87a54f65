package search

import (
	"log"
	"net/http"
	"strconv"

	"grillz/utils"

	"github.com/julienschmidt/httprouter"
)

// SearchMenu handles GET /api/search with query parameters q, category,
// min, max, spicy, vegetarian, popular.
func SearchMenu(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	f := Filters{
		Category:   q.Get("category"),
		Spicy:      q.Get("spicy") == "true",
		Vegetarian: q.Get("vegetarian") == "true",
		Popular:    q.Get("popular") == "true",
	}
	if v := q.Get("min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinPrice = n
		}
	}
	if v := q.Get("max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MaxPrice = n
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, Query(q.Get("q"), f))
}

// SuggestMenu handles GET /api/suggestions?q=prefix.
func SuggestMenu(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	names, err := Suggest(r.Context(), r.URL.Query().Get("q"), 8)
	if err != nil {
		log.Println("Suggest error:", err)
		names = nil
	}
	if names == nil {
		names = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"suggestions": names})
}
