package cart

import (
	"encoding/json"
	"log"
	"net/http"

	"grillz/catalog"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
)

// Resolver finds the cart store for the request's session.
type Resolver func(r *http.Request) *Store

// Handlers exposes the cart store over HTTP.
type Handlers struct {
	Cart Resolver
}

func NewHandlers(resolve Resolver) *Handlers {
	return &Handlers{Cart: resolve}
}

type addItemPayload struct {
	ItemID              string   `json:"itemId"`
	Quantity            int      `json:"quantity"`
	Customizations      []string `json:"customizations"`
	SpecialInstructions string   `json:"specialInstructions"`
}

// AddItem validates the item against the catalog and adds it to the cart.
func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload addItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	if payload.Quantity < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	item, ok := catalog.Get(payload.ItemID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown menu item")
		return
	}

	store := h.Cart(r)
	store.AddItem(item, payload.Quantity, payload.Customizations, payload.SpecialInstructions)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"status": "added", "count": store.Count()})
}

// GetCart returns the lines, the drawer flag, and the running totals.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store := h.Cart(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":    store.Lines(),
		"isOpen":   store.IsOpen(),
		"count":    store.Count(),
		"subtotal": store.Subtotal(),
	})
}

// RemoveItem drops a line. Unknown ids are a silent no-op.
func (h *Handlers) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store := h.Cart(r)
	store.RemoveItem(ps.ByName("itemid"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "removed", "count": store.Count()})
}

// SetQuantity sets a line's quantity absolutely; <= 0 removes the line.
func (h *Handlers) SetQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	store := h.Cart(r)
	store.SetQuantity(ps.ByName("itemid"), payload.Quantity)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated", "count": store.Count()})
}

// AdjustQuantity nudges a line's quantity by a delta, floored at 1. The
// drawer's +/- steppers call this.
func (h *Handlers) AdjustQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	store := h.Cart(r)
	store.AdjustQuantity(ps.ByName("itemid"), payload.Delta)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "updated", "count": store.Count()})
}

// ClearCart empties the cart; the drawer flag is untouched.
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Cart(r).Clear()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "cleared"})
}

// ToggleCart flips the drawer visibility. Presentation code calls this for
// the plain "open cart" request; closing mid-checkout goes through the
// checkout close endpoint instead.
func (h *Handlers) ToggleCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	open := h.Cart(r).ToggleOpen()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"isOpen": open})
}
