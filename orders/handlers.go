package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"grillz/cart"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
)

// Session bundles what the order handlers need from one session.
type Session struct {
	Orders *Store
	Cart   *cart.Store
}

// Resolver finds the order history session for the request.
type Resolver func(r *http.Request) Session

type Handlers struct {
	Resolve Resolver
}

func NewHandlers(resolve Resolver) *Handlers {
	return &Handlers{Resolve: resolve}
}

// ListOrders returns the history, newest first.
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Resolve(r).Orders.List())
}

// GetOrder returns one past order.
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Resolve(r).Orders.Get(ps.ByName("orderid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// ToggleFavorite flips the favorite flag; absent ids are a silent no-op.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Resolve(r).Orders.ToggleFavorite(ps.ByName("orderid"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "toggled"})
}

// SetRating records a 1-5 rating on a past order.
func (h *Handlers) SetRating(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var payload struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	err := h.Resolve(r).Orders.SetRating(ps.ByName("orderid"), payload.Rating)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "rated"})
}

// Reorder replays a past order's items into the cart.
func (h *Handlers) Reorder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s := h.Resolve(r)
	if err := s.Orders.Reorder(ps.ByName("orderid"), s.Cart); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "reordered", "count": s.Cart.Count()})
}

// RemoveOrder deletes a past order. Support tooling only; the storefront
// UI never exposes it.
func (h *Handlers) RemoveOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Resolve(r).Orders.Remove(ps.ByName("orderid"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "removed"})
}
