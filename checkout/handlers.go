package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"grillz/cart"
	"grillz/models"
	"grillz/pricing"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
)

// Session bundles what the checkout handlers need from one session.
type Session struct {
	Machine *Machine
	Cart    *cart.Store
}

// Resolver finds the checkout session for the request.
type Resolver func(r *http.Request) Session

type Handlers struct {
	Resolve Resolver
	Cfg     pricing.Config
}

func NewHandlers(resolve Resolver, cfg pricing.Config) *Handlers {
	return &Handlers{Resolve: resolve, Cfg: cfg}
}

// GetState reports the step, the draft, totals, and the placement flag.
func (h *Handlers) GetState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.Resolve(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"step":        s.Machine.Step().String(),
		"draft":       s.Machine.Draft(),
		"totals":      pricing.Quote(s.Cart.Lines(), h.Cfg),
		"placing":     s.Machine.Placing(),
		"lastOrderId": s.Machine.LastOrderID(),
	})
}

// Next advances the flow one step; guard failures come back as 422 with
// field-level detail when available.
func (h *Handlers) Next(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.Resolve(r)
	if err := s.Machine.Next(); err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"error": "validation failed", "fields": fieldErrs})
			return
		}
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"error": err.Error()})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": s.Machine.Step().String()})
}

// Back steps backward; always succeeds.
func (h *Handlers) Back(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.Resolve(r)
	s.Machine.Back()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": s.Machine.Step().String()})
}

// Close applies the drawer-close semantics for the current step.
func (h *Handlers) Close(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.Resolve(r)
	s.Machine.Close()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"step":   s.Machine.Step().String(),
		"isOpen": s.Cart.IsOpen(),
	})
}

// SetDelivery updates the draft's customer details.
func (h *Handlers) SetDelivery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	s := h.Resolve(r)
	s.Machine.SetCustomer(c)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "saved"})
}

// SetPayment selects the payment method.
func (h *Handlers) SetPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	s := h.Resolve(r)
	if err := s.Machine.SetPaymentMethod(payload.Method); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "saved"})
}

// Submit starts the asynchronous order placement from the Review step.
// Completion is observable via GetState and the notify stream.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := h.Resolve(r)
	if err := s.Machine.Submit(); err != nil {
		switch {
		case errors.Is(err, ErrPlacementPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrNotReview), errors.Is(err, ErrEmptyCart):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.M{"status": "placing"})
}
