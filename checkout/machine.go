// Package checkout drives the linear checkout flow layered on the cart:
// Cart -> Delivery -> Payment -> Review -> Success, with per-step guards,
// always-allowed back navigation, and an atomic order placement.
package checkout

import (
	"errors"
	"strings"
	"sync"
	"time"

	"grillz/cart"
	"grillz/models"
	"grillz/orders"
	"grillz/pricing"
	"grillz/utils"
)

// Step is one checkout state, in forward order.
type Step int

const (
	StepCart Step = iota
	StepDelivery
	StepPayment
	StepReview
	StepSuccess
)

var stepNames = [...]string{"cart", "delivery", "payment", "review", "success"}

func (s Step) String() string {
	if s < StepCart || s > StepSuccess {
		return "unknown"
	}
	return stepNames[s]
}

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrPlacementPending = errors.New("order placement already in progress")
	ErrNotReview        = errors.New("not at the review step")
	ErrAtSuccess        = errors.New("order already placed; close to continue")
)

// FieldErrors maps delivery field names to validation messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	var parts []string
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Machine is one session's checkout flow. All transitions run under one
// lock so no partial placement state is ever observable.
type Machine struct {
	mu     sync.Mutex
	step   Step
	draft  models.CheckoutDraft
	cart   *cart.Store
	orders *orders.Store
	cfg    pricing.Config

	placing    bool
	placeTimer *time.Timer
	prepDelay  time.Duration

	lastOrderID string
	onPlaced    func(models.Order)
}

// NewMachine wires a checkout flow over the session's cart and order
// history. prepDelay simulates kitchen confirmation latency. Build the two
// stores with NewSharedStore over one mutex; placement commits both under
// that session lock.
func NewMachine(c *cart.Store, o *orders.Store, cfg pricing.Config, prepDelay time.Duration) *Machine {
	return &Machine{
		step:      StepCart,
		draft:     models.CheckoutDraft{PaymentMethod: "card"},
		cart:      c,
		orders:    o,
		cfg:       cfg,
		prepDelay: prepDelay,
	}
}

// OnPlaced registers a callback invoked after an order commits. Wire this
// at session setup; the callback runs outside the machine lock.
func (m *Machine) OnPlaced(fn func(models.Order)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPlaced = fn
}

// Step reports the current state.
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Draft returns a copy of the in-progress checkout details.
func (m *Machine) Draft() models.CheckoutDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := m.draft
	return d
}

// LastOrderID is the id of the most recently placed order, for the
// success screen.
func (m *Machine) LastOrderID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastOrderID
}

// Placing reports whether a placement timer is pending.
func (m *Machine) Placing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.placing
}

// SetCustomer updates the delivery details on the draft. Allowed at any
// step; validation happens at the Delivery -> Payment gate.
func (m *Machine) SetCustomer(c models.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Customer = c
}

// SetPaymentMethod selects the payment method. Unknown methods are
// rejected; the draft always has a valid selection.
func (m *Machine) SetPaymentMethod(method string) error {
	switch method {
	case "card", "bank-transfer", "cash":
	default:
		return errors.New("unsupported payment method")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.PaymentMethod = method
	return nil
}

// Next advances one step if the current step's guard passes. The guard
// failing leaves the state unchanged.
func (m *Machine) Next() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.step {
	case StepCart:
		if m.cart.Count() == 0 {
			return ErrEmptyCart
		}
		m.step = StepDelivery
	case StepDelivery:
		if errs := m.validateDelivery(); len(errs) > 0 {
			return errs
		}
		m.step = StepPayment
	case StepPayment:
		// unguarded; the draft always carries a payment selection
		m.step = StepReview
	case StepReview:
		return errors.New("use Submit to place the order")
	case StepSuccess:
		return ErrAtSuccess
	}
	return nil
}

// Back moves one step backward. Always allowed from any non-Cart state and
// never touches draft fields.
func (m *Machine) Back() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.step > StepCart && m.step != StepSuccess {
		m.step--
	}
}

// Close handles the drawer close action. From Cart it just hides the
// drawer; from Delivery/Payment/Review it means "go back one step"; from
// Success it commits the reset and re-enters Cart. A pending placement is
// cancelled so a dismissed checkout never produces a phantom order.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.placing {
		m.cancelPlacementLocked()
	}

	switch m.step {
	case StepCart:
		m.cart.SetOpen(false)
	case StepSuccess:
		m.resetDraftLocked()
		m.step = StepCart
		m.cart.SetOpen(false)
	default:
		m.step--
	}
}

// Submit places the order from the Review step. Placement is asynchronous:
// the order commits after the simulated preparation delay. A second Submit
// while one is pending is rejected, never doubled.
func (m *Machine) Submit() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepReview {
		return ErrNotReview
	}
	if m.placing {
		return ErrPlacementPending
	}
	if m.cart.Count() == 0 {
		return ErrEmptyCart
	}

	m.placing = true
	m.placeTimer = time.AfterFunc(m.prepDelay, m.completePlacement)
	return nil
}

// completePlacement commits the order atomically: snapshot, append to
// history, clear cart, reset draft, enter Success. If the placement was
// cancelled in the meantime, nothing is written. The snapshot, the history
// append, and the cart clear all happen under the shared session lock, so
// a concurrent reader never sees the order in history while the cart still
// holds its lines.
func (m *Machine) completePlacement() {
	m.mu.Lock()
	if !m.placing {
		m.mu.Unlock()
		return
	}
	m.placing = false
	m.placeTimer = nil

	lk := m.cart.SessionLock()
	lk.Lock()
	items := m.cart.SnapshotLocked()
	totals := pricing.Quote(m.cart.LinesLocked(), m.cfg)
	now := time.Now()
	order := models.Order{
		OrderID:       utils.NewOrderID(),
		Date:          now.Format("2006-01-02"),
		Timestamp:     now.UnixMilli(),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		DeliveryFee:   totals.DeliveryFee,
		Total:         totals.Total,
		Status:        models.OrderStatusCompleted,
		Customer:      m.draft.Customer,
		PaymentMethod: m.draft.PaymentMethod,
		DeliveryTime:  m.cfg.EstimatedDelivery,
	}

	m.orders.AddLocked(order)
	m.cart.ClearLocked()
	lk.Unlock()

	m.resetDraftLocked()
	m.lastOrderID = order.OrderID
	m.step = StepSuccess

	fn := m.onPlaced
	m.mu.Unlock()

	if fn != nil {
		fn(order)
	}
}

func (m *Machine) cancelPlacementLocked() {
	m.placing = false
	if m.placeTimer != nil {
		m.placeTimer.Stop()
		m.placeTimer = nil
	}
}

func (m *Machine) resetDraftLocked() {
	m.draft = models.CheckoutDraft{PaymentMethod: "card"}
}

func (m *Machine) validateDelivery() FieldErrors {
	errs := FieldErrors{}
	if utils.IsBlank(m.draft.Customer.Name) {
		errs["name"] = "name is required"
	}
	if utils.IsBlank(m.draft.Customer.Phone) {
		errs["phone"] = "phone is required"
	}
	if utils.IsBlank(m.draft.Customer.Address) {
		errs["address"] = "address is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
