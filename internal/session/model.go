package session

import (
	"errors"
	"sync"
	"time"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/cart"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/menu"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/messaging"
)

var (
	ErrNoOpenSelection = errors.New("no item selection is open")
)

// Selection is the open item-detail state. At most one selection is open per
// session; opening another item replaces it.
type Selection struct {
	Item     menu.Item
	SKU      string
	Quantity int
}

// Session holds everything the widget kept as page globals: the fetched menu,
// the delivery areas, the user profile and the cart. It lives in memory only
// and is discarded after a successful order or when the client starts over.
//
// The logical actor is a single user acting serially, but the HTTP server is
// concurrent, so mutable state is guarded by a mutex.
type Session struct {
	ID        string
	Profile   messaging.Profile
	Menu      []menu.Item
	Areas     delivery.AreaSet
	CreatedAt time.Time

	mu         sync.Mutex
	cart       cart.Cart
	selection  *Selection
	submitting bool
}

// View is the session state as rendered to the client.
type View struct {
	ID            string            `json:"sessionId"`
	Profile       messaging.Profile `json:"profile"`
	Menu          []menu.Item       `json:"menu"`
	DeliveryAreas delivery.AreaSet  `json:"deliveryAreas"`
	Cart          []cart.Line       `json:"cart"`
	ItemCount     int               `json:"itemCount"`
	TotalPrice    int               `json:"totalPrice"`
	Selection     *SelectionView    `json:"selection,omitempty"`
}

type SelectionView struct {
	Item     string        `json:"item"`
	Options  []menu.Option `json:"options"`
	SKU      string        `json:"sku,omitempty"`
	Quantity int           `json:"quantity"`
}

func (s *Session) State() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, total := s.cart.Totals()
	v := View{
		ID:            s.ID,
		Profile:       s.Profile,
		Menu:          s.Menu,
		DeliveryAreas: s.Areas,
		Cart:          s.cart.Lines(),
		ItemCount:     count,
		TotalPrice:    total,
	}
	if s.selection != nil {
		v.Selection = &SelectionView{
			Item:     s.selection.Item.Name,
			Options:  menu.SelectableOptions(s.selection.Item),
			SKU:      s.selection.SKU,
			Quantity: s.selection.Quantity,
		}
	}
	return v
}

// OpenSelection opens the item-detail state for the named item. Any selection
// already open is replaced, so only one is ever open. The first selectable
// option is pre-chosen and the quantity starts at 1, matching the detail
// dialog defaults.
func (s *Session) OpenSelection(itemName string) error {
	item, ok := menu.FindItem(s.Menu, itemName)
	if !ok {
		return menu.ErrItemNotFound
	}

	sel := &Selection{Item: item, Quantity: 1}
	if opts := menu.SelectableOptions(item); len(opts) > 0 {
		sel.SKU = opts[0].SKU
	}

	s.mu.Lock()
	s.selection = sel
	s.mu.Unlock()
	return nil
}

// ChooseOption switches the open selection to the given SKU.
func (s *Session) ChooseOption(sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == nil {
		return ErrNoOpenSelection
	}
	for _, opt := range menu.SelectableOptions(s.selection.Item) {
		if opt.SKU == sku {
			s.selection.SKU = sku
			return nil
		}
	}
	return menu.ErrUnknownOption
}

// StepQuantity moves the open selection's quantity by delta. Decrements are
// clamped at 1; increments are unbounded. No open selection is a no-op.
func (s *Session) StepQuantity(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == nil {
		return
	}
	s.selection.Quantity += delta
	if s.selection.Quantity < 1 {
		s.selection.Quantity = 1
	}
}

// ConfirmSelection resolves the open selection into a cart line, merges it
// into the cart and closes the selection. Confirming with no chosen option is
// a validation error, not a crash.
func (s *Session) ConfirmSelection() (cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == nil {
		return cart.Line{}, ErrNoOpenSelection
	}

	line, err := menu.ResolveSelection(s.selection.Item, s.selection.SKU, s.selection.Quantity)
	if err != nil {
		return cart.Line{}, err
	}
	if err := s.cart.Add(line); err != nil {
		return cart.Line{}, err
	}
	s.selection = nil
	return line, nil
}

// CancelSelection closes the open selection without touching the cart.
func (s *Session) CancelSelection() {
	s.mu.Lock()
	s.selection = nil
	s.mu.Unlock()
}

// AddLine resolves an item/option pair directly into the cart, bypassing the
// selection flow.
func (s *Session) AddLine(itemName, sku string, quantity int) (cart.Line, error) {
	item, ok := menu.FindItem(s.Menu, itemName)
	if !ok {
		return cart.Line{}, menu.ErrItemNotFound
	}
	line, err := menu.ResolveSelection(item, sku, quantity)
	if err != nil {
		return cart.Line{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Add(line); err != nil {
		return cart.Line{}, err
	}
	return line, nil
}

// ChangeQuantity and RemoveLine delegate to the cart ledger; out-of-range
// indexes stay silent no-ops there.
func (s *Session) ChangeQuantity(index, delta int) {
	s.mu.Lock()
	s.cart.ChangeQuantity(index, delta)
	s.mu.Unlock()
}

func (s *Session) RemoveLine(index int) {
	s.mu.Lock()
	s.cart.Remove(index)
	s.mu.Unlock()
}

// CartSnapshot returns a copy of the cart for order composition.
func (s *Session) CartSnapshot() *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &cart.Cart{}
	for _, l := range s.cart.Lines() {
		snap.Add(l)
	}
	return snap
}

// BeginSubmit marks an order submission in flight. It reports false when one
// is already running; this is the only backpressure against duplicate
// submission, the analogue of the disabled submit button.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit releases the in-flight mark after a failed submission so the user
// can retry.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}
