package order

import (
	"context"
	"log"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/receipt"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/session"
)

// Submitter hands the composed order to the backend.
type Submitter interface {
	SubmitOrder(ctx context.Context, o *Order) error
}

// Messenger delivers the receipt document to the user.
type Messenger interface {
	Push(ctx context.Context, userID string, message any) error
}

type Service struct {
	submitter Submitter
	messenger Messenger
	sessions  *session.Service
}

func NewService(submitter Submitter, messenger Messenger, sessions *session.Service) *Service {
	return &Service{
		submitter: submitter,
		messenger: messenger,
		sessions:  sessions,
	}
}

// Result is the outcome of a successful checkout. ReceiptSent is false when
// the order was accepted but the receipt message could not be delivered.
type Result struct {
	Order       *Order `json:"order"`
	ReceiptSent bool   `json:"receiptSent"`
}

// Checkout composes and submits the order for the session. The per-session
// in-flight guard rejects a second submission while one is running. A
// submission failure releases the guard so the user can retry; a receipt
// delivery failure does not fail the checkout, the order already stands. On
// success the session ends and the cart is discarded.
func (s *Service) Checkout(ctx context.Context, sess *session.Session, choice delivery.Choice) (*Result, error) {
	if !sess.BeginSubmit() {
		return nil, ErrSubmitInFlight
	}

	user := User{ID: sess.Profile.UserID, DisplayName: sess.Profile.DisplayName}
	o, err := Compose(sess.CartSnapshot(), user, choice, sess.Areas)
	if err != nil {
		sess.EndSubmit()
		return nil, err
	}

	if err := s.submitter.SubmitOrder(ctx, o); err != nil {
		sess.EndSubmit()
		return nil, err
	}

	sent := true
	msg := receipt.New(o.Cart, o.TotalPrice, o.Delivery)
	if err := s.messenger.Push(ctx, o.User.ID, msg); err != nil {
		log.Printf("receipt delivery failed for user %s: %v", o.User.ID, err)
		sent = false
	}

	s.sessions.End(sess.ID)
	return &Result{Order: o, ReceiptSent: sent}, nil
}
