package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/OfficePlata/rakuraku-bento-pages/internal/delivery"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/menu"
	"github.com/OfficePlata/rakuraku-bento-pages/internal/messaging"
)

// ErrProfile marks a failed platform profile lookup, i.e. the login is
// missing or expired. Handlers map it to 401 instead of 502.
var ErrProfile = errors.New("platform profile unavailable")

type MenuFetcher interface {
	FetchMenu(ctx context.Context) ([]menu.Item, delivery.AreaSet, error)
}

type ProfileFetcher interface {
	Profile(ctx context.Context, accessToken string) (messaging.Profile, error)
}

type Service struct {
	store    Store
	backend  MenuFetcher
	platform ProfileFetcher
}

func NewService(store Store, backend MenuFetcher, platform ProfileFetcher) *Service {
	return &Service{store: store, backend: backend, platform: platform}
}

// Start opens a session for the user behind the platform access token. The
// profile lookup and the menu fetch run in parallel; either failing aborts
// the start, since a session without identity or menu is unusable.
func (s *Service) Start(ctx context.Context, accessToken string) (*Session, error) {
	var (
		profile messaging.Profile
		items   []menu.Item
		areas   delivery.AreaSet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.platform.Profile(gctx, accessToken)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrProfile, err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		m, a, err := s.backend.FetchMenu(gctx)
		if err != nil {
			return err
		}
		items, areas = m, a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sess := &Session{
		Profile:   profile,
		Menu:      items,
		Areas:     areas,
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// End discards the session; the cart goes with it.
func (s *Service) End(id string) {
	s.store.Delete(id)
}
