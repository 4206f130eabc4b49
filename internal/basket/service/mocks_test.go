package service

import (
	"context"
	"sync"

	"github.com/nqbjnh/go-shop/internal/basket/domain"
	"github.com/nqbjnh/go-shop/internal/basket/store"
)

// mockStore keeps baskets in a map, mirroring the last-writer-wins
// overwrite semantics of the real store.
type mockStore struct {
	m       sync.Mutex
	baskets map[string]*domain.ShoppingCart

	getErr    error
	putErr    error
	deleteErr error
}

func newMockStore() *mockStore {
	return &mockStore{baskets: make(map[string]*domain.ShoppingCart)}
}

func (m *mockStore) Get(_ context.Context, userName string) (*domain.ShoppingCart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	cart, ok := m.baskets[userName]
	if !ok {
		return nil, store.ErrBasketNotFound
	}
	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	return &cp, nil
}

func (m *mockStore) Put(_ context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.putErr != nil {
		return nil, m.putErr
	}
	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	m.baskets[cart.UserName] = &cp
	return &cp, nil
}

func (m *mockStore) Delete(_ context.Context, userName string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.baskets, userName)
	return nil
}

func (m *mockStore) stored(userName string) *domain.ShoppingCart {
	m.m.Lock()
	defer m.m.Unlock()
	return m.baskets[userName]
}

// mockResolver returns per-product amounts and can fail either for a
// single product or for every call.
type mockResolver struct {
	m       sync.Mutex
	amounts map[string]float64
	failFor string
	err     error
	calls   int
}

func (m *mockResolver) Resolve(_ context.Context, productName string) (float64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	if m.failFor != "" && m.failFor == productName {
		return 0, context.DeadlineExceeded
	}
	return m.amounts[productName], nil
}

type mockPublisher struct {
	m      sync.Mutex
	events []*domain.BasketCheckoutEvent
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, event *domain.BasketCheckoutEvent) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) published() []*domain.BasketCheckoutEvent {
	m.m.Lock()
	defer m.m.Unlock()
	return m.events
}
