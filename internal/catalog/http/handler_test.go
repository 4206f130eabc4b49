package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nqbjnh/go-shop/internal/catalog/domain"
	"github.com/nqbjnh/go-shop/internal/catalog/repository"
)

type mockRepo struct {
	m        sync.Mutex
	products map[string]*domain.Product
	err      error
	nextID   int
}

func newMockRepo(products ...*domain.Product) *mockRepo {
	r := &mockRepo{products: make(map[string]*domain.Product), nextID: 1}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (m *mockRepo) GetProducts(context.Context) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockRepo) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (m *mockRepo) GetProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateProduct(_ context.Context, product *domain.Product) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	product.ID = fmt.Sprintf("id-%d", m.nextID)
	m.nextID++
	m.products[product.ID] = product
	return product, nil
}

func (m *mockRepo) UpdateProduct(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockRepo) DeleteProduct(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func TestGetProducts_Empty(t *testing.T) {
	h := NewProductHandler(newMockRepo()).Routes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProduct_Success(t *testing.T) {
	h := NewProductHandler(newMockRepo(&domain.Product{
		ID: "abc", Name: "IPhone X", Category: "Smart Phone", Price: 950,
	})).Routes()

	req := httptest.NewRequest(http.MethodGet, "/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
	assert.Equal(t, "IPhone X", product.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	h := NewProductHandler(newMockRepo()).Routes()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductsByCategory(t *testing.T) {
	h := NewProductHandler(newMockRepo(
		&domain.Product{ID: "a", Name: "IPhone X", Category: "Smart Phone"},
		&domain.Product{ID: "b", Name: "LG TV", Category: "Home Kitchen"},
	)).Routes()

	req := httptest.NewRequest(http.MethodGet, "/category/Smart%20Phone", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "IPhone X", products[0].Name)
}

func TestCreateProduct_Success(t *testing.T) {
	repo := newMockRepo()
	h := NewProductHandler(repo).Routes()

	body := `{"name":"IPhone X","category":"Smart Phone","price":950}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var product domain.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&product))
	assert.NotEmpty(t, product.ID)
	assert.Contains(t, repo.products, product.ID)
}

func TestCreateProduct_MissingName(t *testing.T) {
	h := NewProductHandler(newMockRepo()).Routes()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":10}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	h := NewProductHandler(newMockRepo()).Routes()

	body := `{"id":"missing","name":"IPhone X"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := newMockRepo(&domain.Product{ID: "abc", Name: "IPhone X"})
	h := NewProductHandler(repo).Routes()

	req := httptest.NewRequest(http.MethodDelete, "/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, repo.products, "abc")
}

func TestGetProducts_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("mongo down")
	h := NewProductHandler(repo).Routes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
