package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeSweetRepo mirrors the Postgres repository contract in memory. The
// mutex stands in for row-level atomicity of the SQL statements.
type fakeSweetRepo struct {
	mu     sync.Mutex
	nextID int64
	sweets []*entity.Sweet
}

func (f *fakeSweetRepo) find(id int64) *entity.Sweet {
	for _, s := range f.sweets {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (f *fakeSweetRepo) List(_ context.Context) ([]entity.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Sweet, 0, len(f.sweets))
	for _, s := range f.sweets {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSweetRepo) Search(_ context.Context, flt repo.SweetFilter) ([]entity.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.Sweet, 0)
	for _, s := range f.sweets {
		if flt.Name != nil && !strings.Contains(s.Name, *flt.Name) {
			continue
		}
		if flt.Category != nil && !strings.Contains(s.Category, *flt.Category) {
			continue
		}
		if flt.MinPrice != nil && s.Price < *flt.MinPrice {
			continue
		}
		if flt.MaxPrice != nil && s.Price > *flt.MaxPrice {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSweetRepo) Get(_ context.Context, id int64) (*entity.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s := f.find(id); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeSweetRepo) Create(_ context.Context, s *entity.Sweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = time.Now()
	cp := *s
	f.sweets = append(f.sweets, &cp)
	return nil
}

func (f *fakeSweetRepo) Update(_ context.Context, id int64, upd repo.SweetUpdate) (*entity.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.find(id)
	if s == nil {
		return nil, repo.ErrNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Category != nil {
		s.Category = *upd.Category
	}
	if upd.Price != nil {
		s.Price = *upd.Price
	}
	if upd.Quantity != nil {
		s.Quantity = *upd.Quantity
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSweetRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.sweets {
		if s.ID == id {
			f.sweets = append(f.sweets[:i], f.sweets[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *fakeSweetRepo) Purchase(_ context.Context, id int64) (*entity.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.find(id)
	if s == nil {
		return nil, repo.ErrNotFound
	}
	if s.Quantity <= 0 {
		return nil, repo.ErrOutOfStock
	}
	s.Quantity--
	cp := *s
	return &cp, nil
}

func (f *fakeSweetRepo) Restock(_ context.Context, id int64, amount int) (*entity.Sweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.find(id)
	if s == nil {
		return nil, repo.ErrNotFound
	}
	s.Quantity += amount
	cp := *s
	return &cp, nil
}

var _ repo.SweetRepository = (*fakeSweetRepo)(nil)

func seedSweet(t *testing.T, svc *InventoryService, name, category string, price float64, quantity int) *entity.Sweet {
	t.Helper()
	s := &entity.Sweet{Name: name, Category: category, Price: price, Quantity: quantity}
	require.NoError(t, svc.Create(context.Background(), s))
	return s
}

func TestInventoryService_CreateDefaultDescription(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())

	s := seedSweet(t, svc, "Jalebi", "Syrup Based", 80, 12)
	assert.Equal(t, entity.DefaultSweetDescription, s.Description)

	withDesc := &entity.Sweet{Name: "Peda", Category: "Dry Sweet", Price: 200, Quantity: 5, Description: "Milk based"}
	require.NoError(t, svc.Create(context.Background(), withDesc))
	assert.Equal(t, "Milk based", withDesc.Description)
}

func TestInventoryService_Purchase(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	s := seedSweet(t, svc, "Barfi", "Dry Sweet", 300, 3)

	got, err := svc.Purchase(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}

func TestInventoryService_PurchaseOutOfStock(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	s := seedSweet(t, svc, "Ladoo", "Traditional", 100, 0)

	_, err := svc.Purchase(context.Background(), s.ID)
	assert.ErrorIs(t, err, repo.ErrOutOfStock)

	// quantity unchanged after the rejected purchase
	got, err := svc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestInventoryService_PurchaseNotFound(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())

	_, err := svc.Purchase(context.Background(), 42)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// Launching K concurrent purchases against quantity K must yield exactly K
// successes and a final quantity of zero: no lost updates, no negative stock.
func TestInventoryService_ConcurrentPurchases(t *testing.T) {
	const k = 50

	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	s := seedSweet(t, svc, "Gulab Jamun", "Syrup Based", 150, k)

	var wg sync.WaitGroup
	results := make(chan error, 2*k)
	for i := 0; i < 2*k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Purchase(context.Background(), s.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, outOfStock := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, repo.ErrOutOfStock):
			outOfStock++
		default:
			t.Fatalf("unexpected purchase error: %v", err)
		}
	}
	assert.Equal(t, k, successes)
	assert.Equal(t, k, outOfStock)

	got, err := svc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestInventoryService_Restock(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	s := seedSweet(t, svc, "Rasgulla", "Syrup Based", 120, 5)

	got, err := svc.Restock(context.Background(), s.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
}

func TestInventoryService_UpdatePartial(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	s := seedSweet(t, svc, "Kaju Katli", "Dry Sweet", 500, 8)

	newPrice := 550.0
	got, err := svc.Update(context.Background(), s.ID, repo.SweetUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 550.0, got.Price)
	assert.Equal(t, "Kaju Katli", got.Name)
	assert.Equal(t, 8, got.Quantity)
}

func TestInventoryService_DeleteNotFound(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	seedSweet(t, svc, "Barfi", "Dry Sweet", 300, 10)

	err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "failed delete must not mutate the store")
}

func TestInventoryService_SearchComposesWithAND(t *testing.T) {
	svc := NewInventoryService(&fakeSweetRepo{}, testLogger())
	seedSweet(t, svc, "Kaju Katli", "Dry Sweet", 500, 8)
	seedSweet(t, svc, "Ladoo", "Traditional", 100, 5)

	name := "Kaju"
	minPrice := 100.0
	got, err := svc.Search(context.Background(), repo.SweetFilter{Name: &name, MinPrice: &minPrice})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kaju Katli", got[0].Name)

	category := "Dry Sweet"
	maxPrice := 100.0
	got, err = svc.Search(context.Background(), repo.SweetFilter{Category: &category, MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.Empty(t, got)
}
