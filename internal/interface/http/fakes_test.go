package handlers_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
)

// In-memory repositories mirroring the Postgres contracts, so handler tests
// exercise the full route/middleware/handler path without a database.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  []*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return repo.ErrDuplicateUsername
		}
		if existing.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) CountAdmins(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, u := range f.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

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

var (
	_ repo.UserRepository  = (*fakeUserRepo)(nil)
	_ repo.SweetRepository = (*fakeSweetRepo)(nil)
)
