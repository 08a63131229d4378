// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"
	"time"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
)

// fakeAPI is a scriptable in-memory stand-in for the upstream recipe API.
// Calls counts every invocation so tests can assert "zero HTTP calls".
type fakeAPI struct {
	mu    sync.Mutex
	calls int

	random  *model.Cocktail
	byName  map[string][]*model.Cocktail
	byIngr  map[string][]*model.CocktailRef
	byID    map[string]*model.Cocktail
	failErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		byName: map[string][]*model.Cocktail{},
		byIngr: map[string][]*model.CocktailRef{},
		byID:   map[string]*model.Cocktail{},
	}
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAPI) bump() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.failErr
}

func (f *fakeAPI) Random(ctx context.Context) (*model.Cocktail, error) {
	if err := f.bump(); err != nil {
		return nil, err
	}
	if f.random == nil {
		return nil, domain.ErrNotFound
	}
	return f.random, nil
}

func (f *fakeAPI) SearchByName(ctx context.Context, name string) ([]*model.Cocktail, error) {
	if err := f.bump(); err != nil {
		return nil, err
	}
	res, ok := f.byName[name]
	if !ok || len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (f *fakeAPI) FilterByIngredient(ctx context.Context, ingredient string) ([]*model.CocktailRef, error) {
	if err := f.bump(); err != nil {
		return nil, err
	}
	res, ok := f.byIngr[ingredient]
	if !ok || len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (f *fakeAPI) LookupByID(ctx context.Context, id string) (*model.Cocktail, error) {
	if err := f.bump(); err != nil {
		return nil, err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// memCache is an in-memory repository.RecipeCache.
type memCache struct {
	mu        sync.Mutex
	cocktails map[string]*model.Cocktail
	lists     map[string][]*model.Cocktail
	refs      map[string][]*model.CocktailRef
}

func newMemCache() *memCache {
	return &memCache{
		cocktails: map[string]*model.Cocktail{},
		lists:     map[string][]*model.Cocktail{},
		refs:      map[string][]*model.CocktailRef{},
	}
}

func (m *memCache) GetCocktail(ctx context.Context, key string) (*model.Cocktail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.cocktails[key]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memCache) SetCocktail(ctx context.Context, key string, c *model.Cocktail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cocktails[key] = c
	return nil
}

func (m *memCache) GetCocktails(ctx context.Context, key string) ([]*model.Cocktail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.lists[key]; ok {
		return l, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memCache) SetCocktails(ctx context.Context, key string, cs []*model.Cocktail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = cs
	return nil
}

func (m *memCache) GetRefs(ctx context.Context, key string) ([]*model.CocktailRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.refs[key]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memCache) SetRefs(ctx context.Context, key string, refs []*model.CocktailRef) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs[key] = refs
	return nil
}

// memAnalyticsRepo is a small in-memory analytics store used by stats tests.
type memAnalyticsRepo struct {
	mu     sync.Mutex
	events []*model.Event
	logErr error
}

func (m *memAnalyticsRepo) LogEvent(ctx context.Context, ev *model.Event) error {
	if m.logErr != nil {
		return m.logErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *memAnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[int64]struct{}{}
	for _, ev := range m.events {
		seen[ev.TelegramID] = struct{}{}
	}
	return len(seen), nil
}

func (m *memAnalyticsRepo) CountEventsSince(ctx context.Context, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, ev := range m.events {
		if !ev.At.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memAnalyticsRepo) CountEventsByKindSince(ctx context.Context, since time.Time) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]int{}
	for _, ev := range m.events {
		if !ev.At.Before(since) {
			out[string(ev.Kind)]++
		}
	}
	return out, nil
}

// fakeToaster implements adapter.ToastAdapter.
type fakeToaster struct {
	toast string
	err   error
	calls int
}

func (f *fakeToaster) GenerateToast(ctx context.Context, reason string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.toast, nil
}
