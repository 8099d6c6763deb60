package store

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/nutrio/internal/client/catalog"
	"github.com/dmitrijs2005/nutrio/internal/client/gateway"
	"github.com/dmitrijs2005/nutrio/internal/client/mocks"
	"github.com/dmitrijs2005/nutrio/internal/client/models"
	"github.com/dmitrijs2005/nutrio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

type CatalogSnapshot struct {
	Meals       []models.Meal
	Restaurants []models.Restaurant
	IsLoading   bool
}

func (s CatalogSnapshot) clone() CatalogSnapshot {
	s.Meals = append([]models.Meal(nil), s.Meals...)
	s.Restaurants = append([]models.Restaurant(nil), s.Restaurants...)
	return s
}

// CatalogStore holds the meal and restaurant collections. Favorites are
// client-local and survive restarts.
type CatalogStore struct {
	gw  gateway.Gateway
	kv  metadata.Repository
	log logging.Logger

	mu        sync.RWMutex
	state     CatalogSnapshot
	favorites map[string]bool
	obs       observers[CatalogSnapshot]
}

func NewCatalogStore(gw gateway.Gateway, kv metadata.Repository, opts ...Option) *CatalogStore {
	o := buildOptions(opts)
	return &CatalogStore{
		gw:        gw,
		kv:        kv,
		log:       o.log.With("store", "catalog"),
		favorites: make(map[string]bool),
	}
}

func (s *CatalogStore) Snapshot() CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *CatalogStore) OnChange(fn func(CatalogSnapshot)) (unsubscribe func()) {
	return s.obs.subscribe(fn)
}

func (s *CatalogStore) update(fn func(*CatalogSnapshot)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	s.mu.Unlock()
	s.obs.notify(snap)
}

// Load restores the favorite set.
func (s *CatalogStore) Load(ctx context.Context) {
	var ids []string
	if _, err := loadJSON(ctx, s.kv, KeyFavorites, &ids); err != nil {
		s.log.Warn(ctx, "load favorites failed", "error", err)
		return
	}
	s.mu.Lock()
	for _, id := range ids {
		s.favorites[id] = true
	}
	s.mu.Unlock()
	s.update(func(st *CatalogSnapshot) { s.applyFavorites(st.Restaurants) })
}

// applyFavorites sets each restaurant's flag from the favorite set.
// s.mu must be held.
func (s *CatalogStore) applyFavorites(rs []models.Restaurant) {
	for i := range rs {
		rs[i].Favorite = s.favorites[rs[i].ID]
	}
}

// FetchMeals loads meals. A missing table, an empty table or any other
// failure yields the mock meals.
func (s *CatalogStore) FetchMeals(ctx context.Context) {
	s.update(func(st *CatalogSnapshot) { st.IsLoading = true })
	defer s.update(func(st *CatalogSnapshot) { st.IsLoading = false })

	meals, err := s.gw.Catalog().ListMeals(ctx)
	meals, substituted, err := substitute(meals, err, mocks.Meals)
	switch {
	case substituted:
		s.log.Info(ctx, "meals table missing, using mock meals")
	case err != nil:
		s.log.Warn(ctx, "fetch meals failed, using mock meals", "error", err)
		meals = mocks.Meals()
	case len(meals) == 0:
		meals = mocks.Meals()
	}
	s.update(func(st *CatalogSnapshot) { st.Meals = meals })
}

// FetchRestaurants loads restaurants with the same fallback as FetchMeals.
func (s *CatalogStore) FetchRestaurants(ctx context.Context) {
	s.update(func(st *CatalogSnapshot) { st.IsLoading = true })
	defer s.update(func(st *CatalogSnapshot) { st.IsLoading = false })

	rs, err := s.gw.Catalog().ListRestaurants(ctx)
	rs, substituted, err := substitute(rs, err, mocks.Restaurants)
	switch {
	case substituted:
		s.log.Info(ctx, "restaurants table missing, using mock restaurants")
	case err != nil:
		s.log.Warn(ctx, "fetch restaurants failed, using mock restaurants", "error", err)
		rs = mocks.Restaurants()
	case len(rs) == 0:
		rs = mocks.Restaurants()
	}
	s.update(func(st *CatalogSnapshot) {
		s.applyFavorites(rs)
		st.Restaurants = rs
	})
}

// ToggleFavorite flips the favorite flag of restaurant id and persists the
// favorite set. It reports the new value.
func (s *CatalogStore) ToggleFavorite(ctx context.Context, id string) bool {
	var fav bool
	var ids []string
	s.update(func(st *CatalogSnapshot) {
		fav = !s.favorites[id]
		if fav {
			s.favorites[id] = true
		} else {
			delete(s.favorites, id)
		}
		rs := append([]models.Restaurant(nil), st.Restaurants...)
		s.applyFavorites(rs)
		st.Restaurants = rs
		ids = make([]string, 0, len(s.favorites))
		for k := range s.favorites {
			ids = append(ids, k)
		}
	})
	sort.Strings(ids)
	saveJSON(ctx, s.kv, s.log, KeyFavorites, ids)
	return fav
}

// Meals returns the held meals matching f.
func (s *CatalogStore) Meals(f catalog.MealFilter) []models.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.FilterMeals(s.state.Meals, f)
}

// Restaurants returns the held restaurants matching query.
func (s *CatalogStore) Restaurants(query string) []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.FilterRestaurants(s.state.Restaurants, query)
}
