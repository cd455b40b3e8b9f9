package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// OAuthStateRepository keeps short lived anti-forgery states for the
// Google sign-in redirect flow. States expire after ten minutes.
type OAuthStateRepository struct {
	cache *cache.Cache
}

func NewOAuthStateRepository() *OAuthStateRepository {
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &OAuthStateRepository{
		cache: c,
	}
}

func (r *OAuthStateRepository) Save(state string) {
	r.cache.Set(state, struct{}{}, cache.DefaultExpiration)
}

// Consume reports whether the state was issued by us and removes it so
// it cannot be replayed.
func (r *OAuthStateRepository) Consume(state string) bool {
	if _, found := r.cache.Get(state); !found {
		return false
	}
	r.cache.Delete(state)
	return true
}
