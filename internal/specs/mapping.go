package specs

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"cleo/internal/model"
	"cleo/internal/observability"
)

const (
	resolvedCacheKey = "specs:resolved"
	resolvedCacheTTL = 10 * time.Minute
)

// InventoryLister entrega el snapshot de inventario sobre el que se
// resuelven las fichas.
type InventoryLister interface {
	List() ([]model.InventoryItem, error)
}

// MappingService materializa el mapeo material -> ficha para todo el
// inventario y lo cachea en Redis. El caché se invalida al subir inventario
// o fichas nuevas; el TTL es solo una red de seguridad.
type MappingService struct {
	Repo      *Repository
	Inventory InventoryLister
	Cache     *redis.Client
	SpecsDir  string

	mu sync.Mutex
}

// Catalog arma el snapshot actual de fichas: archivos del directorio más el
// mapeo manual curado.
func (s *MappingService) Catalog() (*model.SpecCatalog, error) {
	files, err := ListFiles(s.SpecsDir)
	if err != nil {
		return nil, err
	}
	manual, err := s.Repo.ManualMap()
	if err != nil {
		return nil, err
	}
	return &model.SpecCatalog{Filenames: files, IDToFilename: manual}, nil
}

// Resolved devuelve el mapeo material -> ficha resuelto para cada item del
// inventario, recalculándolo bajo lock solo cuando el caché no sirve.
func (s *MappingService) Resolved() (map[string]string, error) {
	ctx := context.Background()

	if val, err := s.Cache.Get(ctx, resolvedCacheKey).Result(); err == nil {
		var cached map[string]string
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Otro goroutine pudo haberlo recalculado mientras esperábamos.
	if val, err := s.Cache.Get(ctx, resolvedCacheKey).Result(); err == nil {
		var cached map[string]string
		if json.Unmarshal([]byte(val), &cached) == nil {
			return cached, nil
		}
	}

	log.Println("[Specs] Recalculando mapeo de fichas (caché vencido)")

	cat, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	items, err := s.Inventory.List()
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]string)
	for _, item := range items {
		found, strat := ResolveStrategy(item.Material, item.Subproducto, cat)
		if len(found) > 0 {
			resolved[item.Material] = found[0]
			observability.SpecResolutionsTotal.WithLabelValues(strat).Inc()
		}
	}

	if b, err := json.Marshal(resolved); err == nil {
		s.Cache.Set(ctx, resolvedCacheKey, b, resolvedCacheTTL)
	}
	return resolved, nil
}

// Invalidate descarta el mapeo cacheado; se llama tras subir inventario,
// fichas o vínculos manuales.
func (s *MappingService) Invalidate() {
	s.Cache.Del(context.Background(), resolvedCacheKey)
}
