package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"retail-insight/models"
)

// Dataset is one uploaded record set held for the session. Records are
// immutable once normalized; ABC holds the classes computed against the full
// set at load time, so filtered views can report a stable class while
// recomputing every local figure.
type Dataset struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Records     []models.SalesRecord `json:"-"`
	ABC         map[string]string    `json:"-"`
	RecordCount int                  `json:"recordCount"`
	GiftCount   int                  `json:"giftCount,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// Registry is the in-memory dataset store. It is the authoritative copy for
// the session whether or not PostgreSQL persistence is configured.
type Registry struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
}

// Datasets is the application-wide registry.
var Datasets = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{datasets: make(map[string]*Dataset)}
}

// Add registers a new dataset and returns it with a fresh ID.
func (r *Registry) Add(name string, records []models.SalesRecord, abc map[string]string) *Dataset {
	giftCount := 0
	for _, rec := range records {
		if rec.IsGift {
			giftCount++
		}
	}
	ds := &Dataset{
		ID:          uuid.NewString(),
		Name:        name,
		Records:     records,
		ABC:         abc,
		RecordCount: len(records),
		GiftCount:   giftCount,
		CreatedAt:   time.Now().UTC(),
	}
	r.mu.Lock()
	r.datasets[ds.ID] = ds
	r.mu.Unlock()
	return ds
}

// Restore re-registers a dataset loaded from persistence under its stored ID.
func (r *Registry) Restore(ds *Dataset) {
	r.mu.Lock()
	r.datasets[ds.ID] = ds
	r.mu.Unlock()
}

func (r *Registry) Get(id string) (*Dataset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ds, ok := r.datasets[id]
	return ds, ok
}

// List returns datasets sorted newest first.
func (r *Registry) List() []*Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*Dataset, 0, len(r.datasets))
	for _, ds := range r.datasets {
		list = append(list, ds)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.datasets[id]; !ok {
		return false
	}
	delete(r.datasets, id)
	return true
}
