package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Visitor is the state one browser keeps between requests.
type Visitor struct {
	ID    string
	Cart  *CartStore
	Order *OrderLifecycle

	kitchen  *KitchenPoller
	lastSeen time.Time
}

type VisitorRegistry struct {
	newLifecycle func() *OrderLifecycle
	newKitchen   func() *KitchenPoller
	now          func() time.Time

	mu       sync.Mutex
	visitors map[string]*Visitor
}

func NewVisitorRegistry(newLifecycle func() *OrderLifecycle, newKitchen func() *KitchenPoller) *VisitorRegistry {
	return &VisitorRegistry{
		newLifecycle: newLifecycle,
		newKitchen:   newKitchen,
		now:          time.Now,
		visitors:     make(map[string]*Visitor),
	}
}

func NewVisitorID() string {
	return uuid.NewString()
}

func (r *VisitorRegistry) Get(id string) *Visitor {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[id]
	if !ok {
		v = &Visitor{
			ID:    id,
			Cart:  NewCartStore(),
			Order: r.newLifecycle(),
		}
		r.visitors[id] = v
	}
	v.lastSeen = r.now()
	return v
}

// Kitchen returns the visitor's board poller, creating it on first use.
func (r *VisitorRegistry) Kitchen(id string) *KitchenPoller {
	v := r.Get(id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if v.kitchen == nil {
		v.kitchen = r.newKitchen()
	}
	return v.kitchen
}

// StopKitchen halts the visitor's poller, if one was started.
func (r *VisitorRegistry) StopKitchen(id string) {
	r.mu.Lock()
	v, ok := r.visitors[id]
	var poller *KitchenPoller
	if ok {
		poller = v.kitchen
		v.kitchen = nil
	}
	r.mu.Unlock()

	if poller != nil {
		poller.Stop()
	}
}

func (r *VisitorRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep drops visitors idle for longer than idle and returns how many were removed.
func (r *VisitorRegistry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*Visitor
	var pollers []*KitchenPoller
	for id, v := range r.visitors {
		if v.lastSeen.Before(cutoff) {
			stale = append(stale, v)
			if v.kitchen != nil {
				pollers = append(pollers, v.kitchen)
			}
			delete(r.visitors, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Order.Abandon()
	}
	for _, poller := range pollers {
		poller.Stop()
	}
	return len(stale)
}

func (r *VisitorRegistry) StartSweeper(ctx context.Context, every, idle time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(idle); n > 0 {
					log.Printf("[visitors] dropped %d idle visitors", n)
				}
			}
		}
	}()
}
