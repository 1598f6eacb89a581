package service

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/domain"
)

const (
	KitchenPageSize        = 15
	DefaultKitchenInterval = 30 * time.Second
)

type KitchenPage struct {
	Orders     []domain.Order `json:"orders"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	FetchedAt  time.Time      `json:"fetched_at"`
	Error      string         `json:"error,omitempty"`
}

// KitchenPoller keeps a refreshed copy of the order board. When fetches overlap, the most
// recently started one decides the board.
type KitchenPoller struct {
	api      KitchenAPI
	interval time.Duration

	mu        sync.Mutex
	orders    []domain.Order
	issued    uint64
	applied   uint64
	lastErr   error
	fetchedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewKitchenPoller(api KitchenAPI, interval time.Duration) *KitchenPoller {
	if interval <= 0 {
		interval = DefaultKitchenInterval
	}
	return &KitchenPoller{
		api:      api,
		interval: interval,
	}
}

func (p *KitchenPoller) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.issued++
	generation := p.issued
	p.mu.Unlock()

	orders, err := p.api.ListOrders(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if generation <= p.applied {
		return err
	}
	if err != nil {
		if generation == p.issued {
			p.lastErr = err
		}
		return err
	}
	p.applied = generation
	p.orders = SortKitchenOrders(orders)
	p.lastErr = nil
	p.fetchedAt = time.Now()
	return nil
}

// Start refreshes the board with token every interval until Stop or ctx ends. The first
// board is loaded by the caller through Refresh. A running poller is left as is.
func (p *KitchenPoller) Start(ctx context.Context, token string) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(apiclient.WithToken(ctx, token))
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if err := p.Refresh(ctx); err != nil && ctx.Err() == nil {
				log.Printf("[kitchen] refresh failed: %v", err)
			}
		}
	}()
}

func (p *KitchenPoller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (p *KitchenPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

// Page returns the 1-based page n of the sorted board, clamped to the available pages.
func (p *KitchenPoller) Page(n int) KitchenPage {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := len(p.orders)
	pages := (total + KitchenPageSize - 1) / KitchenPageSize
	if pages == 0 {
		pages = 1
	}
	if n < 1 {
		n = 1
	}
	if n > pages {
		n = pages
	}

	start := (n - 1) * KitchenPageSize
	end := start + KitchenPageSize
	if end > total {
		end = total
	}

	page := KitchenPage{
		Orders:     append([]domain.Order{}, p.orders[start:end]...),
		Page:       n,
		TotalPages: pages,
		Total:      total,
		FetchedAt:  p.fetchedAt,
	}
	if p.lastErr != nil {
		page.Error = p.lastErr.Error()
	}
	return page
}

func (p *KitchenPoller) MarkCompleted(ctx context.Context, orderNumber string) error {
	if err := p.api.UpdateOrderStatus(ctx, orderNumber, domain.OrderCompleted); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.orders {
		if string(p.orders[i].OrderNumber) == orderNumber {
			p.orders[i].Status = domain.OrderCompleted
		}
	}
	p.orders = SortKitchenOrders(p.orders)
	return nil
}

// SortKitchenOrders puts the newest first, then moves finished orders behind open ones.
func SortKitchenOrders(orders []domain.Order) []domain.Order {
	sorted := append([]domain.Order{}, orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return kitchenRank(sorted[i].Status) < kitchenRank(sorted[j].Status)
	})
	return sorted
}

func kitchenRank(status domain.OrderStatus) int {
	switch status {
	case domain.OrderInProgress:
		return 0
	case domain.OrderPending:
		return 1
	default:
		return 2
	}
}
