package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"orderflow/web-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderState int

const (
	StateNoOrder OrderState = iota
	StateSnapshotTaken
	StateSubmitting
	StateSubmitted
	StateReviewUnlocked
	StateReviewed
)

func (s OrderState) String() string {
	switch s {
	case StateSnapshotTaken:
		return "snapshot_taken"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateReviewUnlocked:
		return "review_unlocked"
	case StateReviewed:
		return "reviewed"
	default:
		return "no_order"
	}
}

func (s OrderState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const DefaultReviewDelay = 20 * time.Minute

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The returned timer cancels it.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type LifecycleDeps struct {
	Orders      OrderAPI
	Feedback    FeedbackServiceInterface
	Receipts    ReceiptRepository
	Publisher   EventPublisher
	Scheduler   Scheduler
	Now         func() time.Time
	ReviewDelay time.Duration
	Provisional func() string
}

// OrderLifecycle drives one visitor's order from checkout to review.
type OrderLifecycle struct {
	orders      OrderAPI
	feedback    FeedbackServiceInterface
	receipts    ReceiptRepository
	publisher   EventPublisher
	scheduler   Scheduler
	now         func() time.Time
	reviewDelay time.Duration
	provisional func() string

	mu        sync.Mutex
	state     OrderState
	snapshot  *domain.OrderSnapshot
	lastErr   error
	timer     Timer
	unlockAt  time.Time
	reviewing bool
	// flow changes whenever the current order is replaced, so callbacks from an old flow are ignored.
	flow uint64
}

func NewOrderLifecycle(deps LifecycleDeps) *OrderLifecycle {
	l := &OrderLifecycle{
		orders:      deps.Orders,
		feedback:    deps.Feedback,
		receipts:    deps.Receipts,
		publisher:   deps.Publisher,
		scheduler:   deps.Scheduler,
		now:         deps.Now,
		reviewDelay: deps.ReviewDelay,
		provisional: deps.Provisional,
	}
	if l.scheduler == nil {
		l.scheduler = realScheduler{}
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.reviewDelay <= 0 {
		l.reviewDelay = DefaultReviewDelay
	}
	if l.provisional == nil {
		l.provisional = ProvisionalNumber
	}
	return l
}

// ProvisionalNumber is the display label shown until the server assigns a number.
func ProvisionalNumber() string {
	return fmt.Sprintf("ORD-%d", rand.Intn(100000))
}

func (l *OrderLifecycle) State() OrderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *OrderLifecycle) Snapshot() (domain.OrderSnapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.snapshot == nil {
		return domain.OrderSnapshot{}, false
	}
	return copySnapshot(l.snapshot), true
}

func (l *OrderLifecycle) TakeSnapshot(entries []domain.CartEntry) (domain.OrderSnapshot, error) {
	if len(entries) == 0 {
		return domain.OrderSnapshot{}, ErrEmptyCart
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == StateSubmitting {
		return domain.OrderSnapshot{}, ErrSubmissionInFlight
	}
	l.resetLocked()

	items := make([]domain.CartEntry, len(entries))
	copy(items, entries)
	for i := range items {
		items[i].Quantity = items[i].Units()
	}

	l.snapshot = &domain.OrderSnapshot{
		ProvisionalNumber: l.provisional(),
		Items:             items,
		CreatedAt:         l.now(),
	}
	l.state = StateSnapshotTaken
	return copySnapshot(l.snapshot), nil
}

// SubmitOnce creates the server order for the current snapshot. At most one call per snapshot
// reaches the remote API; a failed call makes the snapshot submittable again.
func (l *OrderLifecycle) SubmitOnce(ctx context.Context) (domain.OrderNumber, error) {
	l.mu.Lock()
	switch l.state {
	case StateSnapshotTaken:
	case StateSubmitting:
		l.mu.Unlock()
		return "", ErrSubmissionInFlight
	case StateSubmitted, StateReviewUnlocked, StateReviewed:
		l.mu.Unlock()
		return "", ErrAlreadySubmitted
	default:
		l.mu.Unlock()
		return "", ErrIllegalTransition
	}
	l.state = StateSubmitting
	flow := l.flow
	itemIDs := l.snapshot.ItemIDs()
	l.mu.Unlock()

	created, err := l.orders.CreateOrder(ctx, itemIDs)

	l.mu.Lock()
	if l.flow != flow {
		l.mu.Unlock()
		log.Printf("[lifecycle] order %s returned after the flow was abandoned", created.OrderNumber)
		if err != nil {
			return "", err
		}
		return "", ErrFlowAbandoned
	}
	if err == nil && created.OrderNumber == "" {
		err = ErrNoOrderNumber
	}
	if err != nil {
		l.state = StateSnapshotTaken
		l.lastErr = err
		l.mu.Unlock()
		return "", err
	}

	l.snapshot.OrderNumber = created.OrderNumber
	l.state = StateSubmitted
	l.lastErr = nil
	l.startReviewTimerLocked()

	total := ComputeTotal(*l.snapshot)
	receipt := domain.Receipt{
		ProvisionalNumber: l.snapshot.ProvisionalNumber,
		OrderNumber:       string(created.OrderNumber),
		Total:             domain.Price{Decimal: total},
		ItemCount:         len(itemIDs),
		SubmittedAt:       l.now(),
	}
	l.mu.Unlock()

	l.recordSubmission(ctx, receipt)
	return created.OrderNumber, nil
}

func (l *OrderLifecycle) recordSubmission(ctx context.Context, receipt domain.Receipt) {
	if l.receipts != nil {
		if err := l.receipts.Record(ctx, &receipt); err != nil {
			log.Printf("[lifecycle] WARNING: failed to record receipt for %s: %v", receipt.OrderNumber, err)
		}
	}
	if l.publisher != nil {
		err := l.publisher.Publish(ctx, domain.Event{
			Type:        domain.EventOrderSubmitted,
			OrderNumber: receipt.OrderNumber,
			Total:       receipt.Total,
			Timestamp:   receipt.SubmittedAt,
		})
		if err != nil {
			log.Printf("[lifecycle] WARNING: failed to publish %s: %v", domain.EventOrderSubmitted, err)
		}
	}
}

// StartReviewTimer restarts the unlock countdown for a submitted order.
func (l *OrderLifecycle) StartReviewTimer() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateSubmitted {
		return ErrIllegalTransition
	}
	l.startReviewTimerLocked()
	return nil
}

func (l *OrderLifecycle) startReviewTimerLocked() {
	if l.timer != nil {
		l.timer.Stop()
	}
	flow := l.flow
	l.unlockAt = l.now().Add(l.reviewDelay)
	l.timer = l.scheduler.AfterFunc(l.reviewDelay, func() {
		l.unlockReview(flow)
	})
}

func (l *OrderLifecycle) unlockReview(flow uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.flow != flow || l.state != StateSubmitted {
		return
	}
	l.state = StateReviewUnlocked
	l.timer = nil
	log.Printf("[lifecycle] review unlocked for order %s", l.snapshot.DisplayNumber())
}

// ReviewRemaining is the time left before review opens; zero outside the Submitted state.
func (l *OrderLifecycle) ReviewRemaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reviewRemainingLocked()
}

func (l *OrderLifecycle) reviewRemainingLocked() time.Duration {
	if l.state != StateSubmitted {
		return 0
	}
	remaining := l.unlockAt.Sub(l.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Review submits feedback for the submitted order. A failure leaves the review unlocked.
func (l *OrderLifecycle) Review(ctx context.Context, rating int, comment string) error {
	l.mu.Lock()
	switch {
	case l.state == StateSubmitted:
		l.mu.Unlock()
		return ErrReviewLocked
	case l.state != StateReviewUnlocked:
		l.mu.Unlock()
		return ErrIllegalTransition
	case l.reviewing:
		l.mu.Unlock()
		return ErrSubmissionInFlight
	}
	l.reviewing = true
	flow := l.flow
	var orderNumber *string
	if l.snapshot.OrderNumber != "" {
		number := string(l.snapshot.OrderNumber)
		orderNumber = &number
	}
	l.mu.Unlock()

	err := l.feedback.Submit(ctx, orderNumber, rating, comment)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.reviewing = false
	if err != nil {
		return err
	}
	if l.flow == flow && l.state == StateReviewUnlocked {
		l.state = StateReviewed
	}
	return nil
}

func (l *OrderLifecycle) MarkReviewed() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateReviewUnlocked {
		return ErrIllegalTransition
	}
	l.state = StateReviewed
	return nil
}

// Abandon drops the current flow and cancels a pending review timer.
func (l *OrderLifecycle) Abandon() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetLocked()
}

func (l *OrderLifecycle) resetLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.flow++
	l.state = StateNoOrder
	l.snapshot = nil
	l.lastErr = nil
	l.unlockAt = time.Time{}
	l.reviewing = false
}

type LifecycleStatus struct {
	State             OrderState         `json:"state"`
	ProvisionalNumber string             `json:"provisional_number,omitempty"`
	OrderNumber       string             `json:"order_number,omitempty"`
	DisplayNumber     string             `json:"display_number,omitempty"`
	Items             []domain.CartEntry `json:"items"`
	Total             domain.Price       `json:"total"`
	ReviewCountdown   string             `json:"review_countdown,omitempty"`
	ReviewUnlockAt    *time.Time         `json:"review_unlock_at,omitempty"`
	LastError         string             `json:"last_error,omitempty"`
}

func (l *OrderLifecycle) Status() LifecycleStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	status := LifecycleStatus{State: l.state, Items: []domain.CartEntry{}}
	if l.lastErr != nil {
		status.LastError = l.lastErr.Error()
	}
	if l.snapshot == nil {
		return status
	}

	snapshot := copySnapshot(l.snapshot)
	status.ProvisionalNumber = snapshot.ProvisionalNumber
	status.OrderNumber = string(snapshot.OrderNumber)
	status.DisplayNumber = snapshot.DisplayNumber()
	status.Items = snapshot.Items
	status.Total = domain.Price{Decimal: ComputeTotal(snapshot)}
	if l.state == StateSubmitted {
		unlockAt := l.unlockAt
		status.ReviewUnlockAt = &unlockAt
		status.ReviewCountdown = FormatCountdown(l.reviewRemainingLocked())
	}
	return status
}

// ComputeTotal sums price times quantity. Entries without a quantity count once.
func ComputeTotal(snapshot domain.OrderSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range snapshot.Items {
		total = total.Add(entry.Item.Price.Decimal.Mul(decimal.NewFromInt(int64(entry.Units()))))
	}
	return total
}

// FormatCountdown renders d as m:ss.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func copySnapshot(s *domain.OrderSnapshot) domain.OrderSnapshot {
	out := *s
	out.Items = make([]domain.CartEntry, len(s.Items))
	copy(out.Items, s.Items)
	return out
}
