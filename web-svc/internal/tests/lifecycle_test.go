package tests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"orderflow/web-svc/internal/apiclient"
	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/mocks"
	"orderflow/web-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	scheduler *fakeScheduler
	delay     time.Duration
	fn        func()
	stopped   bool
	fired     bool
}

func (t *fakeTimer) Stop() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// fakeScheduler only runs callbacks when Fire is called.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) service.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{scheduler: s, delay: d, fn: f}
	s.timers = append(s.timers, timer)
	return timer
}

// Fire runs every timer that has not been stopped and returns how many ran.
func (s *fakeScheduler) Fire() int {
	s.mu.Lock()
	var due []*fakeTimer
	for _, timer := range s.timers {
		if !timer.stopped && !timer.fired {
			timer.fired = true
			due = append(due, timer)
		}
	}
	s.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
	return len(due)
}

func (s *fakeScheduler) Last() *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return nil
	}
	return s.timers[len(s.timers)-1]
}

var pizza = domain.MenuItem{ID: 1, Name: "Pizza", Price: domain.NewPrice("9.99"), IsAvailable: true}

type lifecycleFixture struct {
	orders    *mocks.OrderAPI
	feedback  *mocks.FeedbackServiceInterface
	receipts  *mocks.ReceiptRepository
	publisher *mocks.EventPublisher
	scheduler *fakeScheduler
	lifecycle *service.OrderLifecycle
	now       time.Time
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	f := &lifecycleFixture{
		orders:    mocks.NewOrderAPI(t),
		feedback:  mocks.NewFeedbackServiceInterface(t),
		receipts:  mocks.NewReceiptRepository(t),
		publisher: mocks.NewEventPublisher(t),
		scheduler: &fakeScheduler{},
		now:       time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC),
	}
	f.lifecycle = service.NewOrderLifecycle(service.LifecycleDeps{
		Orders:      f.orders,
		Feedback:    f.feedback,
		Receipts:    f.receipts,
		Publisher:   f.publisher,
		Scheduler:   f.scheduler,
		Now:         func() time.Time { return f.now },
		ReviewDelay: 20 * time.Minute,
		Provisional: func() string { return "ORD-12345" },
	})
	return f
}

func (f *lifecycleFixture) expectJournal() {
	f.receipts.On("Record", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event domain.Event) bool {
		return event.Type == domain.EventOrderSubmitted
	})).Return(nil).Once()
}

func TestOrderLifecycle_EndToEnd(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	cart := service.NewCartStore()
	cart.Add(pizza, 0)

	snapshot, err := f.lifecycle.TakeSnapshot(cart.Read())
	require.NoError(t, err)
	assert.Equal(t, "ORD-12345", snapshot.ProvisionalNumber)
	assert.Equal(t, service.StateSnapshotTaken, f.lifecycle.State())

	f.orders.On("CreateOrder", ctx, []int{1}).
		Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()

	number, err := f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderNumber("ORD-42"), number)
	assert.Equal(t, service.StateSubmitted, f.lifecycle.State())

	current, ok := f.lifecycle.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "ORD-42", current.DisplayNumber())
	assert.Equal(t, 20*time.Minute, f.lifecycle.ReviewRemaining())
	assert.Equal(t, 20*time.Minute, f.scheduler.Last().delay)

	err = f.lifecycle.Review(ctx, 5, "Great")
	assert.ErrorIs(t, err, service.ErrReviewLocked)

	f.now = f.now.Add(20 * time.Minute)
	assert.Equal(t, 1, f.scheduler.Fire())
	assert.Equal(t, service.StateReviewUnlocked, f.lifecycle.State())

	f.feedback.On("Submit", ctx, mock.MatchedBy(func(n *string) bool { return n != nil && *n == "ORD-42" }), 5, "Great").
		Return(nil).Once()

	require.NoError(t, f.lifecycle.Review(ctx, 5, "Great"))
	assert.Equal(t, service.StateReviewed, f.lifecycle.State())
}

func TestOrderLifecycle_SubmitOnceConcurrent(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza, Quantity: 2}})
	require.NoError(t, err)

	release := make(chan time.Time)
	f.orders.On("CreateOrder", ctx, []int{1, 1}).
		WaitUntil(release).
		Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()

	const callers = 8
	results := make(chan error, callers)
	var started sync.WaitGroup
	started.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			started.Done()
			_, err := f.lifecycle.SubmitOnce(ctx)
			results <- err
		}()
	}
	started.Wait()

	assert.Eventually(t, func() bool {
		return f.lifecycle.State() == service.StateSubmitting
	}, time.Second, time.Millisecond)
	close(release)

	succeeded := 0
	for i := 0; i < callers; i++ {
		err := <-results
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, service.ErrSubmissionInFlight) || errors.Is(err, service.ErrAlreadySubmitted), err)
	}
	assert.Equal(t, 1, succeeded)
	f.orders.AssertNumberOfCalls(t, "CreateOrder", 1)
}

func TestOrderLifecycle_SubmitTwiceSequential(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)

	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()

	_, err = f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)

	_, err = f.lifecycle.SubmitOnce(ctx)
	assert.ErrorIs(t, err, service.ErrAlreadySubmitted)
	f.orders.AssertNumberOfCalls(t, "CreateOrder", 1)
}

func TestOrderLifecycle_SubmitFailureIsRetryable(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	before, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza, Quantity: 1}})
	require.NoError(t, err)

	remoteErr := &apiclient.APIError{Status: 400, Message: "Item 1 is not available"}
	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{}, remoteErr).Once()

	_, err = f.lifecycle.SubmitOnce(ctx)
	require.Error(t, err)
	assert.Equal(t, "Item 1 is not available", err.Error())
	assert.Equal(t, service.StateSnapshotTaken, f.lifecycle.State())
	assert.Equal(t, "Item 1 is not available", f.lifecycle.Status().LastError)

	after, ok := f.lifecycle.Snapshot()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Nil(t, f.scheduler.Last())

	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-43"}, nil).Once()
	f.expectJournal()

	number, err := f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderNumber("ORD-43"), number)
	assert.Empty(t, f.lifecycle.Status().LastError)
}

func TestOrderLifecycle_SubmitWithoutOrderNumberIsRetryable(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)

	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{}, nil).Once()

	number, err := f.lifecycle.SubmitOnce(ctx)
	assert.ErrorIs(t, err, service.ErrNoOrderNumber)
	assert.Empty(t, number)
	assert.Equal(t, service.StateSnapshotTaken, f.lifecycle.State())
	assert.Nil(t, f.scheduler.Last())

	current, ok := f.lifecycle.Snapshot()
	require.True(t, ok)
	assert.Empty(t, current.OrderNumber)

	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-44"}, nil).Once()
	f.expectJournal()

	number, err = f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderNumber("ORD-44"), number)
	assert.Equal(t, service.StateSubmitted, f.lifecycle.State())
}

func TestOrderLifecycle_AbandonDuringSubmission(t *testing.T) {
	tests := []struct {
		name        string
		created     domain.CreatedOrder
		remoteErr   error
		expectedErr error
	}{
		{
			name:        "order_created",
			created:     domain.CreatedOrder{OrderNumber: "ORD-42"},
			expectedErr: service.ErrFlowAbandoned,
		},
		{
			name:        "remote_failure",
			remoteErr:   apiclient.ErrTransport,
			expectedErr: apiclient.ErrTransport,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newLifecycleFixture(t)
			ctx := context.Background()

			_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
			require.NoError(t, err)

			release := make(chan time.Time)
			f.orders.On("CreateOrder", ctx, []int{1}).
				WaitUntil(release).
				Return(testCase.created, testCase.remoteErr).Once()

			type result struct {
				number domain.OrderNumber
				err    error
			}
			done := make(chan result, 1)
			go func() {
				number, err := f.lifecycle.SubmitOnce(ctx)
				done <- result{number, err}
			}()

			assert.Eventually(t, func() bool {
				return f.lifecycle.State() == service.StateSubmitting
			}, time.Second, time.Millisecond)
			f.lifecycle.Abandon()
			close(release)

			res := <-done
			assert.ErrorIs(t, res.err, testCase.expectedErr)
			assert.Empty(t, res.number)
			assert.Equal(t, service.StateNoOrder, f.lifecycle.State())
			assert.Nil(t, f.scheduler.Last())
			_, ok := f.lifecycle.Snapshot()
			assert.False(t, ok)
		})
	}
}

func TestOrderLifecycle_JournalFailuresAreSwallowed(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)

	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.receipts.On("Record", ctx, mock.MatchedBy(func(r *domain.Receipt) bool {
		return r.OrderNumber == "ORD-42" && r.ProvisionalNumber == "ORD-12345" && r.ItemCount == 1 && r.Total.String() == "9.99"
	})).Return(errors.New("db down")).Once()
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	_, err = f.lifecycle.SubmitOnce(ctx)
	assert.NoError(t, err)
	assert.Equal(t, service.StateSubmitted, f.lifecycle.State())
}

func TestOrderLifecycle_SnapshotIsIsolatedFromCart(t *testing.T) {
	f := newLifecycleFixture(t)

	cart := service.NewCartStore()
	cart.Add(pizza, 1)

	_, err := f.lifecycle.TakeSnapshot(cart.Read())
	require.NoError(t, err)

	cart.Add(domain.MenuItem{ID: 2, Name: "Salad", Price: domain.NewPrice("7.49")}, 1)

	snapshot, ok := f.lifecycle.Snapshot()
	require.True(t, ok)
	assert.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, cart.Len())
}

func TestOrderLifecycle_Transitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		run           func(f *lifecycleFixture) error
		expectedError error
		expectedState service.OrderState
	}{
		{
			name: "submit_without_snapshot",
			run: func(f *lifecycleFixture) error {
				_, err := f.lifecycle.SubmitOnce(ctx)
				return err
			},
			expectedError: service.ErrIllegalTransition,
			expectedState: service.StateNoOrder,
		},
		{
			name: "empty_cart_checkout",
			run: func(f *lifecycleFixture) error {
				_, err := f.lifecycle.TakeSnapshot(nil)
				return err
			},
			expectedError: service.ErrEmptyCart,
			expectedState: service.StateNoOrder,
		},
		{
			name: "review_without_order",
			run: func(f *lifecycleFixture) error {
				return f.lifecycle.Review(ctx, 5, "")
			},
			expectedError: service.ErrIllegalTransition,
			expectedState: service.StateNoOrder,
		},
		{
			name: "mark_reviewed_before_unlock",
			run: func(f *lifecycleFixture) error {
				if _, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}}); err != nil {
					return err
				}
				return f.lifecycle.MarkReviewed()
			},
			expectedError: service.ErrIllegalTransition,
			expectedState: service.StateSnapshotTaken,
		},
		{
			name: "start_timer_before_submit",
			run: func(f *lifecycleFixture) error {
				if _, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}}); err != nil {
					return err
				}
				return f.lifecycle.StartReviewTimer()
			},
			expectedError: service.ErrIllegalTransition,
			expectedState: service.StateSnapshotTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newLifecycleFixture(t)
			err := testCase.run(f)
			assert.ErrorIs(t, err, testCase.expectedError)
			assert.Equal(t, testCase.expectedState, f.lifecycle.State())
		})
	}
}

func TestOrderLifecycle_AbandonCancelsTimer(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)
	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()
	_, err = f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)

	timer := f.scheduler.Last()
	f.lifecycle.Abandon()

	assert.True(t, timer.stopped)
	assert.Equal(t, 0, f.scheduler.Fire())
	assert.Equal(t, service.StateNoOrder, f.lifecycle.State())
	_, ok := f.lifecycle.Snapshot()
	assert.False(t, ok)
}

func TestOrderLifecycle_StaleTimerIgnoredAfterNewCheckout(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)
	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()
	_, err = f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)

	stale := f.scheduler.Last()
	_, err = f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)

	stale.fn()
	assert.Equal(t, service.StateSnapshotTaken, f.lifecycle.State())
}

func TestOrderLifecycle_FailedReviewKeepsUnlock(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza}})
	require.NoError(t, err)
	f.orders.On("CreateOrder", ctx, []int{1}).Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()
	_, err = f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)
	f.scheduler.Fire()

	f.feedback.On("Submit", ctx, mock.Anything, 4, "ok").
		Return(&apiclient.APIError{Status: 500, Message: "Failed to submit feedback"}).Once()

	err = f.lifecycle.Review(ctx, 4, "ok")
	require.Error(t, err)
	assert.Equal(t, service.StateReviewUnlocked, f.lifecycle.State())

	f.feedback.On("Submit", ctx, mock.Anything, 4, "ok").Return(nil).Once()
	require.NoError(t, f.lifecycle.Review(ctx, 4, "ok"))
	assert.Equal(t, service.StateReviewed, f.lifecycle.State())
}

func TestOrderLifecycle_StatusCountdown(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.TakeSnapshot([]domain.CartEntry{{Item: pizza, Quantity: 2}})
	require.NoError(t, err)
	f.orders.On("CreateOrder", ctx, []int{1, 1}).Return(domain.CreatedOrder{OrderNumber: "ORD-42"}, nil).Once()
	f.expectJournal()
	_, err = f.lifecycle.SubmitOnce(ctx)
	require.NoError(t, err)

	f.now = f.now.Add(15*time.Minute + 5*time.Second)
	status := f.lifecycle.Status()

	assert.Equal(t, service.StateSubmitted, status.State)
	assert.Equal(t, "ORD-42", status.DisplayNumber)
	assert.Equal(t, "19.98", status.Total.String())
	assert.Equal(t, "4:55", status.ReviewCountdown)
	require.NotNil(t, status.ReviewUnlockAt)
}

func TestComputeTotal(t *testing.T) {
	salad := domain.MenuItem{ID: 2, Price: domain.NewPrice("7.49")}
	broken := domain.MenuItem{ID: 3, Price: domain.NewPrice("abc")}

	tests := []struct {
		name     string
		entries  []domain.CartEntry
		expected string
	}{
		{name: "empty", entries: nil, expected: "0"},
		{name: "quantity_defaults_to_one", entries: []domain.CartEntry{{Item: pizza}}, expected: "9.99"},
		{name: "explicit_quantity", entries: []domain.CartEntry{{Item: pizza, Quantity: 3}}, expected: "29.97"},
		{name: "malformed_price_counts_zero", entries: []domain.CartEntry{{Item: broken}}, expected: "0"},
		{
			name:     "mixed",
			entries:  []domain.CartEntry{{Item: pizza}, {Item: broken, Quantity: 4}, {Item: salad, Quantity: 2}},
			expected: "24.97",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			total := service.ComputeTotal(domain.OrderSnapshot{Items: testCase.entries})
			assert.Equal(t, testCase.expected, total.String())
		})
	}
}

func TestComputeTotal_OrderIndependent(t *testing.T) {
	entries := []domain.CartEntry{
		{Item: pizza, Quantity: 2},
		{Item: domain.MenuItem{ID: 2, Price: domain.NewPrice("7.49")}},
		{Item: domain.MenuItem{ID: 3, Price: domain.NewPrice("11.25")}, Quantity: 3},
	}
	reversed := []domain.CartEntry{entries[2], entries[1], entries[0]}

	forward := service.ComputeTotal(domain.OrderSnapshot{Items: entries})
	backward := service.ComputeTotal(domain.OrderSnapshot{Items: reversed})
	assert.True(t, forward.Equal(backward))
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "20:00", service.FormatCountdown(20*time.Minute))
	assert.Equal(t, "0:09", service.FormatCountdown(9*time.Second))
	assert.Equal(t, "0:00", service.FormatCountdown(-time.Second))
}
