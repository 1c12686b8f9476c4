package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderdesk/order-service/internal/core/ports"
)

type stubMailer struct {
	mu    sync.Mutex
	sent  []string
	fail  bool
	seen  chan struct{}
	block chan struct{}
}

func newStubMailer() *stubMailer {
	return &stubMailer{seen: make(chan struct{}, 64)}
}

func (m *stubMailer) SendOrderOutcome(_ context.Context, to string, _ bool) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	m.sent = append(m.sent, to)
	fail := m.fail
	m.mu.Unlock()
	m.seen <- struct{}{}
	if fail {
		return errors.New("smtp connection refused")
	}
	return nil
}

func (m *stubMailer) deliveries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func (m *stubMailer) waitDeliveries(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-m.seen:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

type stubGuard struct {
	mu       sync.Mutex
	attempts map[string]bool
	err      error
}

func newStubGuard() *stubGuard {
	return &stubGuard{attempts: make(map[string]bool)}
}

func (g *stubGuard) FirstAttempt(_ context.Context, orderID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return false, g.err
	}
	if g.attempts[orderID] {
		return false, nil
	}
	g.attempts[orderID] = true
	return true, nil
}

func notification(orderID string) ports.Notification {
	return ports.Notification{OrderID: orderID, Email: orderID + "@example.com", Success: true}
}

func TestDispatcher_DeliversScheduled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newStubMailer()
	d := NewDispatcher(2, 16, mailer, newStubGuard(), zerolog.Nop())
	d.Start(ctx)

	d.Schedule(notification("o1"))
	d.Schedule(notification("o2"))

	mailer.waitDeliveries(t, 2)
	if got := mailer.deliveries(); len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
}

func TestDispatcher_FullQueueDropsWithoutBlocking(t *testing.T) {
	// No workers started: the queue holds one notification and the second
	// must be dropped immediately rather than blocking the caller.
	mailer := newStubMailer()
	d := NewDispatcher(1, 1, mailer, nil, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		d.Schedule(notification("o1"))
		d.Schedule(notification("o2"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Schedule blocked on a full queue")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	mailer.waitDeliveries(t, 1)
	time.Sleep(50 * time.Millisecond)
	if got := mailer.deliveries(); len(got) != 1 || got[0] != "o1@example.com" {
		t.Fatalf("expected only the first notification delivered, got %v", got)
	}
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newStubMailer()
	mailer.fail = true
	d := NewDispatcher(1, 16, mailer, newStubGuard(), zerolog.Nop())
	d.Start(ctx)

	d.Schedule(notification("o1"))
	mailer.waitDeliveries(t, 1)

	// The worker survives the failure and keeps draining the queue.
	mailer.mu.Lock()
	mailer.fail = false
	mailer.mu.Unlock()
	d.Schedule(notification("o2"))
	mailer.waitDeliveries(t, 1)

	if got := mailer.deliveries(); len(got) != 2 {
		t.Fatalf("expected 2 delivery attempts, got %d", len(got))
	}
}

func TestDispatcher_GuardSkipsRepeatAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := newStubMailer()
	d := NewDispatcher(1, 16, mailer, newStubGuard(), zerolog.Nop())
	d.Start(ctx)

	d.Schedule(notification("o1"))
	d.Schedule(notification("o1"))

	mailer.waitDeliveries(t, 1)
	time.Sleep(50 * time.Millisecond)
	if got := mailer.deliveries(); len(got) != 1 {
		t.Fatalf("expected a single delivery for a repeated order, got %d", len(got))
	}
}

func TestDispatcher_GuardErrorDeliversAnyway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	guard := newStubGuard()
	guard.err = errors.New("redis down")
	mailer := newStubMailer()
	d := NewDispatcher(1, 16, mailer, guard, zerolog.Nop())
	d.Start(ctx)

	d.Schedule(notification("o1"))
	mailer.waitDeliveries(t, 1)

	if got := mailer.deliveries(); len(got) != 1 {
		t.Fatalf("expected delivery despite guard failure, got %d", len(got))
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	mailer := newStubMailer()
	mailer.block = make(chan struct{})
	d := NewDispatcher(1, 16, mailer, nil, zerolog.Nop())
	d.Start(ctx)

	cancel()
	close(mailer.block)

	// Workers are gone; scheduling still never blocks.
	for i := 0; i < 32; i++ {
		d.Schedule(notification("late"))
	}
}

func TestDispatcher_Defaults(t *testing.T) {
	d := NewDispatcher(0, 0, newStubMailer(), nil, zerolog.Nop())
	if d.workers != defaultWorkers {
		t.Fatalf("workers = %d, want %d", d.workers, defaultWorkers)
	}
	if cap(d.jobs) != defaultCapacity {
		t.Fatalf("capacity = %d, want %d", cap(d.jobs), defaultCapacity)
	}
}
