package service

import (
	"context"
	"sort"
	"sync"

	"hotel-concierge/feed-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultLimit = 10

// Synchronizer keeps a bounded newest-first view of recent orders up to date
// from an initial read plus a change source.
type Synchronizer struct {
	reader OrderReader
	source ChangeSource
	logger *zap.Logger
}

func NewSynchronizer(reader OrderReader, source ChangeSource, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{reader: reader, source: source, logger: logger}
}

// Start performs the initial read and registers the change listener. Failures
// leave the subscription in the no_live_data state; nothing is retried.
func (s *Synchronizer) Start(ctx context.Context, limit int) *Subscription {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		limit:  limit,
		orders: []domain.Order{},
		cancel: cancel,
		done:   make(chan struct{}),
	}

	orders, err := s.reader.RecentOrders(ctx, limit)
	if err != nil {
		s.logger.Warn("initial order read failed", zap.Error(err))
		sub.fail("initial read failed: " + err.Error())
		return sub
	}
	sub.applySnapshot(0, orders)

	events, err := s.source.Subscribe(ctx)
	if err != nil {
		s.logger.Warn("order change listener registration failed", zap.Error(err))
		sub.fail("change listener registration failed: " + err.Error())
		return sub
	}

	sub.mu.Lock()
	sub.status = domain.FeedStatus{State: domain.StateLive, Connected: true}
	sub.mu.Unlock()

	sub.wg.Add(1)
	go s.run(ctx, sub, events)
	go func() {
		sub.wg.Wait()
		close(sub.done)
	}()
	return sub
}

func (s *Synchronizer) run(ctx context.Context, sub *Subscription, events <-chan domain.OrderEvent) {
	defer sub.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				if ctx.Err() == nil {
					sub.disconnect("change feed closed")
				}
				return
			}
			s.handle(ctx, sub, event)
		}
	}
}

func (s *Synchronizer) handle(ctx context.Context, sub *Subscription, event domain.OrderEvent) {
	order := event.Order
	if !event.Resolved {
		order.Items = []string{domain.PlaceholderItem}
	}
	sub.prepend(order)
	if event.Resolved {
		return
	}

	generation := sub.nextGeneration()
	sub.wg.Add(1)
	go func() {
		defer sub.wg.Done()
		orders, err := s.reader.RecentOrders(ctx, sub.limit)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn("order re-read failed", zap.String("order_id", order.ID.String()), zap.Error(err))
			}
			return
		}
		if !sub.applySnapshot(generation, orders) {
			s.logger.Debug("discarded order snapshot", zap.Uint64("generation", generation))
		}
	}()
}

// Subscription is one consumer's live view. It is safe for concurrent use.
type Subscription struct {
	mu sync.Mutex

	limit  int
	orders []domain.Order
	status domain.FeedStatus

	issued  uint64
	applied uint64
	stopped bool

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
}

func (s *Subscription) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Subscription) Status() domain.FeedStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Done is closed once the listener loop and every re-read it started have returned.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Stop releases the listener and cancels outstanding re-reads. The view is
// frozen from this point on, including against re-reads already in flight.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.status = domain.FeedStatus{State: domain.StateStopped, Diagnostic: s.status.Diagnostic}
		s.mu.Unlock()
		s.cancel()
	})
}

func (s *Subscription) fail(diagnostic string) {
	s.mu.Lock()
	s.status = domain.FeedStatus{State: domain.StateNoLiveData, Diagnostic: diagnostic}
	s.mu.Unlock()
	s.cancel()
	close(s.done)
}

func (s *Subscription) disconnect(diagnostic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.status = domain.FeedStatus{State: domain.StateNoLiveData, Diagnostic: diagnostic}
}

func (s *Subscription) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// prepend places an entry at its newest-first position and evicts past the
// limit. An entry older than the tail of a full view is dropped.
func (s *Subscription) prepend(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	next := make([]domain.Order, 0, len(s.orders)+1)
	for _, existing := range s.orders {
		if existing.ID != order.ID {
			next = append(next, existing)
		}
	}
	if len(next) >= s.limit && !newer(order, next[len(next)-1]) {
		s.orders = next
		return
	}

	pos := sort.Search(len(next), func(i int) bool { return newer(order, next[i]) })
	next = append(next, domain.Order{})
	copy(next[pos+1:], next[pos:])
	next[pos] = order
	s.orders = truncate(next, s.limit)
}

// applySnapshot replaces the view with a re-read result unless a newer
// re-read has already been applied. Entries whose seq is above the
// snapshot's highest seq were inserted after the read and are kept.
func (s *Subscription) applySnapshot(generation uint64, snapshot []domain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || (generation > 0 && generation <= s.applied) {
		return false
	}
	s.applied = generation

	var highWater int64
	seen := make(map[uuid.UUID]struct{}, len(snapshot))
	merged := make([]domain.Order, 0, len(snapshot)+len(s.orders))
	for _, order := range snapshot {
		if order.Seq > highWater {
			highWater = order.Seq
		}
		seen[order.ID] = struct{}{}
		merged = append(merged, order)
	}
	for _, order := range s.orders {
		if _, ok := seen[order.ID]; ok {
			continue
		}
		if order.Seq > highWater {
			merged = append(merged, order)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool { return newer(merged[i], merged[j]) })
	s.orders = truncate(merged, s.limit)
	return true
}

// newer orders by created_at, then by server sequence.
func newer(a, b domain.Order) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.Seq > b.Seq
}

func truncate(orders []domain.Order, limit int) []domain.Order {
	if len(orders) > limit {
		return orders[:limit]
	}
	return orders
}
