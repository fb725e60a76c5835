package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"hotel-concierge/config"
	"hotel-concierge/feed-svc/internal/domain"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const DefaultRegisterTimeout = 10 * time.Second

// NotificationListener is the part of *pq.Listener the change source uses.
type NotificationListener interface {
	Listen(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Close() error
}

var _ NotificationListener = (*pq.Listener)(nil)

type ListenerFactory func(connInfo string, callback pq.EventCallbackType) NotificationListener

func NewPQListener(connInfo string, callback pq.EventCallbackType) NotificationListener {
	return pq.NewListener(connInfo, time.Second, time.Minute, callback)
}

// PostgresChangeSource streams inserts on orders from the NOTIFY channel
// filled by the orders insert trigger.
type PostgresChangeSource struct {
	Backend         config.Backend
	Channel         string
	RegisterTimeout time.Duration
	NewListener     ListenerFactory
	logger          *zap.Logger
}

func NewPostgresChangeSource(backend config.Backend, channel string, registerTimeout time.Duration, logger *zap.Logger) *PostgresChangeSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registerTimeout <= 0 {
		registerTimeout = DefaultRegisterTimeout
	}
	return &PostgresChangeSource{
		Backend:         backend,
		Channel:         channel,
		RegisterTimeout: registerTimeout,
		NewListener:     NewPQListener,
		logger:          logger,
	}
}

// Subscribe registers the listener, giving up after RegisterTimeout or when
// ctx ends. The returned channel is closed when ctx ends or the connection
// drops after registration; a dropped connection is not re-established.
func (s *PostgresChangeSource) Subscribe(ctx context.Context) (<-chan domain.OrderEvent, error) {
	connInfo, err := s.Backend.ConnInfo()
	if err != nil {
		return nil, err
	}

	var registered atomic.Bool
	lost := make(chan error, 1)
	listener := s.NewListener(connInfo, func(ev pq.ListenerEventType, err error) {
		if ev != pq.ListenerEventDisconnected || !registered.Load() {
			return
		}
		select {
		case lost <- fmt.Errorf("listener connection lost: %v", err):
		default:
		}
	})

	regCtx, cancel := context.WithTimeout(ctx, s.RegisterTimeout)
	defer cancel()

	// Listen waits for a connection and does not observe ctx; Close releases it.
	listenErr := make(chan error, 1)
	go func() { listenErr <- listener.Listen(s.Channel) }()

	select {
	case err := <-listenErr:
		if err != nil {
			listener.Close()
			return nil, fmt.Errorf("listen %s: %w", s.Channel, err)
		}
	case <-regCtx.Done():
		listener.Close()
		return nil, fmt.Errorf("listen %s: %w", s.Channel, regCtx.Err())
	}
	registered.Store(true)

	notifications := listener.NotificationChannel()
	events := make(chan domain.OrderEvent)
	go func() {
		defer close(events)
		defer listener.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-lost:
				s.logger.Warn("order change feed stopped", zap.String("channel", s.Channel), zap.Error(err))
				return
			case n, ok := <-notifications:
				if !ok {
					return
				}
				if n == nil {
					continue
				}
				event, err := ParseInsertNotification([]byte(n.Extra))
				if err != nil {
					s.logger.Warn("skipping malformed order notification", zap.String("channel", s.Channel), zap.Error(err))
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// ParseInsertNotification turns a row_to_json payload into an unresolved event.
func ParseInsertNotification(payload []byte) (domain.OrderEvent, error) {
	var row domain.InsertedRow
	if err := json.Unmarshal(payload, &row); err != nil {
		return domain.OrderEvent{}, fmt.Errorf("decode order row: %w", err)
	}
	return domain.OrderEvent{Order: row.Partial()}, nil
}
