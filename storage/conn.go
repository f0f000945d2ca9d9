package storage

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	stateUninitialized int32 = iota
	stateConnected
	stateErrored
)

// Handle pairs a ListStore with its health state. A handle starts
// uninitialized, becomes connected after a successful dial, and is demoted to
// errored on the first I/O failure. The demotion sticks for the rest of the
// process lifetime; a fresh handle only comes from a process restart.
type Handle struct {
	name  string
	store ListStore
	state int32
}

// NewHandle wraps an already usable store in a connected handle. The manager
// uses it after a successful dial; tests use it to inject fake backends.
func NewHandle(name string, store ListStore) *Handle {
	return &Handle{name: name, store: store, state: stateConnected}
}

// Healthy reports whether operations may be routed to this handle. A nil
// handle is simply an absent backend.
func (h *Handle) Healthy() bool {
	return h != nil && atomic.LoadInt32(&h.state) == stateConnected
}

// fail demotes the handle. Only the first demotion logs; later calls from
// concurrent requests are no-ops.
func (h *Handle) fail(err error) {
	if atomic.CompareAndSwapInt32(&h.state, stateConnected, stateErrored) {
		log.WithFields(log.Fields{
			"backend": h.name,
			"err":     err,
		}).Warn("Backend demoted, will not be retried")
	}
}

func (h *Handle) close() error {
	if h == nil {
		return nil
	}
	if c, ok := h.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Manager owns the process's connections to the external store: a writable
// primary and, when the primary is up, a read-only replica. It is constructed
// once at startup and never re-dials.
type Manager struct {
	primary *Handle
	replica *Handle
}

// Connect resolves cfg and dials whatever it resolves to. Connection
// failures are reported through logging and handle state, never as errors:
// the caller always gets a usable manager, possibly with no healthy handles.
func Connect(ctx context.Context, cfg Config) *Manager {
	m := &Manager{}
	target, ok := cfg.Resolve()
	if !ok {
		log.Info("No store configured, running on the in-process fallback only")
		return m
	}
	m.primary = dial(ctx, "primary", target)
	if m.primary.Healthy() {
		// A missing replica is a normal deployment shape, not a fault.
		m.replica = dial(ctx, "replica", replicaTarget())
	}
	return m
}

func dial(ctx context.Context, name string, target Target) *Handle {
	logger := log.WithFields(log.Fields{
		"backend": name,
		"addr":    target.Addr(),
	})
	client := redis.NewClient(&redis.Options{
		Addr:     target.Addr(),
		Password: target.Password,
	})
	h := &Handle{name: name, store: NewRedisListStore(client)}
	if err := client.Ping(ctx).Err(); err != nil {
		atomic.StoreInt32(&h.state, stateErrored)
		logger.WithField("err", err).Warn("Could not connect")
		return h
	}
	atomic.StoreInt32(&h.state, stateConnected)
	logger.Info("Connected")
	return h
}

func (m *Manager) Primary() *Handle { return m.primary }
func (m *Manager) Replica() *Handle { return m.replica }

// Close releases live connections best-effort. Failures are logged, not
// escalated; the process is exiting anyway.
func (m *Manager) Close() {
	for _, h := range []*Handle{m.replica, m.primary} {
		if err := h.close(); err != nil {
			log.WithFields(log.Fields{
				"backend": h.name,
				"err":     err,
			}).Warn("Could not release connection")
		}
	}
}
