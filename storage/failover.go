package storage

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Failover is the single entry point for reads and appends. It wraps the
// primary and replica handles together with a local in-memory store, and
// routes each call to the best backend currently available: reads prefer the
// replica, then the primary, then the local store; appends only ever target
// the primary, since replicas are read-only. An I/O error from a remote
// backend demotes its handle and the call falls through to the local store's
// current contents, so no operation ever fails outward.
type Failover struct {
	primary *Handle
	replica *Handle
	local   *MemoryListStore
}

// NewFailover builds the facade over the given handles, either of which may
// be nil (an absent backend behaves exactly like an unhealthy one).
func NewFailover(primary, replica *Handle) *Failover {
	return &Failover{
		primary: primary,
		replica: replica,
		local:   NewMemoryListStore(),
	}
}

// Range returns the list stored at key. Worst case it is empty, never an
// error.
func (s *Failover) Range(ctx context.Context, key string) []string {
	if h := s.pickReader(); h != nil {
		entries, err := h.store.Range(ctx, key)
		if err == nil {
			return entries
		}
		h.fail(err)
		log.WithFields(log.Fields{
			"backend": h.name,
			"key":     key,
			"err":     err,
		}).Warn("Read failed, serving local contents")
	}
	entries, _ := s.local.Range(ctx, key)
	return entries
}

// Append stores value at the end of the list at key and returns the full
// list as seen by whichever backend actually serviced the write. When the
// primary accepts the write but the read-back fails, the value is durable
// upstream yet the returned snapshot is the local store's: the two tiers are
// out of sync on purpose and reconcile only through a restart.
func (s *Failover) Append(ctx context.Context, key string, value string) []string {
	if h := s.primary; h.Healthy() {
		entries, err := h.store.Append(ctx, key, value)
		if err == nil {
			return entries
		}
		h.fail(err)
		log.WithFields(log.Fields{
			"key": key,
			"err": err,
		}).Warn("Append failed, landing entry in the local store")
	}
	entries, _ := s.local.Append(ctx, key, value)
	return entries
}

// Info describes the backend serving writes: the primary's own info payload
// when it is up, the local store's fixed notice otherwise.
func (s *Failover) Info(ctx context.Context) string {
	if h := s.primary; h.Healthy() {
		info, err := h.store.Info(ctx)
		if err == nil {
			return info
		}
		h.fail(err)
	}
	return MemoryInfo
}

func (s *Failover) pickReader() *Handle {
	if s.replica.Healthy() {
		return s.replica
	}
	if s.primary.Healthy() {
		return s.primary
	}
	return nil
}
