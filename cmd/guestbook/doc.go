// Package main implements the guestbook server. Visitors append short text
// entries to a named list and read all prior entries back.
//
// The interesting part is not the HTTP surface but what backs it: reads and
// writes go through a failover facade over a writable Redis primary, an
// optional read-only replica at a fixed address, and an in-process store.
// Reads prefer the replica, then the primary; writes only ever hit the
// primary. When a backend fails it is demoted for the rest of the process
// lifetime and requests degrade to the in-process store instead of erroring,
// so the guestbook keeps answering even with no Redis at all.
//
// The primary is selected from the environment: either the full
// REDIS_HOST/REDIS_PORT/REDIS_PASSWORD triple, or the presence of
// REDIS_MASTER_SERVICE_PORT, which picks the well-known redis-master:6379.
// With neither, the server runs on the in-process store only.
package main // import "github.com/nicolagi/guestbook/cmd/guestbook"
