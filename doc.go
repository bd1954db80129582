// Package fifokit provides a fixed-capacity FIFO queue built on a circular
// buffer, together with the supporting packages a small queueing service
// needs: record types, monotonic timestamps, hex dumps, retry policy,
// classified errors, and Prometheus metrics.
//
// # Architecture
//
// The module is organized around one core package and a set of leaf
// utilities:
//
//	┌─────────────────────────────────────┐
//	│          cmd/fifodemo               │  Demo harness: put, dump,
//	│   (flags, config, logging, run)     │  get workload with metrics
//	└─────────────────────────────────────┘
//	           ↓ drives
//	┌─────────────────────────────────────┐
//	│             fifo                    │  Generic circular queue,
//	│  (Fifo[T], Entry, stats, options)   │  statistics, snapshots
//	└─────────────────────────────────────┘
//	           ↓ uses
//	┌─────────────────────────────────────┐
//	│  errors  metric  pkg/retry          │  Classified errors,
//	│  pkg/timestamp  pkg/hexdump         │  observability, utilities
//	└─────────────────────────────────────┘
//
// # Core Semantics
//
// The queue has a fixed number of slots chosen at construction. Both
// cursors wrap modulo the capacity, so the states "empty" and "full" look
// identical from the cursors alone; a flag recording whether the last
// completed operation was a read disambiguates them. A put against a full
// queue and a get against an empty queue fail without changing any state.
//
// The queue performs no internal locking. A single producer and a single
// consumer that never overlap need no synchronization; any other usage
// must be synchronized by the caller. Statistics counters are atomic so
// metric scrapes and reporters may read them from other goroutines.
//
// # Quick Start
//
//	q, err := fifo.New[fifo.Entry](4)
//	if err != nil {
//		return err
//	}
//
//	err = q.Put(fifo.Entry{ID: 1, Name: fifo.NewName("first")})
//	if errors.IsFull(err) {
//		// queue is saturated; drain or drop
//	}
//
//	entry, err := q.Get()
//	if errors.IsEmpty(err) {
//		// nothing buffered
//	}
//
// The cmd/fifodemo binary exercises the whole surface: it saturates a
// small queue, optionally hex-dumps a snapshot of its memory, drains it in
// order, and reports statistics, with optional Prometheus exposition.
package fifokit
