// Package fifo provides a fixed-capacity single-producer/single-consumer
// FIFO queue with last-operation full/empty disambiguation, built-in
// statistics, and optional Prometheus metrics integration.
//
// # Overview
//
// A Fifo owns a slice of exactly N slots and two cursors. Both the empty
// and the full state present the same way - read cursor equals write
// cursor - so the queue records whether the last completed operation was a
// get. Coinciding cursors after a get mean empty; after a put they mean
// full. No occupied count is stored; Len derives it.
//
// This is the classic alternative to keeping an explicit size counter: the
// state fits in one boolean and the full test stays a single comparison,
// at the cost of having to check it before writing.
//
// # Quick Start
//
//	q, err := fifo.New[fifo.Entry](4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = q.Put(fifo.Entry{ID: 1, Name: fifo.NewName("first"), Timestamp: clk.Ticks()})
//	if errors.IsFull(err) {
//	    // queue saturated; drop, drain, or retry - caller's choice
//	}
//
//	entry, err := q.Get()
//	if errors.IsEmpty(err) {
//	    // queue drained
//	}
//
// With metrics and snapshot support:
//
//	q, err := fifo.New[fifo.Entry](4,
//	    fifo.WithMetrics[fifo.Entry](registry, "demo"),
//	    fifo.WithEncoder[fifo.Entry](fifo.Entry.AppendBinary),
//	)
//
// # Failure Semantics
//
// errors.ErrFifoFull and errors.ErrFifoEmpty are ordinary, expected
// conditions, classified Transient. A failed operation leaves the queue
// untouched (statistics record the rejection, queue state does not
// change). The queue never retries or waits internally; retry policy
// belongs to the caller, typically via pkg/retry.
//
// # State Machine
//
// States are derived, never stored:
//
//	Empty   --Put--> Partial (or Full when capacity is 1)
//	Partial --Put--> Partial | Full
//	Partial --Get--> Partial | Empty
//	Full    --Get--> Partial (or Empty when capacity is 1)
//	Full    --Put--> fails, no transition
//	Empty   --Get--> fails, no transition
//
// There is no terminal state. Wrap-around is exact: after any multiple of
// capacity successful puts the write cursor is back at its starting slot.
//
// # Concurrency
//
// The queue takes no internal locks, never blocks, and makes no atomicity
// guarantee across concurrent Put/Get calls. It is meant for
// single-threaded, synchronous use; callers sharing a queue across
// goroutines must serialize access themselves (a mutex, or a strict
// producer/consumer handoff). Statistics counters are atomic so external
// observers may read them concurrently.
//
// # Observability
//
// Statistics are always collected (atomic counters, no configuration) and
// available via Stats(). Prometheus metrics are optional via WithMetrics:
// counters for puts, gets, and both rejection kinds, plus size and
// utilization gauges.
//
// # Diagnostics
//
// Snapshot renders the queue's memory as bytes - cursor header plus every
// slot through the configured Encoder - for the pkg/hexdump listing. It is
// purely observational and may be skipped entirely in production use.
package fifo
