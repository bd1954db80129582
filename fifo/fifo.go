package fifo

import (
	"encoding/binary"
	"fmt"

	"github.com/c360/fifokit/errors"
)

// State describes the occupancy of a Fifo. It is derived from the cursors
// and the last-operation flag, never stored.
type State int

const (
	// Empty means the queue holds no entries.
	Empty State = iota
	// Partial means the queue holds at least one entry and has room for more.
	Partial
	// Full means the queue is at capacity.
	Full
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Partial:
		return "Partial"
	case Full:
		return "Full"
	default:
		return "Unknown"
	}
}

// Fifo is a fixed-capacity first-in-first-out queue over an owned slice of
// slots. The read and write cursors coincide both when the queue is empty
// and when it is full; the lastOpRead flag disambiguates: after a completed
// get the coincidence means empty, after a completed put it means full.
//
// Fifo is designed for single-producer/single-consumer use from one
// goroutine at a time. It takes no internal locks and never blocks; every
// operation is O(1) and returns immediately with success or a named
// failure. Callers that share a Fifo across goroutines must provide their
// own synchronization.
type Fifo[T any] struct {
	slots      []T
	rd, wr     int  // cursor positions in [0, capacity)
	lastOpRead bool // true when the last completed operation was a get

	stats   *Statistics  // always initialized for observability
	metrics *fifoMetrics // optional Prometheus metrics
	opts    *fifoOptions[T]
}

// New creates a Fifo with the given fixed capacity in the Empty state.
// Capacity is required and immutable; all other configuration is via
// functional options. Returns an error for non-positive capacity or when
// metrics registration fails.
func New[T any](capacity int, options ...Option[T]) (*Fifo[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity, "Fifo", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)

	var metrics *fifoMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newFifoMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Fifo", "New", "metrics registration")
		}
	}

	return &Fifo[T]{
		slots:      make([]T, capacity),
		lastOpRead: true, // cursors coincide and the queue is empty
		stats:      NewStatistics(),
		metrics:    metrics,
		opts:       opts,
	}, nil
}

// Put appends an item to the queue. It fails with errors.ErrFifoFull when
// the queue is at capacity, leaving the queue unchanged. The full test must
// run before anything is written: when the cursors coincide and the last
// completed operation was a put, every slot is occupied.
func (f *Fifo[T]) Put(item T) error {
	if !f.lastOpRead && f.rd == f.wr {
		f.stats.FullRejection()
		if f.metrics != nil {
			f.metrics.recordFullRejection()
		}
		return errors.ErrFifoFull
	}

	f.slots[f.wr] = item
	f.lastOpRead = false
	f.wr = (f.wr + 1) % len(f.slots)

	f.stats.Put()
	f.stats.UpdateSize(int64(f.Len()))
	if f.metrics != nil {
		f.metrics.recordPut(f.Len(), len(f.slots))
	}

	return nil
}

// Get removes and returns the oldest item in the queue. It fails with
// errors.ErrFifoEmpty when the queue holds nothing, leaving the queue
// unchanged. Entries come out in exactly the order they went in.
func (f *Fifo[T]) Get() (T, error) {
	var zero T

	if f.lastOpRead && f.rd == f.wr {
		f.stats.EmptyRejection()
		if f.metrics != nil {
			f.metrics.recordEmptyRejection()
		}
		return zero, errors.ErrFifoEmpty
	}

	item := f.slots[f.rd]
	f.slots[f.rd] = zero // clear for GC
	f.lastOpRead = true
	f.rd = (f.rd + 1) % len(f.slots)

	f.stats.Get()
	f.stats.UpdateSize(int64(f.Len()))
	if f.metrics != nil {
		f.metrics.recordGet(f.Len(), len(f.slots))
	}

	return item, nil
}

// Len returns the number of entries currently in the queue. The count is
// derived: coinciding cursors mean empty or full depending on the last
// operation; otherwise it is the cursor distance modulo capacity.
func (f *Fifo[T]) Len() int {
	if f.rd == f.wr {
		if f.lastOpRead {
			return 0
		}
		return len(f.slots)
	}
	return (f.wr - f.rd + len(f.slots)) % len(f.slots)
}

// Capacity returns the fixed number of slots.
func (f *Fifo[T]) Capacity() int {
	return len(f.slots)
}

// IsFull reports whether the queue is at capacity.
func (f *Fifo[T]) IsFull() bool {
	return !f.lastOpRead && f.rd == f.wr
}

// IsEmpty reports whether the queue holds no entries.
func (f *Fifo[T]) IsEmpty() bool {
	return f.lastOpRead && f.rd == f.wr
}

// State returns the derived occupancy state.
func (f *Fifo[T]) State() State {
	switch {
	case f.IsEmpty():
		return Empty
	case f.IsFull():
		return Full
	default:
		return Partial
	}
}

// Stats returns queue statistics (always available for observability).
func (f *Fifo[T]) Stats() *Statistics {
	return f.stats
}

// Snapshot returns a deterministic byte rendering of the queue's current
// memory for diagnostic dumping: a little-endian header of capacity, read
// cursor, write cursor, and last-operation flag, followed by every slot
// encoded with the configured encoder. Slots are omitted when no encoder
// was configured. Snapshot has no effect on queue state.
func (f *Fifo[T]) Snapshot() []byte {
	buf := make([]byte, 0, snapshotHeaderSize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(f.slots)))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(f.rd))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(f.wr))
	if f.lastOpRead {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	if enc := f.opts.encoder; enc != nil {
		for i := range f.slots {
			buf = enc(f.slots[i], buf)
		}
	}
	return buf
}

// snapshotHeaderSize is the fixed size of the Snapshot header: three
// uint32 fields and one flag byte.
const snapshotHeaderSize = 13
