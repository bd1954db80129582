package fifo

import (
	"testing"

	"github.com/c360/fifokit/metric"
)

func BenchmarkPutGet(b *testing.B) {
	q, err := New[int](1024)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := q.Put(i); err != nil {
			b.Fatal(err)
		}
		if _, err := q.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPutGet_WithMetrics(b *testing.B) {
	registry := metric.NewMetricsRegistry()
	q, err := New[int](1024, WithMetrics[int](registry, "bench"))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := q.Put(i); err != nil {
			b.Fatal(err)
		}
		if _, err := q.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPutGet_Entry(b *testing.B) {
	q, err := New[Entry](1024)
	if err != nil {
		b.Fatal(err)
	}
	entry := Entry{ID: 1, Name: NewName("( entry [1] )"), Timestamp: 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := q.Put(entry); err != nil {
			b.Fatal(err)
		}
		if _, err := q.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	q, err := New[Entry](64, WithEncoder[Entry](Entry.AppendBinary))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 64; i++ {
		if err := q.Put(Entry{ID: uint32(i)}); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Snapshot()
	}
}
