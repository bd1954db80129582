package fifo

import (
	"sync/atomic"
	"time"
)

// Statistics tracks queue operation counters. Counters are atomic so that
// observers (tests, metric scrapes, the demo reporter) may read them from
// other goroutines without adding any locking to the queue itself.
type Statistics struct {
	puts            atomic.Int64
	gets            atomic.Int64
	fullRejections  atomic.Int64
	emptyRejections atomic.Int64

	currentSize atomic.Int64
	maxSize     atomic.Int64

	startTime time.Time
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Put records a successful put operation.
func (s *Statistics) Put() {
	s.puts.Add(1)
}

// Get records a successful get operation.
func (s *Statistics) Get() {
	s.gets.Add(1)
}

// FullRejection records a put attempted against a saturated queue.
func (s *Statistics) FullRejection() {
	s.fullRejections.Add(1)
}

// EmptyRejection records a get attempted against a drained queue.
func (s *Statistics) EmptyRejection() {
	s.emptyRejections.Add(1)
}

// UpdateSize updates the current queue size, tracking the high-water mark.
func (s *Statistics) UpdateSize(size int64) {
	s.currentSize.Store(size)
	for {
		max := s.maxSize.Load()
		if size <= max || s.maxSize.CompareAndSwap(max, size) {
			return
		}
	}
}

// Puts returns the total number of successful put operations.
func (s *Statistics) Puts() int64 {
	return s.puts.Load()
}

// Gets returns the total number of successful get operations.
func (s *Statistics) Gets() int64 {
	return s.gets.Load()
}

// FullRejections returns the total number of puts rejected because the
// queue was full.
func (s *Statistics) FullRejections() int64 {
	return s.fullRejections.Load()
}

// EmptyRejections returns the total number of gets rejected because the
// queue was empty.
func (s *Statistics) EmptyRejections() int64 {
	return s.emptyRejections.Load()
}

// CurrentSize returns the last recorded queue size.
func (s *Statistics) CurrentSize() int64 {
	return s.currentSize.Load()
}

// MaxSize returns the largest size the queue has reached.
func (s *Statistics) MaxSize() int64 {
	return s.maxSize.Load()
}

// Throughput returns the average number of puts per second since start.
func (s *Statistics) Throughput() float64 {
	elapsed := time.Since(s.startTime)
	if elapsed == 0 {
		return 0.0
	}
	return float64(s.Puts()) / elapsed.Seconds()
}

// GetThroughput returns the average number of gets per second since start.
func (s *Statistics) GetThroughput() float64 {
	elapsed := time.Since(s.startTime)
	if elapsed == 0 {
		return 0.0
	}
	return float64(s.Gets()) / elapsed.Seconds()
}

// RejectionRate returns the fraction of put attempts that were rejected
// (0.0 to 1.0).
func (s *Statistics) RejectionRate() float64 {
	puts := s.Puts()
	rejections := s.FullRejections()
	attempts := puts + rejections
	if attempts == 0 {
		return 0.0
	}
	return float64(rejections) / float64(attempts)
}

// Utilization returns the current fill level relative to capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}
	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the queue has been running.
func (s *Statistics) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	s.puts.Store(0)
	s.gets.Store(0)
	s.fullRejections.Store(0)
	s.emptyRejections.Store(0)
	s.currentSize.Store(0)
	s.maxSize.Store(0)
	s.startTime = time.Now()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Puts            int64         `json:"puts"`
	Gets            int64         `json:"gets"`
	FullRejections  int64         `json:"full_rejections"`
	EmptyRejections int64         `json:"empty_rejections"`
	CurrentSize     int64         `json:"current_size"`
	MaxSize         int64         `json:"max_size"`
	Throughput      float64       `json:"throughput"`
	GetThroughput   float64       `json:"get_throughput"`
	RejectionRate   float64       `json:"rejection_rate"`
	Uptime          time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Puts:            s.Puts(),
		Gets:            s.Gets(),
		FullRejections:  s.FullRejections(),
		EmptyRejections: s.EmptyRejections(),
		CurrentSize:     s.CurrentSize(),
		MaxSize:         s.MaxSize(),
		Throughput:      s.Throughput(),
		GetThroughput:   s.GetThroughput(),
		RejectionRate:   s.RejectionRate(),
		Uptime:          s.Uptime(),
	}
}
