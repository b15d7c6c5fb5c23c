package queue

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clanops/clan-gateway/internal/api/metrics"
	"github.com/clanops/clan-gateway/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrStopped is returned by Enqueue once Stop has been called.
var ErrStopped = errors.New("dispatcher stopped")

// Dispatcher routes roster snapshots to a fixed set of workers by clan id, so
// snapshots of one clan are applied in the order they were accepted.
type Dispatcher struct {
	workers []chan ports.RosterSnapshotInput
	service ports.SnapshotService
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.SnapshotService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.RosterSnapshotInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.RosterSnapshotInput, channelBuffer)
	}
	return d
}

// Start launches the workers. They exit when ctx is cancelled or after Stop
// once their channel is drained.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a snapshot to the worker owning its clan. It blocks while
// that worker's buffer is full, until ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, snapshot ports.RosterSnapshotInput) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	idx := d.shardIndex(snapshot.ClanID)
	select {
	case d.workers[idx] <- snapshot:
		metrics.SnapshotQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop refuses new snapshots and waits for queued ones to be applied.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps a clan id deterministically to a worker index.
func (d *Dispatcher) shardIndex(clanID int64) int {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(clanID))
	h := fnv.New32a()
	_, _ = h.Write(b[:])
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.RosterSnapshotInput) {
	defer d.wg.Done()
	depth := metrics.SnapshotQueueDepth.WithLabelValues(strconv.Itoa(id))

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.process(ctx, id, snapshot)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, snapshot ports.RosterSnapshotInput) {
	start := time.Now()
	err := d.service.Process(ctx, snapshot)

	result := "ok"
	if err != nil {
		result = "error"
		d.log.Error().Err(err).
			Int64("clan_id", snapshot.ClanID).
			Int("worker_id", id).
			Msg("snapshot processing failed")
	}
	metrics.SnapshotProcessingDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
