package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/api/metrics"
	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// Dispatcher routes access events to a fixed set of workers by user id, so
// one user's events are written in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.AccessEvent
	service ports.AccessLogService
	log     zerolog.Logger
	wg      sync.WaitGroup
}

var _ ports.AccessRecorder = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AccessLogService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AccessEvent, numWorkers),
		service: service,
		log:     logger.Component(log, "access_dispatcher"),
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AccessEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record queues an event without blocking. When the shard is full the event
// is dropped and counted.
func (d *Dispatcher) Record(event domain.AccessEvent) {
	idx := d.shardIndex(event.UserID)
	select {
	case d.workers[idx] <- event:
		metrics.AccessLogQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.AccessLogDroppedTotal.Inc()
		d.log.Warn().Int64("user_id", event.UserID).Int("worker_id", idx).Msg("access log shard full, event dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(userID, 10)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AccessEvent) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-ch:
			metrics.AccessLogQueueDepth.WithLabelValues(label).Dec()

			start := time.Now()
			writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
			err := d.service.Process(writeCtx, event)
			cancel()

			outcome := "ok"
			if err != nil {
				outcome = "error"
				d.log.Error().Err(err).
					Int64("user_id", event.UserID).
					Int("worker_id", id).
					Msg("access event write failed")
			}
			metrics.AccessLogWriteDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		}
	}
}
