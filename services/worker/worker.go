package worker

import (
	"context"
	"encoding/json"
	"time"

	"sjsage522/kijijiworker/internal/scraper"
	"sjsage522/kijijiworker/logger"
	"sjsage522/kijijiworker/services/publisher"
)

// streamKey is the field under which a car batch is published
const streamKey = "b64_cars"

// CarSource produces a normalized car batch
type CarSource interface {
	FetchCars(ctx context.Context) ([]scraper.Car, error)
	GetName() string
}

// Worker periodically scrapes the listing page and publishes each batch
type Worker struct {
	ctx            context.Context
	source         CarSource
	publisher      publisher.Publisher
	log            *logger.Logger
	scrapeInterval time.Duration
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	source CarSource,
	pub publisher.Publisher,
	scrapeInterval time.Duration,
) *Worker {
	return &Worker{
		ctx:            ctx,
		source:         source,
		publisher:      pub,
		log:            logger.ForWorker(),
		scrapeInterval: scrapeInterval,
	}
}

// Start runs the scrape-and-publish loop until the context is cancelled.
// Each round is one synchronous pipeline invocation; a failed round is
// logged and the loop moves on to the next tick.
func (w *Worker) Start() error {
	ticker := time.NewTicker(w.scrapeInterval)
	defer ticker.Stop()

	w.scrapeAndPublish()

	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-ticker.C:
			w.scrapeAndPublish()
		}
	}
}

// scrapeAndPublish scrapes one batch of cars and publishes it
func (w *Worker) scrapeAndPublish() {
	start := time.Now()

	cars, err := w.source.FetchCars(w.ctx)
	if err != nil {
		w.log.Error().
			Str("scraper", w.source.GetName()).
			Err(err).
			Msg("Scrape round failed")
		return
	}

	batch, err := json.Marshal(cars)
	if err != nil {
		w.log.Error().Err(err).Msg("Failed to marshal car batch")
		return
	}

	if err := w.publisher.Publish(streamKey, batch); err != nil {
		w.log.Error().Err(err).Msg("Failed to publish car batch")
		return
	}

	if err := w.publisher.TrimStreams(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
	}

	w.log.Info().
		Int("count", len(cars)).
		Dur("elapsed", time.Since(start)).
		Msg("Published car batch")
}
