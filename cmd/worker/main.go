package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"blogboard/internal/logger"
	"blogboard/cmd/worker/handlers"
	"blogboard/config"
	"blogboard/db"
	"blogboard/eventbus"
	"blogboard/events"
	"blogboard/repositories"
)

func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicPostEvents, 3); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	newsletterRepo := repositories.NewNewsletterRepository(db.Database())
	eventHandlers := handlers.NewEventHandlers(newsletterRepo)

	groupID := eventbus.GetGroupID()

	subscribeRunner := func() error {
		return bus.Subscribe(ctx, groupID, eventbus.TopicPostEvents, func(ctx context.Context, ev eventbus.Event) error {
			// peek at the type first, BaseEvent.Type is top-level
			var peek struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(ev.Payload, &peek); err != nil {
				return err
			}
			switch events.EventType(peek.Type) {
			case events.PostPublished:
				v, err := eventbus.DecodeJSON[events.PostEvent](ev)
				if err != nil {
					return err
				}
				return eventHandlers.HandlePostPublished(ctx, &v)
			case events.PostDeleted:
				v, err := eventbus.DecodeJSON[events.PostEvent](ev)
				if err != nil {
					return err
				}
				return eventHandlers.HandlePostDeleted(ctx, &v)
			default:
				// unknown types or events for other services commit silently
				return nil
			}
		})
	}

	logger.Log.Info("starting worker service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscribeRunner(); err != nil && err != context.Canceled {
			logger.Log.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down worker service...")

	cancel()
	wg.Wait()

	logger.Log.Info("worker service stopped")
}
