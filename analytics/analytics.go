// Package analytics is the fire-and-forget event sink. Emit publishes
// named events ("order_placed", "page_viewed", ...) to a Redis channel; a
// background worker drains them into MongoDB for reporting.
package analytics

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"grillz/db"
	"grillz/models"
	"grillz/rdx"
)

const eventsChannel = "storefront-events"

// Emit publishes an event. Failures are logged and dropped; analytics
// never blocks or fails a storefront operation.
func Emit(ctx context.Context, name, sessionID string, properties map[string]string) {
	event := models.TrackEvent{
		Name:       name,
		SessionID:  sessionID,
		Properties: properties,
		OccurredAt: time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("analytics: marshal %s failed: %v", name, err)
		return
	}
	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("analytics: publish %s failed: %v", name, err)
	}
}

// StartWorker subscribes to the events channel and persists events into
// MongoDB until the context is cancelled. Run it in its own goroutine.
func StartWorker(ctx context.Context) {
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	defer sub.Close()
	ch := sub.Channel()

	log.Println("analytics worker: listening for storefront events")
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event models.TrackEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("analytics worker: bad payload: %v", err)
				continue
			}
			if _, err := db.TrackEventsCollection.InsertOne(ctx, event); err != nil {
				log.Printf("analytics worker: insert failed: %v", err)
			}
		}
	}
}
