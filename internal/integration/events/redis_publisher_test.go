package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/raghusami/personal-finance-tracker/internal/application/adapter"
)

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	userID := uuid.New()

	sub := client.Subscribe(ctx, "notifications:"+userID.String())
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}

	publisher := NewRedisPublisher(client)
	publisher.Publish(ctx, userID, adapter.Event{
		Severity: adapter.SeveritySuccess,
		Message:  "Expense created",
	})

	select {
	case msg := <-sub.Channel():
		var event adapter.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if event.Severity != adapter.SeveritySuccess {
			t.Errorf("expected severity success, got %s", event.Severity)
		}
		if event.Message != "Expense created" {
			t.Errorf("expected message %q, got %q", "Expense created", event.Message)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the notification")
	}
}

func TestRedisPublisher_FailureIsSwallowed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	// A publisher against a dead Redis must not panic or surface an error.
	publisher := NewRedisPublisher(client)
	publisher.Publish(context.Background(), uuid.New(), adapter.Event{
		Severity: adapter.SeverityInfo,
		Message:  "still fine",
	})
}
