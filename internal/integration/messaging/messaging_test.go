package messaging

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
)

func TestEncodeEvent_WireFormat(t *testing.T) {
	event := entity.LedgerEvent{
		UserID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Entity:     entity.LedgerEntityGoal,
		Action:     entity.LedgerActionDeleted,
		EntityID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		OccurredAt: time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC),
	}

	body, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent error = %v", err)
	}

	want := `{"user_id":"11111111-1111-1111-1111-111111111111","entity":"goal","action":"deleted",` +
		`"entity_id":"22222222-2222-2222-2222-222222222222","occurred_at":"2024-05-01T10:00:00Z"}`
	if string(body) != want {
		t.Errorf("body = %s\nwant  %s", body, want)
	}

	decoded, err := DecodeEvent(body)
	if err != nil {
		t.Fatalf("DecodeEvent error = %v", err)
	}
	if decoded.UserID != event.UserID || decoded.Entity != event.Entity || decoded.Action != event.Action ||
		decoded.EntityID != event.EntityID || !decoded.OccurredAt.Equal(event.OccurredAt) {
		t.Errorf("decoded = %+v, want %+v", decoded, event)
	}
}

func TestDecodeEvent_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"missing user", `{"entity":"goal","action":"created"}`},
		{"unknown entity", `{"user_id":"11111111-1111-1111-1111-111111111111","entity":"budget","action":"created"}`},
		{"unknown action", `{"user_id":"11111111-1111-1111-1111-111111111111","entity":"goal","action":"archived"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeEvent([]byte(tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestProcess_Outcomes(t *testing.T) {
	valid, err := EncodeEvent(entity.NewLedgerEvent(uuid.New(), entity.LedgerEntityTransaction, entity.LedgerActionCreated, uuid.New()))
	if err != nil {
		t.Fatal(err)
	}

	ok := func(context.Context, entity.LedgerEvent) error { return nil }
	failing := func(context.Context, entity.LedgerEvent) error { return errors.New("redis down") }

	tests := []struct {
		name    string
		body    []byte
		handler EventHandler
		want    outcome
	}{
		{"handled", valid, ok, ack},
		{"handler fails", valid, failing, requeue},
		{"garbage", []byte(strings.Repeat("x", 10)), ok, drop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := process(context.Background(), tt.body, tt.handler); got != tt.want {
				t.Errorf("process() = %v, want %v", got, tt.want)
			}
		})
	}
}

// recordingAcknowledger captures how a delivery was settled.
type recordingAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
	at      time.Time
}

func (a *recordingAcknowledger) Ack(uint64, bool) error {
	a.acked, a.at = true, time.Now()
	return nil
}

func (a *recordingAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked, a.requeue, a.at = true, requeue, time.Now()
	return nil
}

func (a *recordingAcknowledger) Reject(_ uint64, requeue bool) error {
	return a.Nack(0, false, requeue)
}

func TestDeliver_Settlement(t *testing.T) {
	valid, err := EncodeEvent(entity.NewLedgerEvent(uuid.New(), entity.LedgerEntityGoal, entity.LedgerActionUpdated, uuid.New()))
	if err != nil {
		t.Fatal(err)
	}
	failing := func(context.Context, entity.LedgerEvent) error { return errors.New("redis down") }
	ok := func(context.Context, entity.LedgerEvent) error { return nil }
	const delay = 50 * time.Millisecond

	t.Run("handler failure requeues after the delay", func(t *testing.T) {
		acker := &recordingAcknowledger{}
		start := time.Now()
		deliver(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: valid}, failing, delay)

		if !acker.nacked || !acker.requeue {
			t.Fatalf("settlement = %+v, want nack with requeue", acker)
		}
		if elapsed := acker.at.Sub(start); elapsed < delay {
			t.Errorf("requeued after %v, want at least %v", elapsed, delay)
		}
	})

	t.Run("success acks immediately", func(t *testing.T) {
		acker := &recordingAcknowledger{}
		start := time.Now()
		deliver(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: valid}, ok, time.Hour)

		if !acker.acked {
			t.Fatalf("settlement = %+v, want ack", acker)
		}
		if elapsed := acker.at.Sub(start); elapsed >= time.Second {
			t.Errorf("ack took %v", elapsed)
		}
	})

	t.Run("garbage drops without requeue", func(t *testing.T) {
		acker := &recordingAcknowledger{}
		deliver(context.Background(), amqp091.Delivery{Acknowledger: acker, Body: []byte("nope")}, ok, time.Hour)

		if !acker.nacked || acker.requeue {
			t.Errorf("settlement = %+v, want nack without requeue", acker)
		}
	})

	t.Run("shutdown cuts the delay short", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		acker := &recordingAcknowledger{}
		start := time.Now()
		deliver(ctx, amqp091.Delivery{Acknowledger: acker, Body: valid}, failing, time.Hour)

		if !acker.nacked || !acker.requeue {
			t.Fatalf("settlement = %+v, want nack with requeue", acker)
		}
		if elapsed := time.Since(start); elapsed >= time.Second {
			t.Errorf("cancelled delivery waited %v", elapsed)
		}
	})
}
