package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"jobbridge/internal/infrastructure/events"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestHub_PublishReachesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	if err := h.Publish(ctx, events.RecordsUpdated(events.EntityJob, "created", "7")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	select {
	case msg := <-c.send:
		var evt events.Event
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if evt.Type != events.TypeRecordsUpdated || evt.Entity != events.EntityJob || evt.ID != "7" {
			t.Fatalf("unexpected event %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no message delivered")
	}

	h.Unregister(c)
	waitFor(t, func() bool { return h.ClientCount() == 0 })
}

func TestHub_StopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	cancel()
	<-done

	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
}

func TestHub_RegisterAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	c := &Client{hub: h, send: make(chan []byte, 1)}
	returned := make(chan struct{})
	go func() {
		h.Register(c)
		h.Unregister(c)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatalf("register on a stopped hub did not return")
	}
	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
	if n := h.ClientCount(); n != 0 {
		t.Fatalf("expected no clients, got %d", n)
	}
}

func TestHub_EntityFilter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	jobsOnly := NewClient(h, nil, events.EntityJob)
	everything := NewClient(h, nil)
	h.Register(jobsOnly)
	h.Register(everything)
	waitFor(t, func() bool { return h.ClientCount() == 2 })

	if err := h.Publish(ctx, events.RecordsUpdated(events.EntityBeneficiary, "created", "1")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := h.Publish(ctx, events.RecordsUpdated(events.EntityJob, "closed", "2")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	waitFor(t, func() bool { return len(everything.send) == 2 })
	waitFor(t, func() bool { return len(jobsOnly.send) == 1 })

	var evt events.Event
	if err := json.Unmarshal(<-jobsOnly.send, &evt); err != nil || evt.Entity != events.EntityJob {
		t.Fatalf("job subscriber got %+v, %v", evt, err)
	}
}

func TestParseEntities(t *testing.T) {
	got, err := parseEntities(" Job, beneficiary ,,")
	if err != nil || len(got) != 2 || got[0] != "job" || got[1] != "beneficiary" {
		t.Fatalf("unexpected %v, %v", got, err)
	}
	if got, err := parseEntities(""); err != nil || len(got) != 0 {
		t.Fatalf("empty filter should subscribe to everything, got %v, %v", got, err)
	}
	if _, err := parseEntities("job,payroll"); err == nil {
		t.Fatalf("expected error for unknown entity")
	}
}

func TestHub_NilIsSafe(t *testing.T) {
	var h *Hub
	h.Broadcast("", []byte("x"))
	if h.ClientCount() != 0 {
		t.Fatalf("nil hub should report zero clients")
	}
	if err := h.Publish(context.Background(), events.Event{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
