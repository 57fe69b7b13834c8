package event

import "testing"

func TestPublishReachesMatchingSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	sub := b.Subscribe("editor.insert-checklist")
	b.Publish("editor.insert-checklist", nil)

	select {
	case ev := <-sub.C():
		if ev.Topic != "editor.insert-checklist" {
			t.Errorf("got topic %q", ev.Topic)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestPublishSkipsOtherTopics(t *testing.T) {
	b := New()
	defer b.Close()

	sub := b.Subscribe("editor.insert-checklist")
	b.Publish("app.refresh", nil)

	select {
	case ev := <-sub.C():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestSubscribeAllTopics(t *testing.T) {
	b := New()
	defer b.Close()

	sub := b.Subscribe()
	b.Publish("anything", 42)

	ev := <-sub.C()
	if ev.Payload != 42 {
		t.Errorf("got payload %v, want 42", ev.Payload)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New()
	defer b.Close()

	sub := b.Subscribe("t")
	b.Unsubscribe(sub)

	if _, open := <-sub.C(); open {
		t.Fatal("channel should be closed after Unsubscribe")
	}

	// Double unsubscribe and nil are no-ops.
	b.Unsubscribe(sub)
	b.Unsubscribe(nil)
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	b := New()
	defer b.Close()

	sub := b.Subscribe("t")
	for i := 0; i < subscriptionBuffer+5; i++ {
		b.Publish("t", i)
	}

	received := 0
	for {
		select {
		case <-sub.C():
			received++
			continue
		default:
		}
		break
	}
	if received != subscriptionBuffer {
		t.Errorf("got %d events, want %d", received, subscriptionBuffer)
	}
}

func TestCloseShutsDownBus(t *testing.T) {
	b := New()
	sub := b.Subscribe("t")
	b.Close()

	if _, open := <-sub.C(); open {
		t.Fatal("channel should be closed after bus Close")
	}
	if got := b.Subscribe("t"); got != nil {
		t.Error("Subscribe on a closed bus should return nil")
	}
	b.Publish("t", nil) // must not panic
	b.Close()           // idempotent
}
