package notification

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"coffee-fleet-backend/internal/model"
	"coffee-fleet-backend/internal/store"
)

// mockSender is a mock implementation of the NotificationSender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	s := store.NewMemStore(clockwork.NewFakeClock())
	wp := NewWorkerPool(1, s, &webpush.Options{})

	// Dispatch a job
	wp.Dispatch("brew-123")

	// Check if the job is in the channel
	select {
	case job := <-wp.jobs:
		assert.Equal(t, "brew-123", job)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_WorkerLogic(t *testing.T) {
	s := store.NewMemStore(clockwork.NewFakeClock())
	wp := NewWorkerPool(1, s, &webpush.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	machine := s.CreateMachine(model.Machine{Name: "Downtown Office", Status: model.StatusOnline})

	t.Run("sends notification with machine name", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		brew := s.CreateBrew(model.Brew{MachineID: machine.ID, CoffeeType: "latte"})
		s.UpsertPushSubscription(model.PushSubscription{
			Endpoint: "https://example.com/push",
			P256DH:   "test_p256dh",
			Auth:     "test_auth",
		})

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "https://example.com/push", sub.Endpoint)
				assert.Equal(t, "Your latte at Downtown Office is ready!", string(payload))
				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.Dispatch(brew.ID)
		wg.Wait()
		assert.True(t, s.DeletePushSubscription("https://example.com/push"))
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		brew := s.CreateBrew(model.Brew{MachineID: machine.ID, CoffeeType: "espresso"})
		s.UpsertPushSubscription(model.PushSubscription{
			Endpoint: "https://example.com/expired",
			P256DH:   "test_p256dh_expired",
			Auth:     "test_auth_expired",
		})

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusGone,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.Dispatch(brew.ID)

		assert.Eventually(t, func() bool {
			_, ok := s.GetPushSubscription("https://example.com/expired")
			return !ok
		}, time.Second, 5*time.Millisecond, "expired subscription should be deleted")
	})

	t.Run("falls back to machine id when the machine is unknown", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		brew := s.CreateBrew(model.Brew{MachineID: "ghost-machine", CoffeeType: "mocha"})
		s.UpsertPushSubscription(model.PushSubscription{
			Endpoint: "https://example.com/fallback",
			P256DH:   "test_p256dh_fallback",
			Auth:     "test_auth_fallback",
		})

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "Your mocha at ghost-machine is ready!", string(payload))
				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.Dispatch(brew.ID)
		wg.Wait()
		assert.True(t, s.DeletePushSubscription("https://example.com/fallback"))
	})

	t.Run("vanished brew sends nothing", func(t *testing.T) {
		s.UpsertPushSubscription(model.PushSubscription{
			Endpoint: "https://example.com/quiet",
			P256DH:   "p",
			Auth:     "a",
		})

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				t.Error("no notification expected for a vanished brew")
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		wp.Dispatch("no-such-brew")

		// A short sleep to allow the worker to process the job
		time.Sleep(100 * time.Millisecond)
		assert.True(t, s.DeletePushSubscription("https://example.com/quiet"))
	})
}
