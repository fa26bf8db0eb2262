package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"coffee-fleet-backend/internal/store"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers that push "brew ready" messages to
// every stored browser subscription.
type WorkerPool struct {
	size    int
	jobs    chan string
	store   store.Store
	webpush *webpush.Options
	sender  NotificationSender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, s store.Store, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size), // Buffered channel
		store:   s,
		webpush: webpushOptions,
		sender:  &WebPushSender{}, // Use the real sender by default
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case brewID := <-wp.jobs:
			log.Printf("Worker %d processing brew %s", id, brewID)
			wp.sendNotificationsForBrew(brewID)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a completed brew id to the worker pool. It satisfies
// brewsim.Notifier.
func (wp *WorkerPool) Dispatch(brewID string) {
	wp.jobs <- brewID
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// sendNotificationsForBrew looks the brew up and pushes a ready message to
// every subscription.
func (wp *WorkerPool) sendNotificationsForBrew(brewID string) {
	brew, ok := wp.store.GetBrew(brewID)
	if !ok {
		log.Printf("Brew %s no longer exists; skipping notifications", brewID)
		return
	}

	subscriptions := wp.store.ListPushSubscriptions()
	if len(subscriptions) == 0 {
		return
	}

	log.Printf("Sending %d notifications for brew %s", len(subscriptions), brewID)

	machineLabel := brew.MachineID
	if machine, ok := wp.store.GetMachine(brew.MachineID); ok && machine.Name != "" {
		machineLabel = machine.Name
	}

	message := fmt.Sprintf("Your %s at %s is ready!", brew.CoffeeType, machineLabel)
	for _, sub := range subscriptions {
		wp.sendNotification(sub.Endpoint, sub.P256DH, sub.Auth, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(endpoint, p256dh, auth string, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: endpoint,
		Keys: webpush.Keys{
			P256dh: p256dh,
			Auth:   auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", endpoint)
		wp.store.DeletePushSubscription(endpoint)
	}
}
