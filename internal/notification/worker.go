package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Worker drains the outbox. Delivery failures are logged and the message
// dropped; there is no retry or ordering guarantee on this channel.
type Worker struct {
	queue  *Queue
	sender Sender
}

func NewWorker(q *Queue, s Sender) *Worker { return &Worker{queue: q, sender: s} }

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		msg, err := w.queue.Pop(ctx, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, redis.Nil) {
				continue // queue empty
			}
			log.Printf("notification: pop: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if err := w.sender.Send(ctx, msg); err != nil {
			log.Printf("notification: send %s: %v", msg.ID, err)
		}
	}
}
