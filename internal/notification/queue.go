package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Queue is a redis-backed outbox. Notify pushes to a list; a Worker pops
// and dispatches. Enqueue failures are logged and swallowed so the
// triggering operation never observes them.
type Queue struct {
	rdb *redis.Client
	key string
}

func NewQueue(rdb *redis.Client, key string) *Queue {
	return &Queue{rdb: rdb, key: key}
}

func (q *Queue) Notify(ctx context.Context, token, title, body string) {
	if token == "" {
		return
	}
	msg := Message{
		ID:         uuid.NewString(),
		Token:      token,
		Title:      title,
		Body:       body,
		EnqueuedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("notification: marshal: %v", err)
		return
	}
	// don't let a slow redis hold the caller (or its transaction) open
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := q.rdb.LPush(pctx, q.key, payload).Err(); err != nil {
		log.Printf("notification: enqueue %s: %v", msg.ID, err)
	}
}

// Pop blocks up to timeout for the next queued message.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (*Message, error) {
	res, err := q.rdb.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		return nil, err
	}
	// BRPOP returns [key, value]
	var msg Message
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
