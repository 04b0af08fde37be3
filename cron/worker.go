package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stayhub/config"
	"stayhub/services/booking"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitLifecycleWorker runs the async booking lifecycle worker in background.
// It completes confirmed bookings after checkout and expires bookings the
// host never confirmed.
func InitLifecycleWorker(engine booking.BookingEngine) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TaskTypeBookingComplete, handleCompleteTask(engine))
	mux.HandleFunc(booking.TaskTypeBookingExpire, handleExpireTask(engine))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[LifecycleWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[LifecycleWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[LifecycleWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCompleteTask(engine booking.BookingEngine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p booking.LifecyclePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[LifecycleWorker] Invalid completion payload: %v", err)
			return err
		}

		_, err := engine.Complete(p.BookingID)
		if err != nil {
			// A booking cancelled before checkout is not an error; the task
			// is simply stale.
			if code := booking.ErrCode(err); code == booking.CodeInvalidState || code == booking.CodeNotFound {
				log.Printf("[LifecycleWorker] Skipping completion of booking %s: %v", p.BookingID, err)
				return nil
			}
			log.Printf("[LifecycleWorker] Failed to complete booking %s: %v", p.BookingID, err)
			return err
		}
		log.Printf("[LifecycleWorker] Completed booking %s", p.BookingID)
		return nil
	}
}

func handleExpireTask(engine booking.BookingEngine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p booking.LifecyclePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[LifecycleWorker] Invalid expiry payload: %v", err)
			return err
		}

		if err := engine.ExpirePending(p.BookingID); err != nil {
			if booking.ErrCode(err) == booking.CodeNotFound {
				log.Printf("[LifecycleWorker] Skipping expiry of booking %s: %v", p.BookingID, err)
				return nil
			}
			log.Printf("[LifecycleWorker] Failed to expire booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[LifecycleWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
