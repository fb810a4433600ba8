package cron

import (
	"context"
	"log"
	"time"

	"tutorbase/config"
	busyRepoPkg "tutorbase/database/repository/busy"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeBusyWindowPrune = "busywindow:prune"

// InitPruneWorker runs the async worker and its periodic scheduler in the
// background. The prune task drops busy windows that ended before the
// configured retention cutoff so the collection does not grow without bound.
func InitPruneWorker(busyRepo busyRepoPkg.BusyRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBusyWindowPrune, handlePruneTask(busyRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[PruneWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PruneWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PruneWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Schedule the prune to run daily.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)
		if _, err := scheduler.Register("@daily", asynq.NewTask(TypeBusyWindowPrune, nil)); err != nil {
			log.Printf("[PruneWorker] failed to register prune schedule: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[PruneWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePruneTask(busyRepo busyRepoPkg.BusyRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		retention := config.AppConfig.BusyRetentionDays
		if retention <= 0 {
			retention = 30
		}
		cutoff := time.Now().UTC().AddDate(0, 0, -retention)

		removed, err := busyRepo.DeleteEndedBefore(cutoff)
		if err != nil {
			log.Printf("[PruneHandler] failed to prune busy windows: %v", err)
			return err
		}
		log.Printf("[PruneHandler] pruned %d busy windows ended before %s", removed, cutoff.Format(time.RFC3339))
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
			log.Printf("[PruneWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
