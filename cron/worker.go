package cron

import (
	"context"
	"log"
	"time"

	"github.com/CorbanSy/PropDash-sub002/config"
	overrideRepo "github.com/CorbanSy/PropDash-sub002/database/repository/dateoverride"
	"github.com/CorbanSy/PropDash-sub002/utils"

	"github.com/hibiken/asynq"
)

const TypeOverridePurge = "override:purge"

// InitOverridePurgeWorker runs the async worker and its nightly schedule in
// the background. Past dates resolve to "past" before any other rule, so
// overrides for gone-by dates are dead weight; a 03:00 sweep deletes them.
func InitOverridePurgeWorker(overrides overrideRepo.DateOverrideRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverridePurge, handleOverridePurge(overrides))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeOverridePurge, nil)); err != nil {
		log.Printf("[OverridePurge] failed to register schedule: %v", err)
	}

	go func() {
		log.Println("[OverridePurge] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[OverridePurge] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[OverridePurge] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[OverridePurge] scheduler stopped: %v", err)
		}
	}()
}

func handleOverridePurge(overrides overrideRepo.DateOverrideRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := utils.DateKey(time.Now())
		deleted, err := overrides.DeleteBefore(ctx, today)
		if err != nil {
			log.Printf("[OverridePurge] sweep failed: %v", err)
			return err
		}
		log.Printf("[OverridePurge] removed %d expired override(s)", deleted)
		return nil
	}
}
