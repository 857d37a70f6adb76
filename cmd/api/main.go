package main

import (
	"context"
	"flag"
	"os"

	"Tieba_Community/internal/config"
	"Tieba_Community/internal/pkg"
	"Tieba_Community/internal/repository/mysql"
	"Tieba_Community/internal/repository/redis"
	"Tieba_Community/internal/router"
	"Tieba_Community/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	resetSchema := flag.Bool("reset-schema", false, "drop and recreate all tables, then seed the smoke-test identity (destructive)")
	flag.Parse()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	if level, err := zerolog.ParseLevel(cfg.Server.LogLevel); err == nil {
		log = log.Level(level)
	}

	pkg.SetSecrets(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		log.Fatal().Err(err).Msg("mysql init failed")
	}

	schema := &mysql.SchemaManager{DB: mysql.DB}
	if *resetSchema {
		if err := schema.ResetSchema(); err != nil {
			log.Fatal().Err(err).Msg("schema reset failed")
		}
		log.Info().Msg("schema reset, smoke-test identity seeded")
		return
	}
	if err := schema.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	if err := redis.Init(redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}); err != nil {
		log.Fatal().Err(err).Msg("redis init failed")
	}
	defer redis.Close()

	// Engagement events: outbox rows drain to Kafka when a broker is
	// configured, otherwise to the log.
	sender := service.LogSender(log)
	if cfg.Kafka.Enabled {
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayCtx, cancelRelay := context.WithCancel(context.Background())
	defer cancelRelay()
	go service.NewOutboxRelayer(mysql.DB, sender, log).Run(relayCtx)

	r := router.InitRouter(mysql.DB, redis.NewHotBarCacheRepository())
	log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
