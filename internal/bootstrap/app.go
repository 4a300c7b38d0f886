package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"managerdocs/internal/config"
	"managerdocs/internal/model"
	mysqlClient "managerdocs/internal/platform/mysql"
	rabbitmqClient "managerdocs/internal/platform/rabbitmq"
	redisClient "managerdocs/internal/platform/redis"
	"managerdocs/internal/repository"
	"managerdocs/internal/worker"
)

type App struct {
	Config         *config.Config
	MySQL          *gorm.DB
	Redis          *redis.Client
	MQConn         *amqp.Connection
	DocumentWorker *worker.DocumentPersistWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.Person{},
		&model.Program{},
		&model.Risk{},
		&model.ProgramUpdate{},
		&model.Session{},
		&model.ActionItem{},
		&model.Artifact{},
		&model.GeneratedDocument{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	documentRepo := repository.NewGeneratedDocumentRepository(mysqlDB)
	documentWorker := worker.NewDocumentPersistWorker(mqConn, documentRepo, cfg.RabbitMQ.DocumentPersistQueue)
	if err := documentWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start document worker failed: %w", err)
	}

	return &App{
		Config:         cfg,
		MySQL:          mysqlDB,
		Redis:          redisCli,
		MQConn:         mqConn,
		DocumentWorker: documentWorker,
		StartedAt:      time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DocumentWorker != nil {
		a.DocumentWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
