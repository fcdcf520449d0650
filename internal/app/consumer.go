package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/shared/connection"

	"go.uber.org/zap"
)

const balanceConsumerGroup = "go-leave-balance"

// RunConsumer applies approved leave from Kafka to employee balances until
// SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.OpenGORM(cfg, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	employeeService := employee.NewService(employee.NewRepository(gormDB), logger)

	reader := consumer.NewReader(cfg.KafkaBroker, balanceConsumerGroup)
	defer reader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer.ConsumeLeaveRequests(ctx, reader, employeeService, logger)

	logger.Info("consumer shut down")
	return nil
}
