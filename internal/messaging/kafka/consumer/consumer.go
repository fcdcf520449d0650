package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	retryBackoff    = time.Second
	maxRetryBackoff = 30 * time.Second
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type BalanceApplier interface {
	ApplyApprovedLeave(ctx context.Context, in employee.ApplyLeaveInput) error
}

func NewReader(broker, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     groupID,
		Topic:       events.LeaveRequestTopic,
		StartOffset: kafkago.FirstOffset,
	})
}

func ConsumeLeaveRequests(
	ctx context.Context,
	reader MessageReader,
	balances BalanceApplier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_request")
	log.Info("leave request consumer started", zap.String("topic", events.LeaveRequestTopic))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave request consumer stopped")
				return
			}
			log.Error("fetch leave request message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, balances, log) {
			log.Info("leave request consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave request message failed", zap.Error(err))
		}
	}
}

// handleWithRetry keeps retrying a message until it may be committed. The
// group offset only moves forward, so a skipped message would never come back.
// It returns false only when ctx is done.
func handleWithRetry(ctx context.Context, msg kafkago.Message, balances BalanceApplier, log *zap.Logger) bool {
	delay := retryBackoff
	for !HandleMessage(ctx, msg, balances, log) {
		log.Warn("retrying leave request message",
			zap.Int64("offset", msg.Offset),
			zap.Duration("backoff", delay),
		)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxRetryBackoff {
			delay = maxRetryBackoff
		}
	}
	return true
}

// HandleMessage processes one message and reports whether it may be
// committed. Transient failures return false and the caller retries.
func HandleMessage(ctx context.Context, msg kafkago.Message, balances BalanceApplier, log *zap.Logger) bool {
	var event events.LeaveRequestEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave request event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return true
	}

	if event.EventType != events.LeaveApproved {
		log.Debug("ignoring leave event", zap.String("event_type", event.EventType), zap.String("leave_id", event.LeaveID))
		return true
	}

	err := balances.ApplyApprovedLeave(ctx, employee.ApplyLeaveInput{
		LeaveID:   event.LeaveID,
		Email:     event.EmployeeEmail,
		LeaveType: event.LeaveType,
		Days:      event.TotalDays,
	})
	switch {
	case err == nil:
		log.Info("leave balance deducted",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_email", event.EmployeeEmail),
			zap.Int("days", event.TotalDays),
		)
		return true
	case errors.Is(err, employeeerrors.ErrLeaveAlreadyApplied):
		log.Warn("leave already deducted, skipping", zap.String("leave_id", event.LeaveID))
		return true
	case errors.Is(err, employeeerrors.ErrEmployeeNotFound),
		errors.Is(err, employeeerrors.ErrUnknownLeaveType),
		errors.Is(err, employeeerrors.ErrInvalidDays):
		log.Warn("leave event cannot be applied, skipping",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_email", event.EmployeeEmail),
			zap.Error(err),
		)
		return true
	default:
		log.Error("apply approved leave failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("employee_email", event.EmployeeEmail),
			zap.Error(err),
		)
		return false
	}
}
