package leave

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/notify"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/audit"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, applicant Applicant, req SubmitLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	GetHistory(ctx context.Context, email string) ([]LeaveResponse, error)
	Approve(ctx context.Context, actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor, id, rejectionReason string) (LeaveResponse, error)
}

type service struct {
	repo      Repository
	publisher notify.Publisher
	outbox    kafka.OutboxRepository
	audit     audit.Logger
	logger    *zap.Logger
	now       func() time.Time

	// mu serialises read-modify-write of the lists within this process.
	mu     sync.Mutex
	loadSF singleflight.Group
}

func NewService(repo Repository, publisher notify.Publisher, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, publisher, nil, nil, logger...)
}

// NewServiceWithOutbox also queues lifecycle events for Kafka and writes
// decisions to the audit log. Either dependency may be nil.
func NewServiceWithOutbox(
	repo Repository,
	publisher notify.Publisher,
	outboxRepo kafka.OutboxRepository,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		outbox:    outboxRepo,
		audit:     auditLogger,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Submit(ctx context.Context, applicant Applicant, req SubmitLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_email", applicant.Email),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if strings.TrimSpace(applicant.Email) == "" {
		return LeaveResponse{}, leaveerrors.ErrMissingApplicant
	}
	if err := validateSubmitRequest(req); err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	record := LeaveRequest{
		ID:            uuid.NewString(),
		EmployeeName:  applicant.Name,
		EmployeeEmail: applicant.Email,
		Type:          req.LeaveType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Reason:        strings.TrimSpace(req.Reason),
		Status:        StatusPending,
		AppliedOn:     s.now().Format(dateLayout),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.repo.ListHistory(ctx, applicant.Email)
	if err != nil {
		log.Error("submit leave read history failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := s.repo.SaveHistory(ctx, applicant.Email, prepend(history, record)); err != nil {
		log.Error("submit leave write history failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	// an absent admin list reads as empty here; only the review side seeds it
	admin, _, err := s.repo.ListAdmin(ctx)
	if err == nil {
		err = s.repo.SaveAdmin(ctx, prepend(admin, record))
	}
	if err != nil {
		log.Error("submit leave write admin failed, stores diverged",
			zap.String("leave_id", record.ID),
			zap.String("employee_email", applicant.Email),
			zap.Error(err),
		)
		return LeaveResponse{}, apperror.Wrap(err, leaveerrors.ErrStoresDiverged)
	}

	s.notify(ctx, HistoryKey(applicant.Email), record, "submitted")
	s.enqueue(ctx, events.LeaveSubmitted, record)

	log.Info("submit leave success",
		zap.String("leave_id", record.ID),
		zap.String("employee_email", applicant.Email),
	)
	return mapToResponse(record), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	// the flight is shared, so one caller's cancellation must not fail the rest
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loadSF.Do(AdminStoreKey, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.adminListLocked(flightCtx)
	})
	if err != nil {
		return nil, err
	}

	list := v.([]LeaveRequest)
	resp := make([]LeaveResponse, 0, len(list))
	for _, l := range list {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		resp = append(resp, mapToResponse(l))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	list, err := s.GetAll(ctx, ListFilter{})
	if err != nil {
		return LeaveResponse{}, err
	}
	for _, l := range list {
		if l.ID == id {
			return l, nil
		}
	}
	return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
}

func (s *service) GetHistory(ctx context.Context, email string) ([]LeaveResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, leaveerrors.ErrMissingApplicant
	}
	list, err := s.repo.ListHistory(ctx, email)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(list), nil
}

func (s *service) Approve(ctx context.Context, actor, id string) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, actor, id, rejectionReason string) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, StatusRejected, strings.TrimSpace(rejectionReason))
}

// decide rewrites the status of one record in the admin list, then in the
// owner's history list. The two writes are independent: a history failure
// leaves the admin list updated and is reported, never rolled back.
func (s *service) decide(ctx context.Context, actor, id, targetStatus, rejectionReason string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("actor", actor),
		zap.String("target_status", targetStatus),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.adminListLocked(ctx)
	if err != nil {
		log.Error("decide leave read admin failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	idx := indexOf(admin, id)
	if idx < 0 {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	current := admin[idx]
	if !isAllowedStatusTransition(current.Status, targetStatus) {
		log.Warn("decide leave invalid status transition",
			zap.String("leave_id", id),
			zap.String("from_status", current.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	decided := applyDecision(current, actor, targetStatus, rejectionReason, s.now())
	admin[idx] = decided
	if err := s.repo.SaveAdmin(ctx, admin); err != nil {
		log.Error("decide leave write admin failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.updateHistoryLocked(ctx, decided); err != nil {
		log.Error("decide leave write history failed, stores diverged",
			zap.String("leave_id", id),
			zap.String("employee_email", decided.EmployeeEmail),
			zap.Error(err),
		)
		return LeaveResponse{}, apperror.Wrap(err, leaveerrors.ErrStoresDiverged)
	}

	s.notify(ctx, AdminStoreKey, decided, targetStatus)

	eventType := events.LeaveApproved
	auditAction := "LEAVE_APPROVED"
	if targetStatus == StatusRejected {
		eventType = events.LeaveRejected
		auditAction = "LEAVE_REJECTED"
	}
	s.enqueue(ctx, eventType, decided)
	s.audit.Log(ctx, audit.Entry{
		Action:  auditAction,
		Actor:   actor,
		Message: "leave request " + targetStatus,
		Meta: map[string]any{
			"leave_id":         decided.ID,
			"employee_email":   decided.EmployeeEmail,
			"leave_type":       decided.Type,
			"rejection_reason": decided.RejectionReason,
		},
	})

	log.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("from_status", current.Status),
		zap.String("to_status", targetStatus),
	)
	return mapToResponse(decided), nil
}

// adminListLocked reads the admin list, seeding it with the sample requests
// the first time it is read. Callers hold s.mu.
func (s *service) adminListLocked(ctx context.Context) ([]LeaveRequest, error) {
	list, found, err := s.repo.ListAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return list, nil
	}

	seed := seedRequests()
	if err := s.repo.SaveAdmin(ctx, seed); err != nil {
		return nil, err
	}
	s.logger.Info("admin leave store seeded", zap.Int("count", len(seed)))
	return seed, nil
}

// updateHistoryLocked mirrors a decision into the owner's history list. A
// record that is missing there is logged and skipped.
func (s *service) updateHistoryLocked(ctx context.Context, decided LeaveRequest) error {
	history, err := s.repo.ListHistory(ctx, decided.EmployeeEmail)
	if err != nil {
		return err
	}

	idx := indexOf(history, decided.ID)
	if idx < 0 {
		s.logger.Warn("leave missing from employee history",
			zap.String("leave_id", decided.ID),
			zap.String("employee_email", decided.EmployeeEmail),
		)
		return nil
	}

	history[idx] = decided
	return s.repo.SaveHistory(ctx, decided.EmployeeEmail, history)
}

func (s *service) notify(ctx context.Context, key string, l LeaveRequest, action string) {
	if s.publisher == nil {
		return
	}
	event := notify.NewStorageEvent(notify.StorageChange{
		Key:     key,
		LeaveID: l.ID,
		Status:  l.Status,
		Action:  action,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("storage notification failed", zap.String("leave_id", l.ID), zap.Error(err))
	}
}

// enqueue writes the lifecycle event to the outbox. The stores are already
// updated at this point, so a failure is logged and not returned.
func (s *service) enqueue(ctx context.Context, eventType string, l LeaveRequest) {
	if s.outbox == nil {
		return
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveRequestEvent{
		EventType:     eventType,
		RequestID:     rid,
		LeaveID:       l.ID,
		EmployeeName:  l.EmployeeName,
		EmployeeEmail: l.EmployeeEmail,
		LeaveType:     l.Type,
		StartDate:     l.StartDate,
		EndDate:       l.EndDate,
		TotalDays:     totalDays(l.StartDate, l.EndDate),
		Status:        l.Status,
		DecidedBy:     l.DecidedBy,
		OccurredAt:    s.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave event failed", zap.String("leave_id", l.ID), zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   l.ID,
		EventType:     eventType,
		Topic:         events.LeaveRequestTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("leave_id", l.ID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("leave outbox queued", zap.String("leave_id", l.ID), zap.String("event_type", eventType))
}

func validateSubmitRequest(req SubmitLeaveRequest) error {
	switch {
	case strings.TrimSpace(req.LeaveType) == "":
		return apperror.RequiredField("Leave Type")
	case strings.TrimSpace(req.StartDate) == "":
		return apperror.RequiredField("Start Date")
	case strings.TrimSpace(req.EndDate) == "":
		return apperror.RequiredField("End Date")
	case strings.TrimSpace(req.Reason) == "":
		return apperror.RequiredField("Reason")
	}

	if !IsValidType(req.LeaveType) {
		return leaveerrors.ErrInvalidLeaveType
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	if endDate.Before(startDate) {
		return leaveerrors.ErrInvalidDateRange
	}
	return nil
}

func isAllowedStatusTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}

func applyDecision(l LeaveRequest, actor, status, rejectionReason string, at time.Time) LeaveRequest {
	l.Status = status
	l.DecidedBy = actor
	l.DecidedAt = at.UTC().Format(time.RFC3339)
	if status == StatusRejected {
		l.RejectionReason = rejectionReason
	}
	return l
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// totalDays counts calendar days inclusively; unparsable ranges count as 0.
func totalDays(start, end string) int {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func prepend(list []LeaveRequest, l LeaveRequest) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(list)+1)
	out = append(out, l)
	return append(out, list...)
}

func indexOf(list []LeaveRequest, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:              l.ID,
		EmployeeName:    l.EmployeeName,
		EmployeeEmail:   l.EmployeeEmail,
		Type:            l.Type,
		TypeName:        TypeName(l.Type),
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		TotalDays:       totalDays(l.StartDate, l.EndDate),
		Reason:          l.Reason,
		Status:          l.Status,
		AppliedOn:       l.AppliedOn,
		DecidedBy:       l.DecidedBy,
		DecidedAt:       l.DecidedAt,
		RejectionReason: l.RejectionReason,
	}
}

func mapToListResponse(list []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, 0, len(list))
	for _, l := range list {
		resp = append(resp, mapToResponse(l))
	}
	return resp
}
