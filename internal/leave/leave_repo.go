package leave

import (
	"context"
	"encoding/json"

	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/localstore"
	"go-leave/internal/shared/apperror"
)

type Repository interface {
	// ListAdmin reports found=false when the admin list has never been written.
	ListAdmin(ctx context.Context) (list []LeaveRequest, found bool, err error)
	SaveAdmin(ctx context.Context, list []LeaveRequest) error
	ListHistory(ctx context.Context, email string) ([]LeaveRequest, error)
	SaveHistory(ctx context.Context, email string, list []LeaveRequest) error
}

type repository struct {
	store localstore.Store
}

func NewRepository(store localstore.Store) Repository {
	return &repository{store: store}
}

func (r *repository) ListAdmin(ctx context.Context) ([]LeaveRequest, bool, error) {
	return r.read(ctx, AdminStoreKey)
}

func (r *repository) SaveAdmin(ctx context.Context, list []LeaveRequest) error {
	return r.write(ctx, AdminStoreKey, list)
}

func (r *repository) ListHistory(ctx context.Context, email string) ([]LeaveRequest, error) {
	list, _, err := r.read(ctx, HistoryKey(email))
	return list, err
}

func (r *repository) SaveHistory(ctx context.Context, email string, list []LeaveRequest) error {
	return r.write(ctx, HistoryKey(email), list)
}

func (r *repository) read(ctx context.Context, key string) ([]LeaveRequest, bool, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return []LeaveRequest{}, false, nil
	}

	list := []LeaveRequest{}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, true, apperror.Wrap(err, leaveerrors.ErrStoreCorrupted)
	}
	return list, true, nil
}

func (r *repository) write(ctx context.Context, key string, list []LeaveRequest) error {
	if list == nil {
		list = []LeaveRequest{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, raw)
}
