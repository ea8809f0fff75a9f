// Package upstream is the port for the remote growth backend. The sync
// layer programs against it and decides fallback by inspecting the error
// type, never by intercepting panics or blanket-matching every failure.
package upstream

import (
	"context"
	"errors"
	"fmt"

	"child-growth-tracker/internal/domain/children"
	"child-growth-tracker/internal/domain/growth"
)

// RemoteError marks a network or HTTP failure talking to the remote
// backend. It is the only error class that triggers the local fallback;
// anything else propagates to the caller.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err is (or wraps) a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// GrowthAPI is the consumed surface of the remote backend.
type GrowthAPI interface {
	FetchChildren(ctx context.Context) ([]children.Child, error)
	CreateChild(ctx context.Context, in children.CreateInput) (children.Child, error)
	ValidateNIK(ctx context.Context, nik string) (children.NIKValidation, error)

	FetchRecords(ctx context.Context, childID string) ([]growth.Record, error)
	CreateRecord(ctx context.Context, childID string, in growth.AddRecordInput) (growth.Record, error)
	FetchStats(ctx context.Context, childID string) (growth.Stats, error)
	FetchChart(ctx context.Context, childID string) (growth.Chart, error)
}
