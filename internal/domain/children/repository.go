package children

import "context"

type Repository interface {
	Create(ctx context.Context, c Child) error
	GetByID(ctx context.Context, id string) (Child, error)
	GetByNIK(ctx context.Context, nik string) (Child, error)
	List(ctx context.Context) ([]Child, error)
	ListByParent(ctx context.Context, parentUserID string) ([]Child, error)
}
