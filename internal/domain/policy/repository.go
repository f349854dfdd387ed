package policy

import "context"

type Repository interface {
	// Get returns the singleton parameters row or ErrParametersNotFound.
	Get(ctx context.Context) (Parameters, error)

	// Update overwrites the singleton row.
	Update(ctx context.Context, params Parameters) error
}
