package policy

import "context"

type Service interface {
	Get(ctx context.Context) (ParametersResponse, error)
	Update(ctx context.Context, req UpdateParametersRequest) (ParametersResponse, error)
}
