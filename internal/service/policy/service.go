package policy

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	repo policy.Repository
}

func NewPolicyService(repo policy.Repository) policy.Service {
	return &PolicyServiceImpl{repo: repo}
}

// Get implements policy.Service.
func (s *PolicyServiceImpl) Get(ctx context.Context) (policy.ParametersResponse, error) {
	params, err := s.repo.Get(ctx)
	if err != nil {
		return policy.ParametersResponse{}, err
	}
	return policy.NewParametersResponse(params), nil
}

// Update implements policy.Service.
func (s *PolicyServiceImpl) Update(ctx context.Context, req policy.UpdateParametersRequest) (policy.ParametersResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.ParametersResponse{}, err
	}

	params := policy.Parameters{
		ID:                     1,
		LatePenalty:            req.LatePenalty,
		OverQuotaLeavePenalty:  req.OverQuotaLeavePenalty,
		UnapprovedLeavePenalty: req.UnapprovedLeavePenalty,
		OvertimeBonusRate:      req.OvertimeBonusRate,
		MonthlyLeaveQuota:      req.MonthlyLeaveQuota,
	}
	if err := s.repo.Update(ctx, params); err != nil {
		return policy.ParametersResponse{}, err
	}

	return policy.NewParametersResponse(params), nil
}
