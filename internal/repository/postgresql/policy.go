package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/policy"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.Repository {
	return &policyRepository{db: db}
}

// policy_parameters holds a single row with id = 1.

func (r *policyRepository) Get(ctx context.Context) (policy.Parameters, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, late_penalty, over_quota_leave_penalty, unapproved_leave_penalty,
			   overtime_bonus_rate, monthly_leave_quota
		FROM policy_parameters
		WHERE id = 1
	`

	var p policy.Parameters
	err := q.QueryRow(ctx, query).Scan(
		&p.ID, &p.LatePenalty, &p.OverQuotaLeavePenalty, &p.UnapprovedLeavePenalty,
		&p.OvertimeBonusRate, &p.MonthlyLeaveQuota,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return policy.Parameters{}, policy.ErrParametersNotFound
		}
		return policy.Parameters{}, fmt.Errorf("failed to get policy parameters: %w", err)
	}

	return p, nil
}

func (r *policyRepository) Update(ctx context.Context, params policy.Parameters) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO policy_parameters (
			id, late_penalty, over_quota_leave_penalty, unapproved_leave_penalty,
			overtime_bonus_rate, monthly_leave_quota
		) VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			late_penalty = EXCLUDED.late_penalty,
			over_quota_leave_penalty = EXCLUDED.over_quota_leave_penalty,
			unapproved_leave_penalty = EXCLUDED.unapproved_leave_penalty,
			overtime_bonus_rate = EXCLUDED.overtime_bonus_rate,
			monthly_leave_quota = EXCLUDED.monthly_leave_quota
	`

	_, err := q.Exec(ctx, query,
		params.LatePenalty, params.OverQuotaLeavePenalty, params.UnapprovedLeavePenalty,
		params.OvertimeBonusRate, params.MonthlyLeaveQuota,
	)
	if err != nil {
		return fmt.Errorf("failed to update policy parameters: %w", err)
	}

	return nil
}
