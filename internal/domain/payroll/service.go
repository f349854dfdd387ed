package payroll

import "context"

type Service interface {
	// Compute runs the monthly payroll batch. A zero month/year pair selects
	// the previous calendar month.
	Compute(ctx context.Context, month, year int) (ComputeResponse, error)

	// List returns a filtered page of payroll records.
	List(ctx context.Context, filter Filter) (ListRecordsResponse, error)

	// Detail reconstructs one employee's monthly attendance breakdown.
	Detail(ctx context.Context, employeeID int64, month, year int) (DetailResponse, error)
}
