package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type Employee struct {
	ID           int64
	FullName     string
	Username     string
	PasswordHash string
	DateOfBirth  time.Time
	Gender       Gender
	Phone        string
	Email        string
	DepartmentID int64
	Position     string
	HireDate     time.Time
	BaseSalary   decimal.Decimal

	// Joined fields
	DepartmentName *string
}

// Department groups employees; listing filters by it.
type Department struct {
	ID   int64
	Name string
}
