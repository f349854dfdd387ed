package policy

import "errors"

var (
	ErrParametersNotFound = errors.New("policy parameters not found")
)
