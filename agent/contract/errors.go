package contract

import "errors"

var (
	ErrDecisionService    = errors.New("decision service call failed")
	ErrSchemaViolation    = errors.New("decision output violates schema")
	ErrDuplicateOperation = errors.New("operation already registered")
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrMissingArgument    = errors.New("missing required argument")
	ErrOperationExecution = errors.New("operation execution failed")
	ErrOrderingViolation  = errors.New("ordering violation")
	ErrParse              = errors.New("order details parse failed")
	ErrValidation         = errors.New("validation failed")
)
