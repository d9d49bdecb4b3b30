package errors

import (
	"errors"
	"fmt"
)

// Metadata keys carried by cascade errors
const (
	MetaOperation = "operation"
	MetaStage     = "stage"
	MetaCompleted = "completed"
)

// CascadeInterrupted reports a multi-entity operation that failed after it
// had started mutating entities. Nothing is rolled back: the stage reached
// and the steps already applied travel in the metadata so an operator can
// reconcile by hand.
func CascadeInterrupted(operation, stage string, completed []string, cause error) *Error {
	steps := make([]string, len(completed))
	copy(steps, completed)

	return &Error{
		Code:    CodeAborted,
		Message: fmt.Sprintf("%s interrupted at %s", operation, stage),
		Cause:   cause,
		Meta: map[string]interface{}{
			MetaOperation: operation,
			MetaStage:     stage,
			MetaCompleted: steps,
		},
	}
}

// IsCascadeInterrupted checks if an error is an interrupted cascade
func IsCascadeInterrupted(err error) bool {
	var customErr *Error
	if !errors.As(err, &customErr) || customErr.Code != CodeAborted {
		return false
	}
	_, ok := customErr.Meta[MetaStage]
	return ok
}

// CascadeStage returns the stage an interrupted cascade stopped at
func CascadeStage(err error) string {
	stage, _ := GetMeta(err)[MetaStage].(string)
	return stage
}
