// Package errs provides standardized error types for the work-order service.
// Every error type follows the same pattern so that callers can classify
// failures with errors.Is and errors.As regardless of where they originate.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: unknown identifiers
//   - ConflictError: duplicate business keys
//   - ForbiddenError: role or ownership violations
//   - OperationFailedError: aborted multi-step operations such as batch reorders
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
