// Package errs defines the validation and lookup error taxonomy shared by
// every layer of the application.
//
// Four error families cover the recurring failure scenarios:
//   - ValueIsRequiredError: a mandatory parameter was empty or nil
//   - ValueIsInvalidError: a parameter was present but failed validation
//   - ValueIsOutOfRangeError: a numeric parameter fell outside its bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Every family pairs a sentinel (ErrValueIsRequired and friends) with a
// struct carrying the offending parameter name and, optionally, an
// underlying cause. The structs implement Error and Unwrap, so callers
// classify failures with errors.Is against the sentinel and still reach
// the cause chain through errors.As or Unwrap.
//
// Domain packages define their own rule errors (overfill, capacity,
// weight) in the same sentinel-plus-struct shape; this package holds only
// the domain-agnostic ones.
package errs
