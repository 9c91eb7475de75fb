// Package errs provides the error types shared by the document workflow tracker.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) used with errors.Is
//   - a struct type carrying the details of the failure
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// TransitionIsBlockedError is returned by the invoice workflow when a gated
// stage transition is refused; it lists every unmet condition so callers can
// show the full checklist instead of the first failure only.
package errs
