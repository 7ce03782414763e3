// Package ecode defines the error taxonomy of the task board and the message
// helpers used to build human-readable text.
//
// Three error kinds exist:
//   - DuplicateIDError: employee id collision on add or import
//   - ValidationError: missing required field, hours below minimum, malformed date
//   - NotFoundError: reference to a nonexistent employee, task or scheduled task
//
// Each kind matches a sentinel through errors.Is:
//
//	if errors.Is(err, ecode.ErrDuplicateID) {
//	    // report the collision
//	}
//
// Use errors.As to inspect the details:
//
//	var verr *ecode.ValidationError
//	if errors.As(err, &verr) {
//	    msg, _ := verr.Field("hours")
//	}
package ecode
