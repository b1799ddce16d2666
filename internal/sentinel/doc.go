// Package sentinel defines the error kinds shared by every stage of the
// migration engine.
//
// Stages return these values (optionally wrapped) so callers can branch with
// errors.Is without depending on the package that produced the failure.
// Parse failures carry file and row context in typed errors that still match
// their sentinel.
package sentinel
