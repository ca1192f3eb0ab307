// Package form evaluates a set of named field constraints against submitted
// values and collects per-field verdicts, error messages, and hints. It is the
// shape a form layer consumes on submit or blur.
package form
