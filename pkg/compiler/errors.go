package compiler

import (
	"errors"
	"fmt"

	"github.com/grovetools/sitekeys/pkg/keys"
)

var (
	ErrEmptyAlias  = errors.New("alias is required")
	ErrNoAction    = errors.New("binding has neither map nor callback")
	ErrInvalidMode = errors.New("invalid mode")
)

// RegistrationError reports one binding that could not be registered.
// It never aborts the pass that produced it.
type RegistrationError struct {
	Domain string
	Alias  string
	Key    string
	Mode   keys.Mode
	Err    error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registering key %q (alias %q, domain %s, mode %s): %v", e.Key, e.Alias, e.Domain, e.Mode, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Report tallies one batch of registrations or removals.
type Report struct {
	Registered int
	Failed     int
	Errors     []error
}

func (r *Report) record(err error) {
	if err != nil {
		r.Failed++
		r.Errors = append(r.Errors, err)
		return
	}
	r.Registered++
}

// Merge adds o's counts and errors to r.
func (r *Report) Merge(o Report) {
	r.Registered += o.Registered
	r.Failed += o.Failed
	r.Errors = append(r.Errors, o.Errors...)
}

// Err joins every recorded error, or returns nil.
func (r Report) Err() error {
	return errors.Join(r.Errors...)
}

// Summary is the outcome of a Startup pass.
type Summary struct {
	RunID         string
	Unmaps        Report
	SearchEngines Report
	Maps          Report
	VMaps         Report
}

// Failed returns the number of failures across all phases.
func (s Summary) Failed() int {
	return s.Unmaps.Failed + s.SearchEngines.Failed + s.Maps.Failed + s.VMaps.Failed
}

// Err joins the errors of every phase.
func (s Summary) Err() error {
	return errors.Join(s.Unmaps.Err(), s.SearchEngines.Err(), s.Maps.Err(), s.VMaps.Err())
}
