package dsd

import "errors"

// ErrUnsupportedBDD describes a function that was not built by the Manager's
// own BDD() manager. No function in this package returns it: Decomp returns
// only an Edge and does not check which manager built its argument.
var ErrUnsupportedBDD = errors.New("dsd: function does not belong to this manager's BDD manager")

// invariantError marks a violated internal invariant of the decomposition
// engine: a hash-cons collision that disagrees with an existing entry, a
// merge reached with operands it cannot happen on, or similar "this must
// never happen" conditions. Per the non-recoverable error contract, these
// are raised by panic rather than returned.
type invariantError string

func (e invariantError) Error() string { return string(e) }

func invariant(cond bool, msg string) {
	if !cond {
		panic(invariantError(msg))
	}
}
