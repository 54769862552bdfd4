package support

import "sort"

const errEmptyTop = "support: Top called on empty set"

// Var is a non-negative Boolean variable index.
type Var = uint32

// Set is an ordered ascending sequence of Var with no duplicates.
// The zero value is the empty set and is ready to use.
type Set struct {
	body []Var
}

// New returns a Set containing the given variables, deduplicated and sorted
// ascending. The input slice is never retained or mutated.
func New(vars ...Var) Set {
	if len(vars) == 0 {
		return Set{}
	}

	body := make([]Var, len(vars))
	copy(body, vars)
	sort.Slice(body, func(i, j int) bool { return body[i] < body[j] })

	// dedupe in place
	out := body[:1]
	for _, v := range body[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return Set{body: out}
}

// Empty reports whether the set has no elements.
func (s Set) Empty() bool {
	return len(s.body) == 0
}

// Size returns the number of elements in the set.
func (s Set) Size() int {
	return len(s.body)
}

// Top returns the smallest variable in the set.
// Precondition: !s.Empty().
func (s Set) Top() Var {
	if len(s.body) == 0 {
		panic(errEmptyTop)
	}

	return s.body[0]
}

// Vars returns the ascending elements of the set. The returned slice must
// not be mutated by the caller; it aliases the set's own storage.
func (s Set) Vars() []Var {
	return s.body
}

// Contains reports whether v is a member of s.
func (s Set) Contains(v Var) bool {
	i := sort.Search(len(s.body), func(i int) bool { return s.body[i] >= v })
	return i < len(s.body) && s.body[i] == v
}

// Equal reports whether s and other contain exactly the same variables.
func (s Set) Equal(other Set) bool {
	if len(s.body) != len(other.body) {
		return false
	}
	for i, v := range s.body {
		if other.body[i] != v {
			return false
		}
	}

	return true
}
