package types

// UnknownName is used when a row has no name cell.
const UnknownName = "Unknown"

// MissingScore is the out-of-range value an absent score maps to when it
// reaches range validation.
const MissingScore = -1

// Score is an optional integer score. The zero value is absent.
type Score struct {
	value int
	valid bool
}

// Present returns a score holding v.
func Present(v int) Score {
	return Score{value: v, valid: true}
}

// Absent returns a score with no value.
func Absent() Score {
	return Score{}
}

// Get returns the value and whether it is present.
func (s Score) Get() (int, bool) {
	return s.value, s.valid
}

type Student struct {
	Name  string
	Grade Score
}

type Result struct {
	Name   string
	Letter string
	Valid  bool
}
