package grader

import "github.com/nconklindev/gradecalc/internal/types"

const (
	MinScore = 0
	MaxScore = 100

	InvalidGrade = "Invalid grade"
)

// Letters lists the letter grades from best to worst.
var Letters = []string{"A", "B", "C", "D", "F"}

// Summary counts graded results per letter.
type Summary struct {
	Counts  map[string]int
	Invalid int
	Total   int
}

// CalculateGrade maps a score to its letter grade. Scores outside
// 0..100 yield InvalidGrade.
func CalculateGrade(score int) string {
	switch {
	case score >= 90 && score <= 100:
		return "A"
	case score >= 80 && score <= 89:
		return "B"
	case score >= 70 && score <= 79:
		return "C"
	case score >= 60 && score <= 69:
		return "D"
	case score >= 0 && score <= 59:
		return "F"
	default:
		return InvalidGrade
	}
}

// InRange reports whether score is a gradeable value
func InRange(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// Evaluate grades a single student. A missing score is treated as
// out of range.
func Evaluate(s types.Student) types.Result {
	score, ok := s.Grade.Get()
	if !ok {
		score = types.MissingScore
	}

	if !InRange(score) {
		return types.Result{Name: s.Name}
	}

	return types.Result{
		Name:   s.Name,
		Letter: CalculateGrade(score),
		Valid:  true,
	}
}

// Tally counts results per letter grade.
func Tally(results []types.Result) Summary {
	sum := Summary{Counts: make(map[string]int, len(Letters))}
	for _, r := range results {
		sum.Total++
		if !r.Valid {
			sum.Invalid++
			continue
		}
		sum.Counts[r.Letter]++
	}
	return sum
}
