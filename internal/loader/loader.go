package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nconklindev/gradecalc/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	NameColumn  = 0
	ScoreColumn = 1
)

// Loader reads student records from the first sheet of an XLSX workbook.
type Loader struct {
	out io.Writer
	log logrus.FieldLogger
}

// New returns a Loader that reports missing files to out.
func New(out io.Writer, log logrus.FieldLogger) *Loader {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Loader{out: out, log: log}
}

// LoadStudents returns one student per data row, skipping the header row.
// A path that is not an existing readable file is reported and yields no
// students and no error.
func (l *Loader) LoadStudents(path string) ([]types.Student, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return l.unusable(path, err), nil
	}

	f, err := excelize.OpenFile(path)
	if errors.Is(err, fs.ErrPermission) {
		return l.unusable(path, err), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	header := firstPopulatedRow(rows)
	if header == -1 {
		return nil, nil
	}

	var students []types.Student
	for i := header + 1; i < len(rows); i++ {
		row := rows[i]
		// excelize pads gaps between populated rows with empty rows
		if len(row) == 0 {
			continue
		}

		s := ParseRow(row)
		rowNum := i + 1
		numeric, err := numericScoreCell(f, sheetName, rowNum)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q row %d: %w", sheetName, rowNum, err)
		}
		if !numeric {
			s = types.Student{Name: s.Name, Grade: types.Absent()}
		}

		l.log.WithFields(logrus.Fields{
			"sheet": sheetName,
			"row":   rowNum,
			"name":  s.Name,
		}).Debug("read student row")
		students = append(students, s)
	}

	return students, nil
}

func (l *Loader) unusable(path string, err error) []types.Student {
	l.log.WithField("path", path).WithError(err).Debug("input file not usable")
	fmt.Fprintln(l.out, "File does not exist.")
	return nil
}

// firstPopulatedRow returns the index of the first row with any cells, or
// -1 when the sheet is empty.
func firstPopulatedRow(rows [][]string) int {
	for i, row := range rows {
		if len(row) > 0 {
			return i
		}
	}
	return -1
}

// numericScoreCell reports whether the score cell on rowNum may hold a
// number. Boolean and error cells have numeric-looking raw values ("1",
// "0") and are rejected.
func numericScoreCell(f *excelize.File, sheet string, rowNum int) (bool, error) {
	name, err := excelize.CoordinatesToCellName(ScoreColumn+1, rowNum)
	if err != nil {
		return false, err
	}

	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return false, err
	}

	switch typ {
	case excelize.CellTypeBool, excelize.CellTypeError:
		return false, nil
	}
	return true, nil
}

// ParseRow builds a student from the name and score cells of a row.
func ParseRow(row []string) types.Student {
	name := cell(row, NameColumn)
	if name == "" {
		name = types.UnknownName
	}

	return types.Student{
		Name:  name,
		Grade: ParseScore(cell(row, ScoreColumn)),
	}
}

// ParseScore converts a raw cell value to a score, truncating any
// fractional part toward zero. Empty or non-numeric values are absent.
func ParseScore(raw string) types.Score {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Absent()
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return types.Absent()
	}

	val = math.Trunc(val)
	if val > math.MaxInt32 || val < math.MinInt32 {
		// Far outside 0..100 either way; keep it out of range without overflow.
		if val > 0 {
			return types.Present(math.MaxInt32)
		}
		return types.Present(math.MinInt32)
	}

	return types.Present(int(val))
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
