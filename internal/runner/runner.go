package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nconklindev/gradecalc/internal/grader"
	"github.com/nconklindev/gradecalc/internal/types"
)

const (
	Prompt = "Enter the path to your Excel file: "

	banner = `==================================================
     STUDENT GRADE CALCULATOR PROGRAM
==================================================

This program reads student grades from an Excel file
and calculates the letter grade for each student.

==================================================
`
)

// StudentSource loads the students stored at path.
type StudentSource interface {
	LoadStudents(path string) ([]types.Student, error)
}

type Runner struct {
	src StudentSource
	in  *bufio.Reader
	out io.Writer
}

func New(src StudentSource, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		src: src,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run resolves the input path from args or the prompt, then prints a
// letter grade for every loaded student. Only unexpected failures are
// returned; missing input and per-student problems are reported to out.
func (r *Runner) Run(args []string) error {
	fmt.Fprint(r.out, banner)

	path, err := r.resolvePath(args)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(r.out, "No path entered. Exiting.")
		return nil
	}

	students, err := r.src.LoadStudents(path)
	if err != nil {
		return fmt.Errorf("load students: %w", err)
	}
	if len(students) == 0 {
		fmt.Fprintln(r.out, "No students found.")
		return nil
	}

	fmt.Fprint(r.out, "\nProcessing grades...\n\n")
	for _, s := range students {
		fmt.Fprintln(r.out, FormatResult(grader.Evaluate(s)))
	}

	return nil
}

func (r *Runner) resolvePath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	fmt.Fprint(r.out, Prompt)
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read path: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// FormatResult renders the report line for one student.
func FormatResult(res types.Result) string {
	if !res.Valid {
		return fmt.Sprintf("%s has an invalid grade.", res.Name)
	}
	return fmt.Sprintf("%s: %s", res.Name, res.Letter)
}
