package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/ippcode/core"
	"github.com/sarchlab/ippcode/program"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Name          string
	ProgramCount  int
	LintIssues    []Issue
	StructIssues  []Issue
	FlowIssues    []Issue
	ValidationErr error
	ValidationOK  bool
	Program       core.Program
}

// GenerateReport runs both lint and validation, returns a report
func GenerateReport(name string, insts []program.Instruction) *VerificationReport {
	report := &VerificationReport{
		Name:         name,
		ProgramCount: len(insts),
	}

	// Run lint
	report.LintIssues = RunLint(insts, program.DefaultISA())

	// Categorize issues
	for _, issue := range report.LintIssues {
		if issue.Type == IssueStruct {
			report.StructIssues = append(report.StructIssues, issue)
		} else {
			report.FlowIssues = append(report.FlowIssues, issue)
		}
	}

	// Run validation
	report.Program, report.ValidationErr = Validate(insts)
	report.ValidationOK = report.ValidationErr == nil

	return report
}

// ExitCode is the return code a run of this program would fail with at
// load time, or OK.
func (r *VerificationReport) ExitCode() core.ReturnCode {
	if !r.ValidationOK {
		return core.CodeOf(r.ValidationErr)
	}
	if _, err := core.BuildLabelTable(r.Program); err != nil {
		return core.CodeOf(err)
	}
	return core.OK
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "PROGRAM VERIFICATION REPORT: %s\n", r.Name)
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nLoaded %d instructions\n", r.ProgramCount)

	// STAGE 1: LINT
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "No lint issues found")
	} else {
		fmt.Fprintf(w, "Found %d lint issues (%d STRUCT, %d FLOW)\n\n",
			len(r.LintIssues), len(r.StructIssues), len(r.FlowIssues))

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Type", "Order", "Op", "Opcode", "Code", "Message"})
		for _, issue := range r.LintIssues {
			t.AppendRow(table.Row{
				issue.Type, issue.Order, issue.OpID, issue.Opcode, int(issue.Code), issue.Message,
			})
		}
		fmt.Fprintln(w, t.Render())
	}

	// STAGE 2: VALIDATION
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: VALIDATION")
	fmt.Fprintln(w, separator)

	if r.ValidationOK {
		fmt.Fprintf(w, "Decoded %d instructions\n", len(r.Program))
	} else {
		fmt.Fprintf(w, "Validation error: %v\n", r.ValidationErr)
	}

	// STAGE 3: SUMMARY
	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "VERIFICATION SUMMARY")
	fmt.Fprintln(w, separator)

	code := r.ExitCode()
	fmt.Fprintf(w, "Load Result: %d (%s)\n", int(code), code)
	if code == core.OK && len(r.FlowIssues) > 0 {
		fmt.Fprintln(w, "Program loads, but FLOW issues may fail the run")
	}

	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
