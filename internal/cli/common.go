package cli

import (
	"github.com/ksyq12/gvm-config/internal/config"
	"github.com/ksyq12/gvm-config/internal/output"
	"github.com/ksyq12/gvm-config/internal/template"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// silentError fails the command without printing anything more.
type silentError struct {
	err error
}

func (e silentError) Error() string {
	return e.err.Error()
}

func (e silentError) Unwrap() error {
	return e.err
}

// bindResolver registers the template options on cmd.
func bindResolver(cmd *cobra.Command) *config.Resolver {
	cmd.Flags().SortFlags = false
	return config.NewResolver(cmd.Flags())
}

// OutcomeResult is the JSON form of one rendered or failed template.
type OutcomeResult struct {
	Template string `json:"template"`
	Output   string `json:"output"`
	Error    string `json:"error,omitempty"`
}

// RenderResult is the JSON form of a render report.
type RenderResult struct {
	Success     bool            `json:"success"`
	Destination string          `json:"destination"`
	Rendered    []OutcomeResult `json:"rendered"`
	Failed      []OutcomeResult `json:"failed"`
}

func newRenderResult(report *template.Report) RenderResult {
	result := RenderResult{
		Destination: report.Destination,
		Rendered:    []OutcomeResult{},
		Failed:      []OutcomeResult{},
	}
	for _, o := range report.Outcomes {
		r := OutcomeResult{Template: o.Name, Output: o.Path}
		if o.OK() {
			result.Rendered = append(result.Rendered, r)
			continue
		}
		r.Error = o.Err.Error()
		result.Failed = append(result.Failed, r)
	}
	result.Success = len(result.Failed) == 0
	return result
}

// outputReport prints one line per template, or the JSON report
func outputReport(report *template.Report, jsonOutput bool) error {
	if jsonOutput {
		return output.JSON(newRenderResult(report))
	}

	for _, o := range report.Outcomes {
		if o.OK() {
			output.Success("Rendered '%s'", o.Path)
			continue
		}
		output.Error("Error: %v", o.Err)
	}
	return nil
}

// reportError returns the combined render failures of report, or nil.
// Every failure has already been printed by outputReport, so in text mode
// only a summary line is added.
func reportError(report *template.Report, jsonOutput bool) error {
	err := report.Err()
	if err == nil {
		return nil
	}
	if !jsonOutput {
		output.Error("Error: %d of %d templates failed", len(multierr.Errors(err)), len(report.Outcomes))
	}
	return silentError{err}
}
