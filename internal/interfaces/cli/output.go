package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoopstats/internal/usecase"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	apiVersion  = "1.0"
	errorDomain = "hoopstats"
)

type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Reason  string `json:"reason"`
}

type mappedError struct {
	ExitCode int
	Reason   string
	Status   string
}

// printer writes command results either as aligned text tables or as one
// JSON envelope per command.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) json() bool {
	return p.format == formatJSON
}

// result prints data as JSON, or calls table to render it as text.
func (p *printer) result(data any, table func(tw *tabwriter.Writer)) error {
	if p.json() {
		return sonic.ConfigDefault.NewEncoder(p.w).Encode(envelope{APIVersion: apiVersion, Data: data})
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func row(tw *tabwriter.Writer, cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		switch v := c.(type) {
		case float64:
			parts[i] = fmt.Sprintf("%.2f", v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

// WriteError prints err in the selected output format and returns the
// process exit code for it.
func (c *CLI) WriteError(w io.Writer, err error) int {
	return writeError(w, c.format, err)
}

func writeError(w io.Writer, format string, err error) int {
	mapped := mapError(err)
	if format == formatJSON {
		_ = sonic.ConfigDefault.NewEncoder(w).Encode(envelope{
			APIVersion: apiVersion,
			Error: &errorBody{
				Code:    mapped.ExitCode,
				Message: err.Error(),
				Status:  mapped.Status,
				Reason:  mapped.Reason,
			},
		})
		return mapped.ExitCode
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return mapped.ExitCode
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mapError(err).ExitCode
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{ExitCode: 2, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{ExitCode: 3, Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrNoData):
		return mappedError{ExitCode: 4, Reason: "noData", Status: "FAILED_PRECONDITION"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{ExitCode: 5, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	default:
		return mappedError{ExitCode: 1, Reason: "internalError", Status: "INTERNAL"}
	}
}
