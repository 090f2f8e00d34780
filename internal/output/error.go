package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// FormatError formats an error for display. JSON output uses the same
// failure envelope as façade results.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}
	return FormatErrorInfo(w, result.Normalize(err), format)
}

// FormatErrorInfo formats a normalized error.
func FormatErrorInfo(w io.Writer, info *result.ErrorInfo, format Format) error {
	if info == nil {
		return nil
	}

	if format == FormatJSON {
		return writeJSON(w, result.Result[any]{Error: info})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", info.Message)

	if len(info.Details) > 0 {
		keys := make([]string, 0, len(info.Details))
		for k := range info.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s\n", k, info.Details[k])
		}
	}

	if info.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", info.Suggestion)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatSuccess formats a success message.
func FormatSuccess(w io.Writer, message string, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, result.Success(map[string]string{"message": message}))
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
