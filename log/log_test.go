package log_test

import (
	"errors"
	"testing"

	"github.com/tarmac-project/extkit/log"
)

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tt := []struct {
		severity log.Severity
		want     string
	}{
		{log.SeverityInfo, "info"},
		{log.SeverityWarn, "warn"},
		{log.SeverityError, "error"},
		{log.Severity(42), "unknown"},
	}

	for _, tc := range tt {
		if got := tc.severity.String(); got != tc.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tc.severity, got, tc.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		input   string
		want    log.Severity
		wantErr error
	}{
		{"info", "info", log.SeverityInfo, nil},
		{"warn", "warn", log.SeverityWarn, nil},
		{"warning alias", "warning", log.SeverityWarn, nil},
		{"error", "error", log.SeverityError, nil},
		{"mixed case", "WARN", log.SeverityWarn, nil},
		{"unknown", "verbose", log.SeverityInfo, log.ErrUnknownSeverity},
		{"empty", "", log.SeverityInfo, log.ErrUnknownSeverity},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseSeverity(tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err == nil && got != tc.want {
				t.Fatalf("ParseSeverity(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
