package health

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mem0Configured bool
		wantSummary    string
	}{
		{name: "mem0 not configured", mem0Configured: false, wantSummary: "Not configured"},
		{name: "mem0 configured", mem0Configured: true, wantSummary: "Configured"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewReporter("0.1.0", tt.mem0Configured)
			report := r.Report()

			assert.Equal(t, StatusOK, report.Status)
			assert.Equal(t, "0.1.0", report.Version)
			assert.Equal(t, tt.mem0Configured, report.Mem0Configured)
			assert.Equal(t, tt.mem0Configured, r.Mem0Configured())
			assert.Equal(t, "0.1.0", r.Version())
			assert.Equal(t, tt.wantSummary, r.Summary())
		})
	}
}

func TestReport_JSONKeys(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewReporter("1.2.3", true).Report())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","version":"1.2.3","mem0_configured":true}`, string(data))
}

func TestReporter_ReportIsStable(t *testing.T) {
	t.Parallel()

	r := NewReporter("0.1.0", false)
	first := r.Report()

	// Mutating a returned report must not leak into later reports
	first.Status = "broken"
	first.Mem0Configured = true

	assert.Equal(t, Report{Status: StatusOK, Version: "0.1.0", Mem0Configured: false}, r.Report())
}
