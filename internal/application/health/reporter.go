package health

// StatusOK is the only status a serving process reports
const StatusOK = "ok"

// Report represents the health of the API process
type Report struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	Mem0Configured bool   `json:"mem0_configured"`
}

// Reporter produces health reports from values fixed at startup
type Reporter struct {
	version        string
	mem0Configured bool
}

// NewReporter creates a new health reporter
func NewReporter(version string, mem0Configured bool) *Reporter {
	return &Reporter{
		version:        version,
		mem0Configured: mem0Configured,
	}
}

// Report returns the current health report
func (r *Reporter) Report() Report {
	return Report{
		Status:         StatusOK,
		Version:        r.version,
		Mem0Configured: r.mem0Configured,
	}
}

// Version returns the version the reporter was built with
func (r *Reporter) Version() string {
	return r.version
}

// Mem0Configured returns true if a mem0 credential was present at startup
func (r *Reporter) Mem0Configured() bool {
	return r.mem0Configured
}

// Summary describes the mem0 integration state for humans
func (r *Reporter) Summary() string {
	if r.mem0Configured {
		return "Configured"
	}
	return "Not configured"
}
