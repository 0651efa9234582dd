package http

// Route identifies one of the fixed behaviors of the API
type Route int

const (
	// RouteNotFound covers every path without an exact match
	RouteNotFound Route = iota
	// RouteRoot is the informational root page
	RouteRoot
	// RouteHealth is the health report
	RouteHealth
)

// Paths served by the API. Matching is exact and case-sensitive.
const (
	PathRoot   = "/"
	PathHealth = "/api/health"
)

// ResolveRoute maps a request path to its route
func ResolveRoute(path string) Route {
	switch path {
	case PathRoot:
		return RouteRoot
	case PathHealth:
		return RouteHealth
	default:
		return RouteNotFound
	}
}

// String returns the route name used in logs and metric labels
func (r Route) String() string {
	switch r {
	case RouteRoot:
		return "root"
	case RouteHealth:
		return "health"
	case RouteNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
