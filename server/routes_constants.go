package server

// Route path constants
const (
	// Pages
	RouteIndex     = "/{$}"
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteStatic    = "/static/"

	// Auth API
	RouteAPILogin     = "/api/login"
	RouteAPILogout    = "/api/logout"
	RouteAPICheckAuth = "/api/check-auth"

	// Employee API
	RouteAPIEmployee     = "/api/employee"
	RouteAPIEmployees    = "/api/employees"
	RouteAPIEmployeeByID = "/api/employee/{id}"

	// CORS preflight for everything under /api/
	RouteAPIPreflight = "/api/"
)
