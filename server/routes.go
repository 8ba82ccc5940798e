package server

func (s *Server) initRoutes() {
	// PAGES
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare(s.RequirePageSession)...))
	s.RegisterRouteHandler("GET "+RouteStatic, ChainMiddleware(FileServerHandler(), s.HTMLMiddleWare()...))

	// AUTH
	s.RegisterRouteHandler("POST "+RouteAPILogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPILogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPICheckAuth, ChainMiddleware(s.CheckAuthHandler(), s.APIMiddleware()...))

	// EMPLOYEES (session required)
	s.RegisterRouteHandler("POST "+RouteAPIEmployee, ChainMiddleware(s.CreateEmployeeHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("GET "+RouteAPIEmployees, ChainMiddleware(s.ListEmployeesHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("GET "+RouteAPIEmployeeByID, ChainMiddleware(s.GetEmployeeHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("PUT "+RouteAPIEmployeeByID, ChainMiddleware(s.UpdateEmployeeHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("DELETE "+RouteAPIEmployeeByID, ChainMiddleware(s.DeleteEmployeeHandler(), s.APIMiddleware(s.RequireSession)...))

	// The CORS middleware answers preflights before this handler runs.
	s.RegisterRouteHandler("OPTIONS "+RouteAPIPreflight, ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))
}
