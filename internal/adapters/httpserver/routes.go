package httpserver

func (s *Server) registerRoutes() {
	// The page itself
	s.echo.GET("/", s.handleIndex)

	// State rehydration on page load
	s.echo.GET("/api/session", s.handleSessionState)

	// The three user-triggered transitions
	s.echo.POST("/api/image", s.handleSelectImage)
	s.echo.POST("/api/edit", s.handleSubmitEdit)
	s.echo.GET("/download", s.handleDownload)

	// Canned instruction list
	s.echo.GET("/api/prompts", s.handleListPrompts)
	s.echo.POST("/api/prompts/apply", s.handleApplyPrompt)
}
