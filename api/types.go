package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler            authHandler
	healthHandler          healthHandler
	heroImageHandler       heroImageHandler
	featuredProjectHandler featuredProjectHandler
	clientLogoHandler      clientLogoHandler
	siteSettingHandler     siteSettingHandler
	portfolioItemHandler   portfolioItemHandler
	serviceImageHandler    serviceImageHandler
	contactHandler         contactHandler
	libraryHandler         libraryHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal Server Error"`
	Field   string `json:"field,omitempty" example:"title"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
