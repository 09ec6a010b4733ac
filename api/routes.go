package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site surface and the authenticated admin
// surface. Reads of site content and the contact form are public; every
// mutation and the media library sit behind the session token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/hero-images", handlers.heroImageHandler.getHeroImages())
		r.Get("/featured-projects", handlers.featuredProjectHandler.getFeaturedProjects())
		r.Get("/client-logos", handlers.clientLogoHandler.getClientLogos())
		r.Get("/site-settings", handlers.siteSettingHandler.getSiteSettings())
		r.Get("/portfolio-items", handlers.portfolioItemHandler.getPortfolioItems())
		r.Get("/service-images", handlers.serviceImageHandler.getServiceImages())

		r.Post("/contact-submissions", handlers.contactHandler.createContactSubmission())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/hero-images", handlers.heroImageHandler.createHeroImage())
		r.Put("/hero-images", handlers.heroImageHandler.updateHeroImage())
		r.Delete("/hero-images", handlers.heroImageHandler.deleteHeroImage())

		r.Post("/featured-projects", handlers.featuredProjectHandler.createFeaturedProject())
		r.Put("/featured-projects", handlers.featuredProjectHandler.updateFeaturedProject())
		r.Delete("/featured-projects", handlers.featuredProjectHandler.deleteFeaturedProject())

		r.Post("/client-logos", handlers.clientLogoHandler.createClientLogo())
		r.Put("/client-logos", handlers.clientLogoHandler.updateClientLogo())
		r.Delete("/client-logos", handlers.clientLogoHandler.deleteClientLogo())

		r.Post("/site-settings", handlers.siteSettingHandler.upsertSiteSetting())
		r.Delete("/site-settings", handlers.siteSettingHandler.deleteSiteSetting())

		r.Post("/portfolio-items", handlers.portfolioItemHandler.createPortfolioItem())
		r.Put("/portfolio-items", handlers.portfolioItemHandler.updatePortfolioItem())
		r.Delete("/portfolio-items", handlers.portfolioItemHandler.deletePortfolioItem())

		r.Post("/service-images", handlers.serviceImageHandler.upsertServiceImage())
		r.Put("/service-images", handlers.serviceImageHandler.updateServiceImage())
		r.Delete("/service-images", handlers.serviceImageHandler.deleteServiceImage())

		r.Get("/contact-submissions", handlers.contactHandler.getContactSubmissions())
		r.Put("/contact-submissions", handlers.contactHandler.updateContactSubmission())
		r.Delete("/contact-submissions", handlers.contactHandler.deleteContactSubmission())

		r.Post("/upload", handlers.libraryHandler.upload())
		r.Get("/upload", handlers.libraryHandler.list())
		r.Delete("/upload", handlers.libraryHandler.remove())
		r.Post("/upload-url", handlers.libraryHandler.createUploadURL())
	})
}
