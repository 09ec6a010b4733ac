package api

import (
	"time"

	"github.com/meridianmade/agency-site-backend/database"
	"github.com/meridianmade/agency-site-backend/services"
	"github.com/meridianmade/agency-site-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.BlobStore, notifier *services.Notifier, auth authSettings, startupTime time.Time) *routeHandlers {
	cleaner := newBlobCleaner(store)

	return &routeHandlers{
		authHandler:            newAuthHandler(auth),
		healthHandler:          newHealthHandler(startupTime),
		heroImageHandler:       newHeroImageHandler(database.HeroImageRepo(), cleaner),
		featuredProjectHandler: newFeaturedProjectHandler(database.FeaturedProjectRepo(), cleaner),
		clientLogoHandler:      newClientLogoHandler(database.ClientLogoRepo(), cleaner),
		siteSettingHandler:     newSiteSettingHandler(database.SiteSettingRepo(), cleaner),
		portfolioItemHandler:   newPortfolioItemHandler(database.PortfolioItemRepo(), cleaner),
		serviceImageHandler:    newServiceImageHandler(database.ServiceImageRepo(), cleaner),
		contactHandler:         newContactHandler(database.ContactSubmissionRepo(), notifier),
		libraryHandler:         newLibraryHandler(store),
	}
}
