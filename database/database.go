package database

import (
	"gorm.io/gorm"

	"github.com/meridianmade/agency-site-backend/models"
)

type Database struct {
	heroImageRepo         *HeroImageRepo
	featuredProjectRepo   *FeaturedProjectRepo
	clientLogoRepo        *ClientLogoRepo
	siteSettingRepo       *SiteSettingRepo
	portfolioItemRepo     *PortfolioItemRepo
	serviceImageRepo      *ServiceImageRepo
	contactSubmissionRepo *ContactSubmissionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		heroImageRepo:         NewHeroImageRepo(db),
		featuredProjectRepo:   NewFeaturedProjectRepo(db),
		clientLogoRepo:        NewClientLogoRepo(db),
		siteSettingRepo:       NewSiteSettingRepo(db),
		portfolioItemRepo:     NewPortfolioItemRepo(db),
		serviceImageRepo:      NewServiceImageRepo(db),
		contactSubmissionRepo: NewContactSubmissionRepo(db),
	}
}

// Migrate creates or updates the schema for every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.HeroImage{},
		&models.FeaturedProject{},
		&models.ClientLogo{},
		&models.SiteSetting{},
		&models.PortfolioItem{},
		&models.ServiceImage{},
		&models.ContactSubmission{},
	)
}

// Accessor methods for each repository

func (d Database) HeroImageRepo() *HeroImageRepo {
	return d.heroImageRepo
}

func (d Database) FeaturedProjectRepo() *FeaturedProjectRepo {
	return d.featuredProjectRepo
}

func (d Database) ClientLogoRepo() *ClientLogoRepo {
	return d.clientLogoRepo
}

func (d Database) SiteSettingRepo() *SiteSettingRepo {
	return d.siteSettingRepo
}

func (d Database) PortfolioItemRepo() *PortfolioItemRepo {
	return d.portfolioItemRepo
}

func (d Database) ServiceImageRepo() *ServiceImageRepo {
	return d.serviceImageRepo
}

func (d Database) ContactSubmissionRepo() *ContactSubmissionRepo {
	return d.contactSubmissionRepo
}
