package controllers

import (
	"net/http"
	"time"

	property "github.com/rentalke/rentalke-backend/internal/properties"
	"github.com/rentalke/rentalke-backend/pkg/config"
	"github.com/rentalke/rentalke-backend/pkg/db/models"
	"github.com/rentalke/rentalke-backend/pkg/logger"
	"github.com/rentalke/rentalke-backend/pkg/seo"
)

// Sitemap serves the crawl map for the public site. If listings cannot be
// loaded the static routes are still emitted.
func Sitemap(svc property.Service, site config.SiteConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var listings []models.Property
		if svc != nil {
			items, err := svc.List(r.Context(), nil)
			if err != nil {
				if logg != nil {
					logg.Error(r.Context(), "sitemap.listings.degraded", err)
				}
			} else {
				listings = items
			}
		}

		urls := seo.BuildSitemap(site.BaseURL, time.Now(), listings)
		payload, err := seo.RenderSitemap(urls)
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "sitemap.render.failed", err)
			}
			http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(payload)
	}
}
