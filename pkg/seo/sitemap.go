package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL is one <url> entry in the sitemap.
type SitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap assembles the static pages plus one entry per listing.
func BuildSitemap(baseURL string, now time.Time, properties []models.Property) []SitemapURL {
	base := strings.TrimRight(baseURL, "/")
	today := now.UTC().Format("2006-01-02")

	urls := []SitemapURL{
		{Loc: base, LastMod: today, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: base + "/search", LastMod: today, ChangeFreq: "daily", Priority: "0.9"},
		{Loc: base + "/landlords", LastMod: today, ChangeFreq: "monthly", Priority: "0.7"},
		{Loc: base + "/about", LastMod: today, ChangeFreq: "monthly", Priority: "0.6"},
		{Loc: base + "/terms", LastMod: today, ChangeFreq: "yearly", Priority: "0.3"},
		{Loc: base + "/privacy", LastMod: today, ChangeFreq: "yearly", Priority: "0.3"},
	}

	for _, p := range properties {
		lastMod := p.UpdatedAt
		if lastMod.IsZero() {
			lastMod = now
		}
		urls = append(urls, SitemapURL{
			Loc:        fmt.Sprintf("%s/homes/%s", base, p.ID),
			LastMod:    lastMod.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	return urls
}

// RenderSitemap serializes the entries as a sitemap.org urlset document.
func RenderSitemap(urls []SitemapURL) ([]byte, error) {
	doc := urlSet{
		XMLNS: sitemapNamespace,
		URLs:  urls,
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
