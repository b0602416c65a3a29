// Package seo generates the titles, descriptions, keywords, and slugs used
// for listing pages and the sitemap.
package seo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rentalke/rentalke-backend/pkg/contact"
	"github.com/rentalke/rentalke-backend/pkg/db/models"
)

const descriptionSnippetLen = 120

var (
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9_-]`)
)

// PropertyTitle renders the page title for one listing.
func PropertyTitle(p models.Property) string {
	return fmt.Sprintf("%s %s in %s, %s - Ksh %s/month",
		p.Type, p.Bedrooms, p.Neighborhood, p.City, contact.FormatPrice(p.Price))
}

// PropertyDescription renders the meta description for one listing.
func PropertyDescription(p models.Property) string {
	availability := "Occupied"
	if p.Available {
		availability = "Available now"
	}

	desc := ""
	if p.Description != nil {
		desc = *p.Description
	}
	if desc != "" {
		if len(desc) > descriptionSnippetLen {
			desc = desc[:descriptionSnippetLen]
		}
	} else {
		desc = fmt.Sprintf("%s with %s and %s for rent in %s, %s.",
			p.Type, p.Bedrooms, p.Bathroom, p.Neighborhood, p.City)
	}

	return fmt.Sprintf("%s %s. Ksh %s/month. Direct landlord contact, no agent fees. Verified listing.",
		desc, availability, contact.FormatPrice(p.Price))
}

// PropertyKeywords renders the comma-joined keyword list for one listing.
func PropertyKeywords(p models.Property) string {
	typeKeywords := map[string]string{
		"Bedsitter": "bedsitter, single room, studio",
		"1 Bedroom": "1 bedroom, one bedroom, 1BR",
		"2 Bedroom": "2 bedroom, two bedroom, 2BR",
	}[p.Type]
	if typeKeywords == "" {
		typeKeywords = strings.ToLower(p.Type)
	}

	affordability := "affordable"
	if p.Price < 7000 {
		affordability = "cheap"
	}

	return strings.Join([]string{
		fmt.Sprintf("%s %s", p.Type, p.City),
		fmt.Sprintf("%s %s", p.Type, p.Neighborhood),
		fmt.Sprintf("rental houses %s", p.Neighborhood),
		fmt.Sprintf("houses for rent %s", p.City),
		typeKeywords,
		fmt.Sprintf("affordable rentals %s", p.City),
		fmt.Sprintf("%s %s", affordability, p.Type),
		fmt.Sprintf("verified landlord %s", p.City),
		fmt.Sprintf("no agent %s", p.Type),
	}, ", ")
}

// PropertySlug renders a URL-safe slug for one listing.
func PropertySlug(p models.Property) string {
	slug := strings.ToLower(fmt.Sprintf("%s-%s-%s", p.Type, p.Neighborhood, p.City))
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	return slugInvalidRe.ReplaceAllString(slug, "")
}

// LocationKeywords renders search keywords for a city, optionally narrowed to a neighborhood.
func LocationKeywords(city string, neighborhood string) []string {
	keywords := []string{
		fmt.Sprintf("rental houses %s", city),
		fmt.Sprintf("houses for rent %s", city),
		fmt.Sprintf("bedsitter %s", city),
		fmt.Sprintf("affordable rentals %s", city),
		fmt.Sprintf("1 bedroom %s", city),
		fmt.Sprintf("cheap houses %s", city),
		fmt.Sprintf("nyumba za kupanga %s", city),
	}

	if neighborhood != "" {
		keywords = append(keywords,
			fmt.Sprintf("%s %s", neighborhood, city),
			fmt.Sprintf("rental houses %s", neighborhood),
			fmt.Sprintf("bedsitter %s", neighborhood),
			fmt.Sprintf("houses for rent %s", neighborhood),
			fmt.Sprintf("1 bedroom %s", neighborhood),
		)
	}

	return keywords
}

// PriceKeywords renders search keywords for a price range.
func PriceKeywords(minPrice, maxPrice int) []string {
	var keywords []string

	if minPrice < 7000 {
		keywords = append(keywords, "cheap rentals Kenya", "affordable bedsitter", "rental under 7000")
	}
	if minPrice >= 7000 && maxPrice <= 12000 {
		keywords = append(keywords, "mid-range rentals Kenya", "rental 7000-12000", "affordable 1 bedroom")
	}
	if maxPrice > 12000 {
		keywords = append(keywords, "rental above 10000", "spacious rentals", "2 bedroom Kenya")
	}

	return keywords
}
