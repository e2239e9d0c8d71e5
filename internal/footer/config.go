package footer

import "github.com/eugenenazirov/section-kit/internal/sections"

// Config holds every configurable value of the footer. Keys mirror the flat
// document format consumed by the site editor.
type Config struct {
	LogoText              string `json:"logoText" yaml:"logoText" validate:"required"`
	CompanyDescription    string `json:"companyDescription" yaml:"companyDescription" validate:"required"`
	ContactEmail          string `json:"contactEmail" yaml:"contactEmail" validate:"required"`
	ContactPhone          string `json:"contactPhone" yaml:"contactPhone" validate:"required"`
	ContactAddress        string `json:"contactAddress" yaml:"contactAddress" validate:"required"`
	NewsletterTitle       string `json:"newsletterTitle" yaml:"newsletterTitle" validate:"required"`
	NewsletterPlaceholder string `json:"newsletterPlaceholder" yaml:"newsletterPlaceholder" validate:"required"`
	NewsletterDisclaimer  string `json:"newsletterDisclaimer" yaml:"newsletterDisclaimer" validate:"required"`
	Section1Title         string `json:"section1Title" yaml:"section1Title" validate:"required"`
	Section2Title         string `json:"section2Title" yaml:"section2Title" validate:"required"`
	Section3Title         string `json:"section3Title" yaml:"section3Title" validate:"required"`
	Section4Title         string `json:"section4Title" yaml:"section4Title" validate:"required"`
	CopyrightText         string `json:"copyrightText" yaml:"copyrightText" validate:"required"`
	MadeWithText          string `json:"madeWithText" yaml:"madeWithText" validate:"required"`
	SocialText            string `json:"socialText" yaml:"socialText" validate:"required"`
	Social1Href           string `json:"social1Href" yaml:"social1Href" validate:"required"`
	Social2Href           string `json:"social2Href" yaml:"social2Href" validate:"required"`
	Social3Href           string `json:"social3Href" yaml:"social3Href" validate:"required"`
	Social4Href           string `json:"social4Href" yaml:"social4Href" validate:"required"`
	Social5Href           string `json:"social5Href" yaml:"social5Href" validate:"required"`

	// Product
	LinkFeatures          string `json:"linkFeatures" yaml:"linkFeatures" validate:"required"`
	LinkFeaturesHref      string `json:"linkFeaturesHref" yaml:"linkFeaturesHref" validate:"required"`
	LinkPricing           string `json:"linkPricing" yaml:"linkPricing" validate:"required"`
	LinkPricingHref       string `json:"linkPricingHref" yaml:"linkPricingHref" validate:"required"`
	LinkTemplates         string `json:"linkTemplates" yaml:"linkTemplates" validate:"required"`
	LinkTemplatesHref     string `json:"linkTemplatesHref" yaml:"linkTemplatesHref" validate:"required"`
	LinkIntegrations      string `json:"linkIntegrations" yaml:"linkIntegrations" validate:"required"`
	LinkIntegrationsHref  string `json:"linkIntegrationsHref" yaml:"linkIntegrationsHref" validate:"required"`
	LinkAPI               string `json:"linkApi" yaml:"linkApi" validate:"required"`
	LinkAPIHref           string `json:"linkApiHref" yaml:"linkApiHref" validate:"required"`
	LinkDocumentation     string `json:"linkDocumentation" yaml:"linkDocumentation" validate:"required"`
	LinkDocumentationHref string `json:"linkDocumentationHref" yaml:"linkDocumentationHref" validate:"required"`

	// Company
	LinkAbout        string `json:"linkAbout" yaml:"linkAbout" validate:"required"`
	LinkAboutHref    string `json:"linkAboutHref" yaml:"linkAboutHref" validate:"required"`
	LinkBlog         string `json:"linkBlog" yaml:"linkBlog" validate:"required"`
	LinkBlogHref     string `json:"linkBlogHref" yaml:"linkBlogHref" validate:"required"`
	LinkCareers      string `json:"linkCareers" yaml:"linkCareers" validate:"required"`
	LinkCareersHref  string `json:"linkCareersHref" yaml:"linkCareersHref" validate:"required"`
	LinkPress        string `json:"linkPress" yaml:"linkPress" validate:"required"`
	LinkPressHref    string `json:"linkPressHref" yaml:"linkPressHref" validate:"required"`
	LinkPartners     string `json:"linkPartners" yaml:"linkPartners" validate:"required"`
	LinkPartnersHref string `json:"linkPartnersHref" yaml:"linkPartnersHref" validate:"required"`
	LinkContact      string `json:"linkContact" yaml:"linkContact" validate:"required"`
	LinkContactHref  string `json:"linkContactHref" yaml:"linkContactHref" validate:"required"`

	// Resources
	LinkHelp            string `json:"linkHelp" yaml:"linkHelp" validate:"required"`
	LinkHelpHref        string `json:"linkHelpHref" yaml:"linkHelpHref" validate:"required"`
	LinkCommunity       string `json:"linkCommunity" yaml:"linkCommunity" validate:"required"`
	LinkCommunityHref   string `json:"linkCommunityHref" yaml:"linkCommunityHref" validate:"required"`
	LinkTutorials       string `json:"linkTutorials" yaml:"linkTutorials" validate:"required"`
	LinkTutorialsHref   string `json:"linkTutorialsHref" yaml:"linkTutorialsHref" validate:"required"`
	LinkWebinars        string `json:"linkWebinars" yaml:"linkWebinars" validate:"required"`
	LinkWebinarsHref    string `json:"linkWebinarsHref" yaml:"linkWebinarsHref" validate:"required"`
	LinkCaseStudies     string `json:"linkCaseStudies" yaml:"linkCaseStudies" validate:"required"`
	LinkCaseStudiesHref string `json:"linkCaseStudiesHref" yaml:"linkCaseStudiesHref" validate:"required"`
	LinkStatus          string `json:"linkStatus" yaml:"linkStatus" validate:"required"`
	LinkStatusHref      string `json:"linkStatusHref" yaml:"linkStatusHref" validate:"required"`

	// Legal
	LinkPrivacy        string `json:"linkPrivacy" yaml:"linkPrivacy" validate:"required"`
	LinkPrivacyHref    string `json:"linkPrivacyHref" yaml:"linkPrivacyHref" validate:"required"`
	LinkTerms          string `json:"linkTerms" yaml:"linkTerms" validate:"required"`
	LinkTermsHref      string `json:"linkTermsHref" yaml:"linkTermsHref" validate:"required"`
	LinkCookies        string `json:"linkCookies" yaml:"linkCookies" validate:"required"`
	LinkCookiesHref    string `json:"linkCookiesHref" yaml:"linkCookiesHref" validate:"required"`
	LinkGDPR           string `json:"linkGdpr" yaml:"linkGdpr" validate:"required"`
	LinkGDPRHref       string `json:"linkGdprHref" yaml:"linkGdprHref" validate:"required"`
	LinkSecurity       string `json:"linkSecurity" yaml:"linkSecurity" validate:"required"`
	LinkSecurityHref   string `json:"linkSecurityHref" yaml:"linkSecurityHref" validate:"required"`
	LinkCompliance     string `json:"linkCompliance" yaml:"linkCompliance" validate:"required"`
	LinkComplianceHref string `json:"linkComplianceHref" yaml:"linkComplianceHref" validate:"required"`

	// Bottom bar
	LinkSitemap            string `json:"linkSitemap" yaml:"linkSitemap" validate:"required"`
	LinkSitemapHref        string `json:"linkSitemapHref" yaml:"linkSitemapHref" validate:"required"`
	LinkAccessibility      string `json:"linkAccessibility" yaml:"linkAccessibility" validate:"required"`
	LinkAccessibilityHref  string `json:"linkAccessibilityHref" yaml:"linkAccessibilityHref" validate:"required"`
	LinkCookieSettings     string `json:"linkCookieSettings" yaml:"linkCookieSettings" validate:"required"`
	LinkCookieSettingsHref string `json:"linkCookieSettingsHref" yaml:"linkCookieSettingsHref" validate:"required"`
	LinkSupport            string `json:"linkSupport" yaml:"linkSupport" validate:"required"`
	LinkSupportHref        string `json:"linkSupportHref" yaml:"linkSupportHref" validate:"required"`
}

// Clone returns a copy of c. Config holds only strings, so a value copy
// suffices.
func (c Config) Clone() Config {
	return c
}

var defaults = Config{
	LogoText:              "TechFlow",
	CompanyDescription:    "Building the future of web development with modern tools and beautiful designs. Join thousands of developers and businesses who trust our platform.",
	ContactEmail:          "hello@techflow.com",
	ContactPhone:          "+1 (555) 123-4567",
	ContactAddress:        "123 Innovation Ave, Suite 100",
	NewsletterTitle:       "Stay Updated",
	NewsletterPlaceholder: "Enter your email",
	NewsletterDisclaimer:  "Get the latest updates and offers. No spam, unsubscribe anytime.",
	Section1Title:         "Product",
	Section2Title:         "Company",
	Section3Title:         "Resources",
	Section4Title:         "Legal",
	CopyrightText:         "© 2024 TechFlow. All rights reserved.",
	MadeWithText:          "by our team",
	SocialText:            "Follow us:",
	Social1Href:           "https://twitter.com",
	Social2Href:           "https://facebook.com",
	Social3Href:           "https://instagram.com",
	Social4Href:           "https://linkedin.com",
	Social5Href:           "https://github.com",

	LinkFeatures:          "Features",
	LinkFeaturesHref:      "#features",
	LinkPricing:           "Pricing",
	LinkPricingHref:       "#pricing",
	LinkTemplates:         "Templates",
	LinkTemplatesHref:     "/templates",
	LinkIntegrations:      "Integrations",
	LinkIntegrationsHref:  "/integrations",
	LinkAPI:               "API",
	LinkAPIHref:           "/api",
	LinkDocumentation:     "Documentation",
	LinkDocumentationHref: "/docs",

	LinkAbout:        "About Us",
	LinkAboutHref:    "#about",
	LinkBlog:         "Blog",
	LinkBlogHref:     "/blog",
	LinkCareers:      "Careers",
	LinkCareersHref:  "/careers",
	LinkPress:        "Press",
	LinkPressHref:    "/press",
	LinkPartners:     "Partners",
	LinkPartnersHref: "/partners",
	LinkContact:      "Contact",
	LinkContactHref:  "#contact",

	LinkHelp:            "Help Center",
	LinkHelpHref:        "/help",
	LinkCommunity:       "Community",
	LinkCommunityHref:   "/community",
	LinkTutorials:       "Tutorials",
	LinkTutorialsHref:   "/tutorials",
	LinkWebinars:        "Webinars",
	LinkWebinarsHref:    "/webinars",
	LinkCaseStudies:     "Case Studies",
	LinkCaseStudiesHref: "/case-studies",
	LinkStatus:          "Status",
	LinkStatusHref:      "/status",

	LinkPrivacy:        "Privacy Policy",
	LinkPrivacyHref:    "/privacy",
	LinkTerms:          "Terms of Service",
	LinkTermsHref:      "/terms",
	LinkCookies:        "Cookie Policy",
	LinkCookiesHref:    "/cookies",
	LinkGDPR:           "GDPR",
	LinkGDPRHref:       "/gdpr",
	LinkSecurity:       "Security",
	LinkSecurityHref:   "/security",
	LinkCompliance:     "Compliance",
	LinkComplianceHref: "/compliance",

	LinkSitemap:            "Sitemap",
	LinkSitemapHref:        "/sitemap",
	LinkAccessibility:      "Accessibility",
	LinkAccessibilityHref:  "/accessibility",
	LinkCookieSettings:     "Cookie Settings",
	LinkCookieSettingsHref: "/cookies",
	LinkSupport:            "Support",
	LinkSupportHref:        "/support",
}

// Defaults returns a copy of the default footer configuration.
func Defaults() Config {
	return defaults.Clone()
}

var schema = sections.MustSchema[Config]()

// Schema returns the footer configuration schema.
func Schema() *sections.Schema[Config] {
	return schema
}
