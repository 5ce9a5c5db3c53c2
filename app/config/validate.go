package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"golang.org/x/text/language"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var validShareButtons = map[ShareButton]bool{
	ShareMastodon:   true,
	ShareTwitter:    true,
	ShareLinkedIn:   true,
	ShareFacebook:   true,
	ShareHackerNews: true,
	ShareClipboard:  true,
}

var validTwitterCards = map[TwitterCard]bool{
	CardSummary:           true,
	CardSummaryLargeImage: true,
	CardApp:               true,
	CardPlayer:            true,
}

var validSensitivities = map[Sensitivity]bool{
	SensitivityBase:    true,
	SensitivityAccent:  true,
	SensitivityCase:    true,
	SensitivityVariant: true,
}

var validDirs = map[string]bool{
	"ltr":  true,
	"rtl":  true,
	"auto": true,
}

// IsValid reports whether b is a known share provider
func (b ShareButton) IsValid() bool {
	return validShareButtons[b]
}

// Validate checks the configuration and reports every problem found.
// Duplicate share buttons are allowed.
func Validate(site *SiteConfig) error {
	var errs []error

	if site.Site.Title == "" {
		errs = append(errs, fmt.Errorf("site title is required"))
	}
	if err := validateAbsoluteURL(site.Site.URL); err != nil {
		errs = append(errs, fmt.Errorf("site url: %w", err))
	}
	if err := validateLanguage(site.Site.Language); err != nil {
		errs = append(errs, fmt.Errorf("site language: %w", err))
	}
	if !validDirs[site.Site.Dir] {
		errs = append(errs, fmt.Errorf("invalid text direction: %q", site.Site.Dir))
	}
	if site.Site.StartYear <= 0 {
		errs = append(errs, fmt.Errorf("start year must be positive"))
	}

	if site.Author.URL != "" {
		if err := validateAbsoluteURL(site.Author.URL); err != nil {
			errs = append(errs, fmt.Errorf("author url: %w", err))
		}
	}
	for i, handle := range site.Author.Fediverse {
		if handle.Username == "" || handle.Server == "" {
			errs = append(errs, fmt.Errorf("fediverse handle at index %d must have username and server", i))
		}
	}

	for i, page := range site.MetaPages {
		if page.URL == "" || page.Title == "" {
			errs = append(errs, fmt.Errorf("footer link at index %d must have url and title", i))
		}
	}

	colors := []struct{ name, value string }{
		{"opengraph image background color", site.OpenGraph.ImageBackgroundColor},
		{"opengraph image text color", site.OpenGraph.ImageTextColor},
		{"manifest theme color", site.ManifestJSON.ThemeColor},
		{"manifest background color", site.ManifestJSON.BackgroundColor},
		{"feed stylesheet base color", site.Feed.Stylesheet.BaseColor},
	}
	for _, c := range colors {
		if !hexColorPattern.MatchString(c.value) {
			errs = append(errs, fmt.Errorf("invalid %s: %q", c.name, c.value))
		}
	}

	if !validTwitterCards[site.Twitter.Card] {
		errs = append(errs, fmt.Errorf("invalid twitter card: %q", site.Twitter.Card))
	}

	if site.Tags.PostsPerPage <= 0 {
		errs = append(errs, fmt.Errorf("tag posts per page must be positive"))
	}

	if err := validateLanguage(site.ManifestJSON.Language); err != nil {
		errs = append(errs, fmt.Errorf("manifest language: %w", err))
	}

	for i, button := range site.ShareButtons {
		if !button.IsValid() {
			errs = append(errs, fmt.Errorf("invalid share button at index %d: %s", i, button))
		}
	}

	feeds := []struct {
		name    string
		variant FeedVariant
	}{
		{"atom excerpts", site.Feed.Excerpts},
		{"atom full", site.Feed.Full},
		{"json excerpts", site.JSON.Excerpts},
		{"json full", site.JSON.Full},
	}
	for _, f := range feeds {
		if f.variant.Path == "" {
			errs = append(errs, fmt.Errorf("%s feed path is required", f.name))
		}
		if f.variant.Limit <= 0 {
			errs = append(errs, fmt.Errorf("%s feed limit must be positive", f.name))
		}
	}

	if err := validateLanguage(site.LocaleSort.Language); err != nil {
		errs = append(errs, fmt.Errorf("locale sort language: %w", err))
	}
	if !validSensitivities[site.LocaleSort.Options.Sensitivity] {
		errs = append(errs, fmt.Errorf("invalid locale sort sensitivity: %q", site.LocaleSort.Options.Sensitivity))
	}

	return errors.Join(errs...)
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("must be absolute, got %q", raw)
	}
	return nil
}

func validateLanguage(tag string) error {
	if _, err := language.Parse(tag); err != nil {
		return fmt.Errorf("invalid language tag %q: %w", tag, err)
	}
	return nil
}
