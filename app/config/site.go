package config

import "fmt"

const (
	// DefaultURL is the canonical site URL when no override is given
	DefaultURL = "https://blog.bott.im/"

	// GeneratorPackage is the manifest dependency the generator version is read from
	GeneratorPackage = "@11ty/eleventy"

	// UnknownVersion is used when the generator version cannot be resolved
	UnknownVersion = "unknown"
)

// New returns the site configuration. An empty siteURL falls back to
// DefaultURL and an empty generatorVersion to UnknownVersion.
func New(generatorVersion, siteURL string) SiteConfig {
	if siteURL == "" {
		siteURL = DefaultURL
	}
	if generatorVersion == "" {
		generatorVersion = UnknownVersion
	}

	return SiteConfig{
		Site: SiteInfo{
			Title:       "blog.bott.im",
			Description: "Personal Opinions, Tech Projects and Open Source in General",
			URL:         siteURL,
			Logo:        "/images/logo.svg",
			Language:    "en",
			StartYear:   2024,
			Generator: Generator{
				Name:    "Eleventy",
				Version: generatorVersion,
				URL:     "https://11ty.dev",
			},
			Dir: "auto",
			Template: Template{
				Name: "Bliss",
				URL:  "https://github.com/lwojcik/eleventy-template-bliss",
				Credit: Link{
					Name: "Offbeat Bits",
					URL:  "https://offbeatbits.com",
				},
			},
		},
		Author: Author{
			Name: "Rudolph Bott",
			URL:  "https://blog.bott.im/",
			Fediverse: []FediverseHandle{
				NewFediverseHandle("rbo_ne", "chaos.social"),
				NewFediverseHandle("rbo_ne", "pixelfed.de"),
			},
		},
		MetaPages: []MetaPage{},
		OpenGraph: OpenGraph{
			Type:  "website",
			Image: "/images/share-1200x600.jpg",
			// Generated images are opt-in; default images are used otherwise
			EnableImageGeneration: false,
			ImageBackgroundColor:  "#1773cf",
			ImageTextColor:        "#fff",
		},
		Twitter: Twitter{
			Card:  CardSummaryLargeImage,
			Image: "/images/share-1200x600.jpg",
		},
		Tags: Tags{
			DisplayOnArchivePage: true,
			DisplayOnPostPage:    true,
			PageURLPrefix:        "tag",
			PostsPerPage:         10,
		},
		EnablePWA: false,
		ManifestJSON: WebManifest{
			Language:        "en-US",
			ThemeColor:      "#1773cf",
			BackgroundColor: "#1773cf",
		},
		ShareButtons: []ShareButton{
			ShareMastodon,
			ShareTwitter,
			ShareHackerNews,
			ShareClipboard,
		},
		DateFormats: DateFormats{
			Readable:     "d LLL yyyy",
			FullReadable: "d LLLL yyyy",
		},
		Feed: AtomFeeds{
			Stylesheet: FeedStylesheet{
				URL:       "/feed.xsl",
				BaseColor: "#1773cf",
			},
			Excerpts: FeedVariant{
				Title: "RSS feed (excerpts)",
				Path:  "/excerpts.xml",
				Limit: 10,
			},
			Full: FeedVariant{
				Title: "RSS feed (full articles)",
				Path:  "/full.xml",
				Limit: 10,
			},
		},
		JSON: JSONFeeds{
			Excerpts: FeedVariant{
				Title: "JSON feed (excerpts)",
				Path:  "/excerpts.json",
				Limit: 10,
			},
			Full: FeedVariant{
				Title: "JSON feed (full articles)",
				Path:  "/full.json",
				Limit: 10,
			},
		},
		Icons: Icons{
			ICO:  "/favicon.ico",
			SVG:  "/favicon.svg",
			I192: "/icon-192.png",
			I512: "/icon-512.png",
		},
		LocaleSort: LocaleSort{
			Language: "en",
			Options: LocaleSortOptions{
				Sensitivity: SensitivityBase,
			},
		},
		EnableReadingProgressBar: true,
	}
}

// NewFediverseHandle builds a handle with its profile URL
func NewFediverseHandle(username, server string) FediverseHandle {
	return FediverseHandle{
		Username: username,
		Server:   server,
		URL:      ProfileURL(server, username),
	}
}

// ProfileURL returns the public profile URL of username on server
func ProfileURL(server, username string) string {
	return fmt.Sprintf("https://%s/@%s", server, username)
}
