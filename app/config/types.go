package config

// SiteConfig is the complete configuration record read by the site templates.
// Keys mirror the template data file so the encoded record can be dropped
// into the build pipeline unchanged.
type SiteConfig struct {
	Site                     SiteInfo      `json:"site" yaml:"site"`
	Author                   Author        `json:"author" yaml:"author"`
	MetaPages                []MetaPage    `json:"metaPages" yaml:"metaPages"`
	OpenGraph                OpenGraph     `json:"opengraph" yaml:"opengraph"`
	Twitter                  Twitter       `json:"twitter" yaml:"twitter"`
	Tags                     Tags          `json:"tags" yaml:"tags"`
	EnablePWA                bool          `json:"enablePWA" yaml:"enablePWA"`
	ManifestJSON             WebManifest   `json:"manifestJson" yaml:"manifestJson"`
	ShareButtons             []ShareButton `json:"shareButtons" yaml:"shareButtons"`
	DateFormats              DateFormats   `json:"dateFormats" yaml:"dateFormats"`
	Feed                     AtomFeeds     `json:"feed" yaml:"feed"`
	JSON                     JSONFeeds     `json:"json" yaml:"json"`
	Icons                    Icons         `json:"icons" yaml:"icons"`
	LocaleSort               LocaleSort    `json:"localeSort" yaml:"localeSort"`
	EnableReadingProgressBar bool          `json:"enableReadingProgressBar" yaml:"enableReadingProgressBar"`
}

// SiteInfo identifies the site itself
type SiteInfo struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	URL         string    `json:"url" yaml:"url"`
	Logo        string    `json:"logo" yaml:"logo"`
	Language    string    `json:"language" yaml:"language"`
	StartYear   int       `json:"startYear" yaml:"startYear"`
	Generator   Generator `json:"generator" yaml:"generator"`
	Dir         string    `json:"dir" yaml:"dir"`
	Template    Template  `json:"template" yaml:"template"`
}

// Generator describes the static-site generator that builds the site
type Generator struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	URL     string `json:"url" yaml:"url"`
}

// Template credits the site template
type Template struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	Credit Link   `json:"credit" yaml:"credit"`
}

// Link is a named URL
type Link struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Author struct {
	Name      string            `json:"name" yaml:"name"`
	URL       string            `json:"url" yaml:"url"`
	Fediverse []FediverseHandle `json:"fediverse" yaml:"fediverse"`
}

// FediverseHandle is an account on a federated server. Order in
// Author.Fediverse is display order.
type FediverseHandle struct {
	Username string `json:"username" yaml:"username"`
	Server   string `json:"server" yaml:"server"`
	URL      string `json:"url" yaml:"url"`
}

// MetaPage is a link rendered in the footer
type MetaPage struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
}

type OpenGraph struct {
	Type                  string `json:"type" yaml:"type"`
	Image                 string `json:"image" yaml:"image"`
	EnableImageGeneration bool   `json:"enableImageGeneration" yaml:"enableImageGeneration"`
	ImageBackgroundColor  string `json:"ogImageBackgroundColor" yaml:"ogImageBackgroundColor"`
	ImageTextColor        string `json:"ogImageTextColor" yaml:"ogImageTextColor"`
}

// TwitterCard is the twitter:card meta value
type TwitterCard string

const (
	CardSummary           TwitterCard = "summary"
	CardSummaryLargeImage TwitterCard = "summary_large_image"
	CardApp               TwitterCard = "app"
	CardPlayer            TwitterCard = "player"
)

type Twitter struct {
	Card  TwitterCard `json:"card" yaml:"card"`
	Image string      `json:"image" yaml:"image"`
}

// Tags controls tag display and tag listing pages
type Tags struct {
	DisplayOnArchivePage bool   `json:"displayOnArchivePage" yaml:"displayOnArchivePage"`
	DisplayOnPostPage    bool   `json:"displayOnPostPage" yaml:"displayOnPostPage"`
	PageURLPrefix        string `json:"pageUrlPrefix" yaml:"pageUrlPrefix"`
	PostsPerPage         int    `json:"postsPerPage" yaml:"postsPerPage"`
}

// WebManifest holds the PWA manifest settings
type WebManifest struct {
	Language        string `json:"language" yaml:"language"`
	ThemeColor      string `json:"themeColor" yaml:"themeColor"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor"`
}

// ShareButton identifies a post share provider
type ShareButton string

const (
	ShareMastodon   ShareButton = "mastodon"
	ShareTwitter    ShareButton = "twitter"
	ShareLinkedIn   ShareButton = "linkedin"
	ShareFacebook   ShareButton = "facebook"
	ShareHackerNews ShareButton = "hackernews"
	ShareClipboard  ShareButton = "clipboard"
)

// DateFormats are luxon-style format strings
type DateFormats struct {
	Readable     string `json:"readable" yaml:"readable"`
	FullReadable string `json:"fullReadable" yaml:"fullReadable"`
}

// FeedVariant is one published feed
type FeedVariant struct {
	Title string `json:"title" yaml:"title"`
	Path  string `json:"path" yaml:"path"`
	Limit int    `json:"limit" yaml:"limit"`
}

type FeedStylesheet struct {
	URL       string `json:"url" yaml:"url"`
	BaseColor string `json:"baseColor" yaml:"baseColor"`
}

// AtomFeeds configures the Atom feeds
type AtomFeeds struct {
	Stylesheet FeedStylesheet `json:"stylesheet" yaml:"stylesheet"`
	Excerpts   FeedVariant    `json:"excerpts" yaml:"excerpts"`
	Full       FeedVariant    `json:"full" yaml:"full"`
}

// JSONFeeds configures the JSON Feed 1.1 feeds
type JSONFeeds struct {
	Excerpts FeedVariant `json:"excerpts" yaml:"excerpts"`
	Full     FeedVariant `json:"full" yaml:"full"`
}

type Icons struct {
	ICO  string `json:"ico" yaml:"ico"`
	SVG  string `json:"svg" yaml:"svg"`
	I192 string `json:"i192" yaml:"i192"`
	I512 string `json:"i512" yaml:"i512"`
}

// Sensitivity selects which string differences compare as unequal
type Sensitivity string

const (
	SensitivityBase    Sensitivity = "base"
	SensitivityAccent  Sensitivity = "accent"
	SensitivityCase    Sensitivity = "case"
	SensitivityVariant Sensitivity = "variant"
)

type LocaleSortOptions struct {
	Sensitivity Sensitivity `json:"sensitivity" yaml:"sensitivity"`
	Numeric     bool        `json:"numeric,omitempty" yaml:"numeric,omitempty"`
}

// LocaleSort parameterizes locale-aware string comparison
type LocaleSort struct {
	Language string            `json:"language" yaml:"language"`
	Options  LocaleSortOptions `json:"options" yaml:"options"`
}
