package config

import "git.home.luguber.info/inful/sitecfg/internal/foundation"

// SearchProvider selects the search UI/index backend used by the renderer.
type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
)

// SocialIcon names an icon from the theme's built-in vocabulary.
type SocialIcon string

const (
	IconDiscord   SocialIcon = "discord"
	IconFacebook  SocialIcon = "facebook"
	IconGitHub    SocialIcon = "github"
	IconInstagram SocialIcon = "instagram"
	IconLinkedIn  SocialIcon = "linkedin"
	IconMastodon  SocialIcon = "mastodon"
	IconNPM       SocialIcon = "npm"
	IconSlack     SocialIcon = "slack"
	IconTwitter   SocialIcon = "twitter"
	IconX         SocialIcon = "x"
	IconYouTube   SocialIcon = "youtube"
)

// DateFormat is an Intl.DateTimeFormat style for a single date field.
type DateFormat string

const (
	DateNumeric  DateFormat = "numeric"
	DateTwoDigit DateFormat = "2-digit"
	DateLong     DateFormat = "long"
	DateShort    DateFormat = "short"
	DateNarrow   DateFormat = "narrow"
)

var searchProviders = foundation.NewNormalizer(map[string]SearchProvider{
	"local":   SearchLocal,
	"algolia": SearchAlgolia,
}, "local", "algolia")

var socialIcons = foundation.NewNormalizer(map[string]SocialIcon{
	"discord":   IconDiscord,
	"facebook":  IconFacebook,
	"github":    IconGitHub,
	"instagram": IconInstagram,
	"linkedin":  IconLinkedIn,
	"mastodon":  IconMastodon,
	"npm":       IconNPM,
	"slack":     IconSlack,
	"twitter":   IconTwitter,
	"x":         IconX,
	"youtube":   IconYouTube,
})

// year and day only take numeric styles.
var numericDateFormats = foundation.NewNormalizer(map[string]DateFormat{
	"numeric": DateNumeric,
	"2-digit": DateTwoDigit,
}, "numeric", "2-digit")

var monthDateFormats = foundation.NewNormalizer(map[string]DateFormat{
	"numeric": DateNumeric,
	"2-digit": DateTwoDigit,
	"long":    DateLong,
	"short":   DateShort,
	"narrow":  DateNarrow,
}, "numeric", "2-digit", "long", "short", "narrow")

// SearchProviders returns the accepted search.provider values.
func SearchProviders() []string { return searchProviders.Accepted() }

// SocialIcons returns the accepted socialLinks[].icon values.
func SocialIcons() []string { return socialIcons.Accepted() }
