package cleaners

import "regexp"

// TITLE_SEPARATOR_RE matches one of the site-name separators |, \, /, >, »
// surrounded by whitespace. Grounded in the teacher's TITLE_SPLITTERS_RE
// (pkg/cleaners/title.go), narrowed to the exact separator set spec §4.2
// names instead of the teacher's broader breadcrumb-splitter set.
var TITLE_SEPARATOR_RE = regexp.MustCompile(`\s[|\\/>»]\s`)

// TITLE_TRAILING_DASH_RE matches whitespace + a dash variant + whitespace +
// any suffix to end of string, used to strip a trailing "- Site Name".
var TITLE_TRAILING_DASH_RE = regexp.MustCompile(`\s[—\-–]\s.*$`)

// metaTagField names a Meta field a <meta property="..."> value maps onto.
type metaTagField int

const (
	fieldNone metaTagField = iota
	fieldTitle
	fieldDescription
	fieldAuthor
)

// metaPropertyFields is the spec §4.3 property→field table.
var metaPropertyFields = map[string]metaTagField{
	"dc:title":             fieldTitle,
	"dcterm:title":         fieldTitle,
	"og:title":             fieldTitle,
	"weibo:article:title":  fieldTitle,
	"weibo:webpage:title":  fieldTitle,
	"title":                fieldTitle,
	"twitter:title":        fieldTitle,
	"description":               fieldDescription,
	"dc:description":            fieldDescription,
	"dcterm:description":        fieldDescription,
	"og:description":            fieldDescription,
	"weibo:article:description": fieldDescription,
	"weibo:webpage:description": fieldDescription,
	"twitter:description":       fieldDescription,
	"dc:creator":     fieldAuthor,
	"dcterm:creator": fieldAuthor,
	"author":         fieldAuthor,
}

// recognizedArticleTypes is the spec §4.4 19-member @type allow-list.
var recognizedArticleTypes = map[string]bool{
	"Article":                  true,
	"AdvertiserContentArticle": true,
	"NewsArticle":              true,
	"AnalysisNewsArticle":      true,
	"AskPublicNewsArticle":     true,
	"BackgroundNewsArticle":    true,
	"OpinionNewsArticle":       true,
	"ReportageNewsArticle":     true,
	"ReviewNewsArticle":        true,
	"Report":                   true,
	"SatiricalArticle":         true,
	"ScholarlyArticle":         true,
	"MedicalScholarlyArticle":  true,
	"SocialMediaPosting":       true,
	"BlogPosting":              true,
	"LiveBlogPosting":          true,
	"DiscussionForumPosting":   true,
	"TechArticle":              true,
	"APIReference":             true,
}

// schemaOrgContextRE validates the JSON-LD @context value per spec §4.4.
var schemaOrgContextRE = regexp.MustCompile(`^https?://schema\.org$`)
