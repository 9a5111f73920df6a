package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// GenerateSlug builds a URL-safe slug: diacritics folded, lower-cased,
// every run of non-alphanumerics collapsed to a single hyphen.
//
//	"Hukum Perdata & Bisnis" => "hukum-perdata-bisnis"
//	"Résumé  Équipe"        => "resume-equipe"
func GenerateSlug(input string) string {
	lower := strings.ToLower(RemoveDiacritics(input))
	return strings.Trim(nonAlphanumeric.ReplaceAllString(lower, "-"), "-")
}

// TitleSlug is the loose slug used for articles and profiles: lower-cased
// with whitespace runs replaced by hyphens. Punctuation is kept, and two
// rows with the same title get the same slug.
//
//	"Kabar Terbaru: UU Cipta Kerja" => "kabar-terbaru:-uu-cipta-kerja"
func TitleSlug(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// RemoveDiacritics strips combining marks after NFD decomposition.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
