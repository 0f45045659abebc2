// utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns free text into a URL-safe slug: lowercase, non-alphanumeric
// runs collapsed to "-", trimmed to 30 characters.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 30 {
		slug = strings.Trim(slug[:30], "-")
	}
	return slug
}

// MenuSlug builds the public slug for a menu: the slugified restaurant name
// (or the email local part when no name was given) plus a short unique
// suffix from the owner's id.
func MenuSlug(name, email, userID string) string {
	base := name
	if base == "" {
		base = strings.Split(email, "@")[0]
	}
	slug := Slugify(base)
	if slug == "" {
		slug = "menu"
	}
	suffix := userID
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return slug + "-" + suffix
}
