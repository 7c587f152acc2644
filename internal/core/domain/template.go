package domain

import "strings"

// Placeholders recognized by filename templates.
const (
	PlaceholderName = "{name}"
	PlaceholderHash = "{hash}"
	PlaceholderExt  = "{ext}"
)

// DefaultTemplate renders the canonical name-hash.ext artifact shape.
const DefaultTemplate = "{name}-{hash}.{ext}"

// RenderName substitutes the name, hash and ext placeholders in the template.
// Substitution is verbatim; no escaping is applied. Callers that need a glob
// pattern pass the hash key plus a wildcard as the hash value.
func RenderName(template, name, hash, ext string) string {
	return strings.NewReplacer(
		PlaceholderName, name,
		PlaceholderHash, hash,
		PlaceholderExt, ext,
	).Replace(template)
}
