package blogservice

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugUnsafeRX    = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	slugSeparatorRX = regexp.MustCompile(`[\s_-]+`)
)

// normalizeSlug turns a title into a url-safe slug. Accents are folded to
// their base letter and every run of whitespace, underscores or hyphens
// becomes a single hyphen.
func normalizeSlug(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}

	s = strings.ToLower(s)
	s = slugUnsafeRX.ReplaceAllString(s, "")
	s = slugSeparatorRX.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// fallbackSlugBase is used when a title has no slug-safe characters at all.
func fallbackSlugBase(id uuid.UUID) string {
	return "blog-" + strings.ReplaceAll(id.String(), "-", "")[:8]
}

// assignSlug returns the first free slug for title, trying base, base-1,
// base-2 and so on. The record identified by id never collides with itself.
func (s *BlogService) assignSlug(ctx context.Context, title string, id uuid.UUID) (string, error) {
	base := normalizeSlug(title)
	if base == "" {
		base = fallbackSlugBase(id)
	}

	slug := base
	for counter := 1; ; counter++ {
		taken, err := s.m.slugTaken(ctx, slug, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
