package blogservice

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryFromSlug converts a url segment such as "home-appliances" into
// its display form "Home Appliances". The result is not guaranteed to be a
// known category.
func CategoryFromSlug(raw string) Category {
	s := strings.Join(strings.Fields(strings.ReplaceAll(raw, "-", " ")), " ")
	return Category(cases.Title(language.English).String(s))
}

func categoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
