package blogservice

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

// blogFields is a validated BlogInput. The *Set flags record whether an
// optional field was submitted.
type blogFields struct {
	title         string
	description   string
	content       string
	category      Category
	price         *float64
	priceSet      bool
	affiliateLink *string
	affiliateSet  bool
	tags          []string
	tagsSet       bool
}

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 1, 200), "title", "must not be more than 200 characters long")
}

func validateDescription(v *common.Validator, description string) {
	v.Check(description != "", "description", "must be provided")
	v.Check(v.CheckStringLength(description, 1, 500), "description", "must not be more than 500 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validateCategory(v *common.Validator, category Category) {
	v.Check(category.Valid(), "category", "must be one of "+categoryNames())
}

func parsePrice(v *common.Validator, raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		v.AddError("price", "must be a valid number")
		return nil
	}
	v.Check(price >= 0, "price", "must not be negative")

	return &price
}

// parseTags decodes a JSON array of strings, trimming entries and dropping
// empty ones. Order is preserved.
func parseTags(v *common.Validator, raw string) []string {
	tags := []string{}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return tags
	}

	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		v.AddError("tags", "must be a JSON array of strings")
		return tags
	}

	for _, tag := range decoded {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func parseBlogInput(in BlogInput) (*blogFields, error) {
	v := common.NewValidator()

	f := &blogFields{
		title:       strings.TrimSpace(in.Title),
		description: strings.TrimSpace(in.Description),
		content:     strings.TrimSpace(sanitizeContent(in.Content)),
		category:    Category(strings.TrimSpace(in.Category)),
		tags:        []string{},
	}

	validateTitle(v, f.title)
	validateDescription(v, f.description)
	validateContent(v, f.content)
	validateCategory(v, f.category)

	if in.Price != nil {
		f.priceSet = true
		f.price = parsePrice(v, *in.Price)
	}

	if in.AffiliateLink != nil {
		f.affiliateSet = true
		if link := strings.TrimSpace(*in.AffiliateLink); link != "" {
			f.affiliateLink = &link
		}
	}

	if in.Tags != nil {
		f.tagsSet = true
		f.tags = parseTags(v, *in.Tags)
	}

	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return f, nil
}

// apply copies the validated fields onto blog. Optional fields that were
// not submitted keep their current value.
func (f *blogFields) apply(blog *Blog) {
	blog.Title = f.title
	blog.Description = f.description
	blog.Content = f.content
	blog.Category = f.category

	if f.priceSet {
		blog.Price = f.price
	}
	if f.affiliateSet {
		blog.AffiliateLink = f.affiliateLink
	}
	if f.tagsSet || blog.Tags == nil {
		blog.Tags = f.tags
	}
}
