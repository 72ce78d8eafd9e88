package blogservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

type Category string

const (
	CategoryMobiles        Category = "Mobiles"
	CategoryElectronics    Category = "Electronics"
	CategoryFashion        Category = "Fashion"
	CategoryHomeAppliances Category = "Home Appliances"
	CategoryGaming         Category = "Gaming"
	CategoryAccessories    Category = "Accessories"
)

const (
	DefaultPublicPageLimit = 12
	DefaultAdminPageLimit  = 10
	MaxPageLimit           = 100
	SearchResultLimit      = 20
	FeaturedLimit          = 5

	maxSlugAttempts = 3
	cacheTTL        = time.Minute
)

var Categories = []Category{
	CategoryMobiles,
	CategoryElectronics,
	CategoryFashion,
	CategoryHomeAppliances,
	CategoryGaming,
	CategoryAccessories,
}

// Blog is a product write-up. Content is left empty in list results.
type Blog struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Content       string    `json:"content,omitempty"`
	Category      Category  `json:"category"`
	Price         *float64  `json:"price,omitempty"`
	AffiliateLink *string   `json:"affiliateLink,omitempty"`
	Image         *string   `json:"image"`
	ImageRef      *string   `json:"imageRef"`
	Tags          []string  `json:"tags"`
	Views         int64     `json:"views"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BlogInput carries the raw admin form fields. A nil pointer means the
// field was not submitted at all.
type BlogInput struct {
	Title         string
	Description   string
	Content       string
	Category      string
	Price         *string
	AffiliateLink *string
	// Tags is a JSON array of strings.
	Tags *string
}

// ImageUpload is the result of a completed media host upload.
type ImageUpload struct {
	URL string
	Ref string
}

// MediaHost releases previously uploaded images.
type MediaHost interface {
	Delete(ctx context.Context, ref string) error
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalBlogs  int  `json:"totalBlogs"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type BlogPage struct {
	Blogs      []Blog
	Pagination Pagination
}

type Stats struct {
	TotalBlogs      int   `json:"totalBlogs"`
	TotalViews      int64 `json:"totalViews"`
	TotalCategories int   `json:"totalCategories"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m      *BlogModel
	c      *common.Cache
	media  MediaHost
	logger common.Logger
}
