package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

// NewBlogService wires the blog store. media may be nil when no media host
// is configured; image releases are then skipped with a warning.
func NewBlogService(db *sql.DB, cache *common.Cache, media MediaHost, logger common.Logger) *BlogService {
	return &BlogService{
		m:      newBlogModel(db),
		c:      cache,
		media:  media,
		logger: logger,
	}
}

// CreateBlog validates in, assigns a unique slug and stores the record.
// upload is attached as the record's image when present.
func (s *BlogService) CreateBlog(ctx context.Context, in BlogInput, upload *ImageUpload) (*Blog, error) {
	f, err := parseBlogInput(in)
	if err != nil {
		return nil, err
	}

	blog := &Blog{ID: uuid.New(), Published: true}
	f.apply(blog)
	attachImage(blog, upload)

	for attempt := 1; ; attempt++ {
		blog.Slug, err = s.assignSlug(ctx, blog.Title, blog.ID)
		if err != nil {
			return nil, err
		}

		err = s.m.insert(ctx, blog)
		if errors.Is(err, errSlugTaken) && attempt < maxSlugAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	s.invalidate()

	return blog, nil
}

// UpdateBlog replaces the editable fields of an existing blog. The slug is
// only reassigned when the title changes. A replaced image is released
// after the new state is stored.
func (s *BlogService) UpdateBlog(ctx context.Context, id uuid.UUID, in BlogInput, upload *ImageUpload) (*Blog, error) {
	blog, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := parseBlogInput(in)
	if err != nil {
		return nil, err
	}

	titleChanged := f.title != blog.Title
	f.apply(blog)

	var staleRef string
	if upload != nil {
		if blog.ImageRef != nil {
			staleRef = *blog.ImageRef
		}
		attachImage(blog, upload)
	}

	for attempt := 1; ; attempt++ {
		if titleChanged {
			blog.Slug, err = s.assignSlug(ctx, blog.Title, blog.ID)
			if err != nil {
				return nil, err
			}
		}

		err = s.m.update(ctx, blog)
		if errors.Is(err, errSlugTaken) && titleChanged && attempt < maxSlugAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	s.invalidate()

	if staleRef != "" && staleRef != upload.Ref {
		s.releaseImage(ctx, staleRef)
	}

	return blog, nil
}

// DeleteBlog removes a blog. Its image is released first; a media host
// failure is logged and does not stop the delete.
func (s *BlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	blog, err := s.m.getByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.ImageRef != nil {
		s.releaseImage(ctx, *blog.ImageRef)
	}

	if err := s.m.delete(ctx, id); err != nil {
		return err
	}

	s.invalidate()

	return nil
}

func (s *BlogService) ToggleFeatured(ctx context.Context, id uuid.UUID) (*Blog, error) {
	blog, err := s.m.toggleFeatured(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate()

	return blog, nil
}

func (s *BlogService) TogglePublished(ctx context.Context, id uuid.UUID) (*Blog, error) {
	blog, err := s.m.togglePublished(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate()

	return blog, nil
}

// ListBlogs returns one page of published blogs, newest first.
func (s *BlogService) ListBlogs(ctx context.Context, page, limit int) (*BlogPage, error) {
	page, limit = normalizePage(page, limit, DefaultPublicPageLimit)

	blogs, total, err := s.m.listPublished(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &BlogPage{Blogs: blogs, Pagination: newPagination(page, limit, total)}, nil
}

// GetBlogBySlug returns a published blog and counts one view. The counted
// view makes cached stats stale.
func (s *BlogService) GetBlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	blog, err := s.m.viewBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(common.CacheKeyBlogStats)

	return blog, nil
}

// GetBlogsByCategory resolves a category url segment and lists its published
// blogs. Unknown categories produce an empty list.
func (s *BlogService) GetBlogsByCategory(ctx context.Context, raw string) ([]Blog, Category, error) {
	category := CategoryFromSlug(raw)
	if !category.Valid() {
		return []Blog{}, category, nil
	}

	blogs, err := s.m.listByCategory(ctx, category)
	if err != nil {
		return nil, category, err
	}

	return blogs, category, nil
}

// SearchBlogs returns up to SearchResultLimit published blogs matching q.
// A blank query matches nothing.
func (s *BlogService) SearchBlogs(ctx context.Context, q string) ([]Blog, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Blog{}, nil
	}

	return s.m.search(ctx, q, SearchResultLimit)
}

func (s *BlogService) GetFeaturedBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := common.Lookup[[]Blog](s.c, common.CacheKeyFeaturedBlogs); ok {
		return cached, nil
	}

	gen := s.c.Generation()

	blogs, err := s.m.featured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}

	s.c.SetAt(gen, common.CacheKeyFeaturedBlogs, blogs, cacheTTL)

	return blogs, nil
}

// AdminListBlogs lists every blog regardless of its published flag.
func (s *BlogService) AdminListBlogs(ctx context.Context, page, limit int, search string) (*BlogPage, error) {
	page, limit = normalizePage(page, limit, DefaultAdminPageLimit)

	blogs, total, err := s.m.listAll(ctx, strings.TrimSpace(search), limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &BlogPage{Blogs: blogs, Pagination: newPagination(page, limit, total)}, nil
}

// GetBlogByID returns any blog with its content. Views are not counted.
func (s *BlogService) GetBlogByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	return s.m.getByID(ctx, id)
}

func (s *BlogService) GetStats(ctx context.Context) (*Stats, error) {
	if cached, ok := common.Lookup[Stats](s.c, common.CacheKeyBlogStats); ok {
		return &cached, nil
	}

	gen := s.c.Generation()

	stats, err := s.m.stats(ctx)
	if err != nil {
		return nil, err
	}

	s.c.SetAt(gen, common.CacheKeyBlogStats, *stats, cacheTTL)

	return stats, nil
}

func attachImage(blog *Blog, upload *ImageUpload) {
	if upload == nil {
		return
	}

	url, ref := upload.URL, upload.Ref
	blog.Image = &url
	blog.ImageRef = &ref
}

func (s *BlogService) releaseImage(ctx context.Context, ref string) {
	if s.media == nil {
		s.logger.Warn("media host not configured, image left in place", "ref", ref)
		return
	}

	if err := s.media.Delete(ctx, ref); err != nil {
		s.logger.Warn("failed to delete image from media host", "ref", ref, "error", err.Error())
	}
}

func (s *BlogService) invalidate() {
	s.c.Invalidate(common.CacheKeyFeaturedBlogs, common.CacheKeyBlogStats)
}

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return page, limit
}

func newPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalBlogs:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
