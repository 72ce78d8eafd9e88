package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sushihentaime/gadgetpress/internal/common"
)

const slugConstraint = "blogs_slug_key"

var errSlugTaken = errors.New("slug already taken")

const (
	blogColumns = `id, title, slug, description, content, category, price, affiliate_link,
		image, image_ref, tags, views, featured, published, created_at, updated_at`

	// list results never carry the body
	blogSummaryColumns = `id, title, slug, description, '' AS content, category, price, affiliate_link,
		image, image_ref, tags, views, featured, published, created_at, updated_at`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func scanBlog(row rowScanner) (*Blog, error) {
	var (
		blog          Blog
		price         sql.NullFloat64
		affiliateLink sql.NullString
		image         sql.NullString
		imageRef      sql.NullString
	)

	err := row.Scan(&blog.ID, &blog.Title, &blog.Slug, &blog.Description, &blog.Content, &blog.Category,
		&price, &affiliateLink, &image, &imageRef, pq.Array(&blog.Tags), &blog.Views, &blog.Featured,
		&blog.Published, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if price.Valid {
		blog.Price = &price.Float64
	}
	if affiliateLink.Valid {
		blog.AffiliateLink = &affiliateLink.String
	}
	if image.Valid {
		blog.Image = &image.String
	}
	if imageRef.Valid {
		blog.ImageRef = &imageRef.String
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	return &blog, nil
}

func scanOne(row *sql.Row) (*Blog, error) {
	blog, err := scanBlog(row)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return blog, nil
}

func (m *BlogModel) queryBlogs(ctx context.Context, query string, args ...any) ([]Blog, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// escapeLike makes s match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func (m *BlogModel) slugTaken(ctx context.Context, slug string, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM blogs WHERE slug = $1 AND id <> $2)`

	var taken bool
	err := m.db.QueryRowContext(ctx, query, slug, id).Scan(&taken)
	return taken, err
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, description, content, category, price, affiliate_link,
			image, image_ref, tags, featured, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING views, created_at, updated_at`

	args := []any{blog.ID, blog.Title, blog.Slug, blog.Description, blog.Content, blog.Category,
		blog.Price, blog.AffiliateLink, blog.Image, blog.ImageRef, pq.Array(blog.Tags), blog.Featured, blog.Published}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.Views, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case common.UniqueViolation(err, slugConstraint):
			return errSlugTaken
		default:
			return err
		}
	}

	return nil
}

// update writes the editable fields of blog. Views and the two flags are
// owned by their own statements and are refreshed from the row instead.
func (m *BlogModel) update(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $2, slug = $3, description = $4, content = $5, category = $6, price = $7,
			affiliate_link = $8, image = $9, image_ref = $10, tags = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	args := []any{blog.ID, blog.Title, blog.Slug, blog.Description, blog.Content, blog.Category,
		blog.Price, blog.AffiliateLink, blog.Image, blog.ImageRef, pq.Array(blog.Tags)}

	updated, err := scanOne(m.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case common.UniqueViolation(err, slugConstraint):
			return errSlugTaken
		default:
			return err
		}
	}

	*blog = *updated
	return nil
}

func (m *BlogModel) delete(ctx context.Context, id uuid.UUID) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return common.ErrRecordNotFound
	}

	return nil
}

func (m *BlogModel) toggleFeatured(ctx context.Context, id uuid.UUID) (*Blog, error) {
	query := `
		UPDATE blogs SET featured = NOT featured, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	return scanOne(m.db.QueryRowContext(ctx, query, id))
}

func (m *BlogModel) togglePublished(ctx context.Context, id uuid.UUID) (*Blog, error) {
	query := `
		UPDATE blogs SET published = NOT published, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	return scanOne(m.db.QueryRowContext(ctx, query, id))
}

func (m *BlogModel) getByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	return scanOne(m.db.QueryRowContext(ctx, query, id))
}

// viewBySlug returns a published blog and counts the view in the same
// statement.
func (m *BlogModel) viewBySlug(ctx context.Context, slug string) (*Blog, error) {
	query := `
		UPDATE blogs SET views = views + 1
		WHERE slug = $1 AND published
		RETURNING ` + blogColumns

	return scanOne(m.db.QueryRowContext(ctx, query, slug))
}

func (m *BlogModel) listPublished(ctx context.Context, limit, offset int) ([]Blog, int, error) {
	var total int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE published`).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + blogSummaryColumns + `
		FROM blogs
		WHERE published
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	blogs, err := m.queryBlogs(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (m *BlogModel) listByCategory(ctx context.Context, category Category) ([]Blog, error) {
	query := `
		SELECT ` + blogSummaryColumns + `
		FROM blogs
		WHERE published AND category = $1
		ORDER BY created_at DESC, id DESC`

	return m.queryBlogs(ctx, query, category)
}

// search matches q case-insensitively against title, description and every tag.
func (m *BlogModel) search(ctx context.Context, q string, limit int) ([]Blog, error) {
	query := `
		SELECT ` + blogSummaryColumns + `
		FROM blogs
		WHERE published AND (
			title ILIKE $1
			OR description ILIKE $1
			OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $1)
		)
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	return m.queryBlogs(ctx, query, containsPattern(q), limit)
}

func (m *BlogModel) featured(ctx context.Context, limit int) ([]Blog, error) {
	query := `
		SELECT ` + blogSummaryColumns + `
		FROM blogs
		WHERE published AND featured
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	return m.queryBlogs(ctx, query, limit)
}

// listAll backs the admin listing. An empty q matches everything.
func (m *BlogModel) listAll(ctx context.Context, q string, limit, offset int) ([]Blog, int, error) {
	filter := `($1 = '' OR title ILIKE $2 OR description ILIKE $2)`
	pattern := containsPattern(q)

	var total int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs WHERE `+filter, q, pattern).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + blogSummaryColumns + `
		FROM blogs
		WHERE ` + filter + `
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	blogs, err := m.queryBlogs(ctx, query, q, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (m *BlogModel) stats(ctx context.Context) (*Stats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(views), 0), COUNT(DISTINCT category) FROM blogs`

	var s Stats
	err := m.db.QueryRowContext(ctx, query).Scan(&s.TotalBlogs, &s.TotalViews, &s.TotalCategories)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
