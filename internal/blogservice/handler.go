package blogservice

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/sushihentaime/bloglist/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: NewBlogModel(db)}
}

type CreateBlogRequest struct {
	Title  string
	Author string
	URL    string
	// Likes is optional; a nil value persists as zero.
	Likes  *int
	UserID uuid.UUID
}

// CreateBlog creates a new blog post owned by the given user and returns it
// with the owner resolved.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateAuthor(v, req.Author)
	validateURL(v, req.URL)
	validateLikes(v, likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	b := Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: req.UserID,
	}

	err := s.m.insert(ctx, &b)
	if err != nil {
		return nil, err
	}

	return s.m.getByID(ctx, b.ID)
}

// GetBlogByID returns a blog post with its owner resolved.
func (s *BlogService) GetBlogByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	return s.m.getByID(ctx, id)
}

// GetBlogs returns all blog posts with owners resolved.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getAll(ctx)
}

type UpdateBlogRequest struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// UpdateBlog applies a partial update to the blog: fields left nil keep
// their stored value. The ownership decision belongs to the caller; the
// owning user of the record itself never changes.
func (s *BlogService) UpdateBlog(ctx context.Context, blog *Blog, req *UpdateBlogRequest) (*Blog, error) {
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Author != nil {
		blog.Author = *req.Author
	}
	if req.URL != nil {
		blog.URL = *req.URL
	}
	if req.Likes != nil {
		blog.Likes = *req.Likes
	}

	v := common.NewValidator()
	validateTitle(v, blog.Title)
	validateAuthor(v, blog.Author)
	validateURL(v, blog.URL)
	validateLikes(v, blog.Likes)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err := s.m.update(ctx, blog)
	if err != nil {
		return nil, err
	}

	return s.m.getByID(ctx, blog.ID)
}

// DeleteBlog removes a blog post. The owned-blog reference on the user is
// intentionally left in place; reads filter it out.
func (s *BlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return s.m.delete(ctx, id)
}

// Reset bulk-deletes all blogs and owned-blog references. Test isolation
// only.
func (s *BlogService) Reset(ctx context.Context) error {
	return s.m.deleteAll(ctx)
}
