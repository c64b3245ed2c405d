package blogservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/bloglist/internal/common"
)

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		for _, stmt := range []string{"DELETE FROM user_blogs", "DELETE FROM blogs", "DELETE FROM users"} {
			_, err := db.Exec(stmt)
			if err != nil {
				return err
			}
		}

		return nil
	}

	return NewBlogService(db), db, cleanup
}

func createBlogOwner(t *testing.T, db *sql.DB, username string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(
		"INSERT INTO users (id, username, password) VALUES ($1, $2, $3)",
		id, username, []byte("not-a-real-hash"),
	)
	assert.NoError(t, err)

	return id
}

func strptr(s string) *string {
	return &s
}

func intptr(i int) *int {
	return &i
}

func TestCreateBlog(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name           string
		req            func(owner uuid.UUID) *CreateBlogRequest
		setup          func(ctx context.Context, owner uuid.UUID) error
		wantErr        error
		wantErrMsg     string
		wantLikes      int
		checkReference bool
	}{
		{
			name: "valid blog",
			req: func(owner uuid.UUID) *CreateBlogRequest {
				return &CreateBlogRequest{
					Title:  "React patterns",
					Author: "Michael Chan",
					URL:    "https://reactpatterns.com/",
					Likes:  intptr(7),
					UserID: owner,
				}
			},
			wantLikes:      7,
			checkReference: true,
		},
		{
			name: "likes defaults to zero",
			req: func(owner uuid.UUID) *CreateBlogRequest {
				return &CreateBlogRequest{
					Title:  "Go Slices",
					Author: "Rob Pike",
					URL:    "https://go.dev/blog/slices",
					UserID: owner,
				}
			},
			wantLikes: 0,
		},
		{
			name: "short title",
			req: func(owner uuid.UUID) *CreateBlogRequest {
				return &CreateBlogRequest{
					Title:  "Go",
					Author: "Rob Pike",
					URL:    "https://go.dev/blog",
					UserID: owner,
				}
			},
			wantErrMsg: "validation error: map[title:must be between 3 and 50 characters long]",
		},
		{
			name: "negative likes",
			req: func(owner uuid.UUID) *CreateBlogRequest {
				return &CreateBlogRequest{
					Title:  "React patterns",
					Author: "Michael Chan",
					URL:    "https://reactpatterns.com/",
					Likes:  intptr(-1),
					UserID: owner,
				}
			},
			wantErrMsg: "validation error: map[likes:must not be negative]",
		},
		{
			name: "duplicate title",
			req: func(owner uuid.UUID) *CreateBlogRequest {
				return &CreateBlogRequest{
					Title:  "React patterns",
					Author: "Michael Chan",
					URL:    "https://reactpatterns.com/",
					UserID: owner,
				}
			},
			setup: func(ctx context.Context, owner uuid.UUID) error {
				_, err := s.CreateBlog(ctx, &CreateBlogRequest{
					Title:  "React patterns",
					Author: "Someone Else",
					URL:    "https://example.com/first",
					UserID: owner,
				})
				return err
			},
			wantErr: ErrDuplicateTitle,
		},
		{
			name: "unknown owner",
			req: func(uuid.UUID) *CreateBlogRequest {
				return &CreateBlogRequest{
					Title:  "React patterns",
					Author: "Michael Chan",
					URL:    "https://reactpatterns.com/",
					UserID: uuid.New(),
				}
			},
			wantErr: ErrUserForeignKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			owner := createBlogOwner(t, db, "mluukkai")

			if tc.setup != nil {
				assert.NoError(t, tc.setup(ctx, owner))
			}

			blog, err := s.CreateBlog(ctx, tc.req(owner))

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantErrMsg != "":
				assert.EqualError(t, err, tc.wantErrMsg)
			default:
				assert.NoError(t, err)
				assert.NotZero(t, blog.ID)
				assert.Equal(t, tc.wantLikes, blog.Likes)
				assert.Equal(t, owner, blog.Owner.ID)
				assert.Equal(t, "mluukkai", blog.Owner.Username)

				if tc.checkReference {
					var count int
					err = db.QueryRow("SELECT COUNT(*) FROM user_blogs WHERE user_id = $1 AND blog_id = $2", owner, blog.ID).Scan(&count)
					assert.NoError(t, err)
					assert.Equal(t, 1, count)
				}
			}

			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})
		})
	}
}

func TestUpdateBlog(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	owner := createBlogOwner(t, db, "mluukkai")

	blog, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		Likes:  intptr(7),
		UserID: owner,
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := s.UpdateBlog(ctx, blog, &UpdateBlogRequest{Likes: intptr(8)})
		assert.NoError(t, err)

		assert.Equal(t, 8, updated.Likes)
		assert.Equal(t, "React patterns", updated.Title)
		assert.Equal(t, "Michael Chan", updated.Author)
		assert.Equal(t, owner, updated.UserID)
	})

	t.Run("full update", func(t *testing.T) {
		updated, err := s.UpdateBlog(ctx, blog, &UpdateBlogRequest{
			Title:  strptr("React patterns, revisited"),
			Author: strptr("Michael Chan"),
			URL:    strptr("https://reactpatterns.com/v2"),
			Likes:  intptr(10),
		})
		assert.NoError(t, err)

		assert.Equal(t, "React patterns, revisited", updated.Title)
		assert.Equal(t, "https://reactpatterns.com/v2", updated.URL)
		assert.Equal(t, 10, updated.Likes)
	})

	t.Run("invalid update is rejected", func(t *testing.T) {
		fresh, err := s.GetBlogByID(ctx, blog.ID)
		assert.NoError(t, err)

		_, err = s.UpdateBlog(ctx, fresh, &UpdateBlogRequest{Title: strptr("ab")})
		assert.EqualError(t, err, "validation error: map[title:must be between 3 and 50 characters long]")
	})

	t.Run("deleted blog answers not found", func(t *testing.T) {
		fresh, err := s.GetBlogByID(ctx, blog.ID)
		assert.NoError(t, err)

		assert.NoError(t, s.DeleteBlog(ctx, blog.ID))

		_, err = s.UpdateBlog(ctx, fresh, &UpdateBlogRequest{Likes: intptr(11)})
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestDeleteBlog(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	owner := createBlogOwner(t, db, "mluukkai")

	blog, err := s.CreateBlog(ctx, &CreateBlogRequest{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		UserID: owner,
	})
	assert.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	assert.NoError(t, s.DeleteBlog(ctx, blog.ID))

	_, err = s.GetBlogByID(ctx, blog.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// the owned-blog reference row survives the delete
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM user_blogs WHERE blog_id = $1", blog.ID).Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, s.DeleteBlog(ctx, blog.ID), ErrRecordNotFound)
}

func TestGetBlogs(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t.Run("empty list", func(t *testing.T) {
		blogs, err := s.GetBlogs(ctx)
		assert.NoError(t, err)
		assert.Empty(t, blogs)
	})

	t.Run("owners resolved", func(t *testing.T) {
		owner := createBlogOwner(t, db, "mluukkai")

		for _, title := range []string{"React patterns", "Go Slices"} {
			_, err := s.CreateBlog(ctx, &CreateBlogRequest{
				Title:  title,
				Author: "Michael Chan",
				URL:    "https://example.com/" + title,
				UserID: owner,
			})
			assert.NoError(t, err)
		}

		blogs, err := s.GetBlogs(ctx)
		assert.NoError(t, err)
		assert.Len(t, blogs, 2)

		for _, b := range blogs {
			assert.Equal(t, "mluukkai", b.Owner.Username)

			view := b.View()
			assert.Equal(t, b.ID.String(), view.ID)
			assert.Equal(t, owner.String(), view.User.ID)
		}

		t.Cleanup(func() {
			assert.NoError(t, cleanup())
		})
	})
}
