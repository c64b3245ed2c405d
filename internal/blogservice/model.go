package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateTitle = errors.New("duplicate title")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func NewBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

func pqErrorIs(err error, code pq.ErrorCode, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code && pqErr.Constraint == constraint
	}

	return false
}

// insert creates the blog row and appends the owned-blog reference in the
// same transaction. The reference is written exactly once per creation and
// is never removed by a later delete.
func (m *BlogModel) insert(ctx context.Context, b *Blog) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	b.ID = uuid.New()

	query := `
		INSERT INTO blogs (id, title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, query, b.ID, b.Title, b.Author, b.URL, b.Likes, b.UserID).Scan(&b.CreatedAt)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case pqErrorIs(err, "23505", "blogs_title_key"):
			return ErrDuplicateTitle
		case pqErrorIs(err, "23503", "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO user_blogs (user_id, blog_id) VALUES ($1, $2)", b.UserID, b.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (m *BlogModel) getByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id, b.created_at, u.username, COALESCE(u.name, '')
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1`

	var b Blog

	err := m.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID, &b.CreatedAt, &b.Owner.Username, &b.Owner.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	b.Owner.ID = b.UserID

	return &b, nil
}

func (m *BlogModel) getAll(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id, b.created_at, u.username, COALESCE(u.name, '')
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var b Blog
		err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.UserID, &b.CreatedAt, &b.Owner.Username, &b.Owner.Name)
		if err != nil {
			return nil, err
		}
		b.Owner.ID = b.UserID
		blogs = append(blogs, b)
	}

	return blogs, rows.Err()
}

func (m *BlogModel) update(ctx context.Context, b *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4
		WHERE id = $5`

	res, err := m.db.ExecContext(ctx, query, b.Title, b.Author, b.URL, b.Likes, b.ID)
	if err != nil {
		switch {
		case pqErrorIs(err, "23505", "blogs_title_key"):
			return ErrDuplicateTitle
		default:
			return err
		}
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// delete removes the blog row only. The owned-blog reference row is left
// behind; view queries join through the blogs table so it never surfaces.
func (m *BlogModel) delete(ctx context.Context, id uuid.UUID) error {
	res, err := m.db.ExecContext(ctx, "DELETE FROM blogs WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *BlogModel) deleteAll(ctx context.Context) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM user_blogs")
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM blogs")
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
