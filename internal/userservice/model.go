package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("duplicate username")
)

func NewUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

// uniqueViolation reports whether err is a unique constraint violation on
// the named constraint.
func uniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == name
	}

	return false
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, username, name, email, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	u.ID = uuid.New()

	args := []any{
		u.ID,
		u.Username,
		nullString(u.Name),
		nullString(u.Email),
		u.Password.hash,
	}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.CreatedAt)
	if err != nil {
		switch {
		case uniqueViolation(err, "users_username_key"):
			return ErrDuplicateUsername
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByUsername(ctx context.Context, username string) (*User, error) {
	query := `
		SELECT id, username, COALESCE(name, ''), COALESCE(email, ''), password, created_at
		FROM users
		WHERE username = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Password.hash, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, username, COALESCE(name, ''), COALESCE(email, ''), created_at
		FROM users
		WHERE id = $1`

	var u User

	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getAll(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, username, COALESCE(name, ''), COALESCE(email, ''), created_at
		FROM users
		ORDER BY created_at`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// getBlogRefs batch-fetches the owned-blog projections for the given users.
// The join through the blogs table filters out references whose blog has
// been deleted, so a stale link row never surfaces in a view.
func (m *UserModel) getBlogRefs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]BlogRef, error) {
	query := `
		SELECT ub.user_id, b.title, b.author, b.url, b.likes
		FROM user_blogs ub
		JOIN blogs b ON b.id = ub.blog_id
		WHERE ub.user_id = ANY($1::uuid[])
		ORDER BY b.created_at`

	ids := make([]string, len(userIDs))
	for i, id := range userIDs {
		ids[i] = id.String()
	}

	rows, err := m.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := make(map[uuid.UUID][]BlogRef)
	for rows.Next() {
		var (
			userID uuid.UUID
			ref    BlogRef
		)
		err := rows.Scan(&userID, &ref.Title, &ref.Author, &ref.URL, &ref.Likes)
		if err != nil {
			return nil, err
		}
		refs[userID] = append(refs[userID], ref)
	}

	return refs, rows.Err()
}

func (m *UserModel) deleteAll(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM users")
	return err
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
