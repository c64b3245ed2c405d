package blogservice

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID        uuid.UUID
	Title     string
	Author    string
	URL       string
	Likes     int
	UserID    uuid.UUID
	CreatedAt time.Time

	// Owner holds the resolved owning user. Populated by the read
	// operations that join the users table.
	Owner Owner
}

type Owner struct {
	ID       uuid.UUID
	Username string
	Name     string
}

// OwnerID reports the owning user of the blog. Safe on a nil receiver so a
// missing record reads as ownerless rather than panicking.
func (b *Blog) OwnerID() uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.UserID
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}

// BlogView is the public shape of a blog record. The id is a string and no
// internal column ever appears.
type BlogView struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	URL    string    `json:"url"`
	Likes  int       `json:"likes"`
	User   OwnerView `json:"user"`
}

type OwnerView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// View builds the public view of the blog.
func (b *Blog) View() BlogView {
	return BlogView{
		ID:     b.ID.String(),
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		User: OwnerView{
			ID:       b.Owner.ID.String(),
			Username: b.Owner.Username,
			Name:     b.Owner.Name,
		},
	}
}
