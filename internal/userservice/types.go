package userservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sushihentaime/bloglist/internal/common"
)

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	logger *slog.Logger
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        uuid.UUID
	Username  string
	Name      string
	Email     string
	Password  Password
	CreatedAt time.Time

	// Blogs holds the resolved owned-blog references. Populated by the
	// read operations, empty elsewhere.
	Blogs []BlogRef
}

type Password struct {
	Plain string
	hash  []byte
}

// BlogRef is the projection of an owned blog embedded in a user view.
type BlogRef struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// UserView is the public shape of a user record. The password hash and the
// email address are never part of it.
type UserView struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
	Blogs    []BlogRef `json:"blogs"`
}

// View builds the public view of the user.
func (u *User) View() UserView {
	blogs := u.Blogs
	if blogs == nil {
		blogs = []BlogRef{}
	}

	return UserView{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Blogs:    blogs,
	}
}
