package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, logger *slog.Logger) *UserService {
	return &UserService{
		m:      NewUserModel(db),
		mb:     mb,
		logger: logger,
	}
}

// CreateUser registers a new user. The display name and the email address
// are optional. When an email address is given a user.registered event is
// published for the welcome mail consumer; a broker failure is logged and
// does not fail the registration.
func (s *UserService) CreateUser(ctx context.Context, username, name, email, password string) (*User, error) {
	v := common.NewValidator()
	validateUsername(v, username)
	validateName(v, name)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Username: username,
		Name:     name,
		Email:    email,
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	if u.Email != "" {
		s.publishRegistered(ctx, &u)
	}

	return &u, nil
}

type registeredEvent struct {
	Email    string
	Username string
	Name     string
}

func (s *UserService) publishRegistered(ctx context.Context, u *User) {
	data, err := json.Marshal(registeredEvent{
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
	})
	if err != nil {
		s.logger.Error("could not marshal user registered event", slog.String("error", err.Error()))
		return
	}

	err = s.mb.Publish(ctx, data, common.UserRegisteredKey, common.UserExchange)
	if err != nil {
		s.logger.Error("could not publish user registered event", slog.String("username", u.Username), slog.String("error", err.Error()))
	}
}

// Authenticate verifies a username and password pair. An unknown username
// and a wrong password both return ErrInvalidCredentials; the unknown-user
// path still performs a hash comparison so the two are indistinguishable
// from the outside.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	v := common.NewValidator()
	v.Check(username != "", "username", "must be provided")
	v.Check(password != "", "password", "must be provided")
	if !v.Valid() {
		return nil, ErrInvalidCredentials
	}

	user, err := s.m.getByUsername(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			compareDummy(password)
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUsers returns all users with their owned-blog references resolved.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	users, err := s.m.getAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return users, nil
	}

	ids := make([]uuid.UUID, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}

	refs, err := s.m.getBlogRefs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Blogs = refs[users[i].ID]
	}

	return users, nil
}

// GetUserByID returns a single user with resolved blog references.
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := s.m.getBlogRefs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	user.Blogs = refs[id]

	return user, nil
}

// Reset bulk-deletes all users. Test isolation only; blog rows and link
// rows must be removed first because blogs reference users.
func (s *UserService) Reset(ctx context.Context) error {
	return s.m.deleteAll(ctx)
}
