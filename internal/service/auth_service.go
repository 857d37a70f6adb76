package service

import (
	"context"
	"errors"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/pkg"
	"Tieba_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrNameTaken     = errors.New("name already taken")
	ErrInvalidParams = errors.New("invalid params")
)

// DefaultUserKind tags identities registered through the normal path.
const DefaultUserKind = "U"

type AuthService struct {
	users  *mysql.UserRepository
	hasher pkg.Hasher
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		users:  &mysql.UserRepository{DB: db},
		hasher: pkg.SHA256Hasher,
	}
}

// Register creates an identity with a fresh random salt and zero experience.
// A duplicate name surfaces as ErrNameTaken off the unique index; nothing is
// written in that case.
func (s *AuthService) Register(ctx context.Context, name, secret, kind string) (uint64, error) {
	if name == "" || secret == "" {
		return 0, ErrInvalidParams
	}
	if kind == "" {
		kind = DefaultUserKind
	}

	salt, err := pkg.NewSalt()
	if err != nil {
		return 0, err
	}

	user := &model.User{
		Kind:     kind,
		Name:     name,
		Password: s.hasher(secret, salt),
		Salt:     salt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrNameTaken
		}
		return 0, err
	}
	return user.ID, nil
}

// Authenticate returns the identity id on success and 0 when either the
// name is unknown or the secret is wrong — the two cases are deliberately
// indistinguishable, and neither is an error.
func (s *AuthService) Authenticate(ctx context.Context, name, secret string) (uint64, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, nil
	}
	if !pkg.HashEqual(s.hasher(secret, user.Salt), user.Password) {
		return 0, nil
	}
	return user.ID, nil
}

// GetUserByID is the public identity lookup; (nil, nil) when absent.
func (s *AuthService) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}
