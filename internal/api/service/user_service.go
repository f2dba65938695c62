package service

import (
	"context"
	"log/slog"
	"time"

	"bookatlas/book-discovery/internal/api/models"
	"bookatlas/book-discovery/internal/api/repository"

	"golang.org/x/crypto/bcrypt"
)

// bootstrapAdminUsername is the account EnsureAdmin maintains.
const bootstrapAdminUsername = "admin"

// UserService defines the interface for credential-related business logic.
// Login is a stateless credential check; no session or token exists.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	EnsureAdmin(ctx context.Context) error
}

type userService struct {
	userRepo      repository.UserRepository
	adminPassword string
}

// NewUserService creates a new UserService. adminPassword seeds the
// bootstrap admin account only; it is never logged.
func NewUserService(userRepo repository.UserRepository, adminPassword string) UserService {
	return &userService{userRepo: userRepo, adminPassword: adminPassword}
}

// Register handles user registration. The username check is exact and
// case-sensitive; the column's UNIQUE constraint backstops it.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateUsername
	}

	return s.createUser(ctx, req.Username, req.Password, false)
}

// Login verifies the supplied credentials and returns the user.
// Unknown usernames and wrong passwords produce the same error, so a
// caller cannot probe which usernames exist.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates the default admin account if it does not exist.
// Safe to call on every startup.
func (s *userService) EnsureAdmin(ctx context.Context) error {
	existing, err := s.userRepo.GetByUsername(ctx, bootstrapAdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if _, err := s.createUser(ctx, bootstrapAdminUsername, s.adminPassword, true); err != nil {
		return err
	}
	slog.InfoContext(ctx, "default admin user created", slog.String("username", bootstrapAdminUsername))
	return nil
}

func (s *userService) createUser(ctx context.Context, username, password string, isAdmin bool) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Password:  string(hashed),
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
