package service

import (
	"context"
	"database/sql"
	"errors"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/logger"
	"librarysystem-backend/internal/repository"
	"librarysystem-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")

type userService struct {
	userRepo repository.UserRepository
	verifier LibrarianVerifier
	tokens   security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, verifier LibrarianVerifier, tokens security.TokenManager) UserService {
	return &userService{
		userRepo: userRepo,
		verifier: verifier,
		tokens:   tokens,
	}
}

func (s *userService) Register(ctx context.Context, username, password, roleLabel, email string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.InvalidState("username and password are required")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, domain.StorageFailure("failed to look up username", err)
	}
	if existing != nil {
		return nil, domain.Conflict("username already exists")
	}

	role := domain.ParseRole(roleLabel)
	if role == domain.RoleLibrarian {
		ok, err := s.verifier.Verify(ctx)
		if err != nil {
			return nil, domain.StorageFailure("librarian verification call failed", err)
		}
		if !ok {
			return nil, domain.Conflict("librarian verification failed")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Email:        email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, domain.StorageFailure("failed to create user", err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("user not found")
	}
	if err != nil {
		return nil, domain.StorageFailure("failed to load user", err)
	}
	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id int32, newPassword string) error {
	if newPassword == "" {
		return domain.InvalidState("new password must not be empty")
	}

	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return domain.StorageFailure("failed to update password", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int32) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("user not found, delete failed")
	}
	if err != nil {
		return domain.StorageFailure("failed to delete user", err)
	}
	return nil
}
