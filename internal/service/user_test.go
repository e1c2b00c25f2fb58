package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"librarysystem-backend/internal/domain"
	"librarysystem-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-0123456789-0123456789-0123456789"

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret)

	t.Run("MemberSuccess", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)

		userRepo.On("GetByUsername", ctx, "alice").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, "alice", "hunter2", "user", "alice@test.com")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleMember, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")))
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)

		userRepo.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)

		_, err := svc.Register(ctx, "alice", "hunter2", "user", "")
		assert.True(t, domain.IsConflict(err))
		assert.EqualError(t, err, "username already exists")
	})

	t.Run("LibrarianVerified", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{ok: true}, tokens)

		userRepo.On("GetByUsername", ctx, "marian").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, "marian", "shhh", "Librarian", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleLibrarian, user.Role)
	})

	t.Run("LibrarianRejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{ok: false}, tokens)

		userRepo.On("GetByUsername", ctx, "marian").Return(nil, sql.ErrNoRows)

		_, err := svc.Register(ctx, "marian", "shhh", "Librarian", "")
		assert.True(t, domain.IsConflict(err))
		assert.EqualError(t, err, "librarian verification failed")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("VerifierUnreachable", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{err: errors.New("connection refused")}, tokens)

		userRepo.On("GetByUsername", ctx, "marian").Return(nil, sql.ErrNoRows)

		_, err := svc.Register(ctx, "marian", "shhh", "Librarian", "")
		assert.Equal(t, domain.KindStorageFailure, domain.KindOf(err))
	})

	t.Run("EmptyCredentials", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepo), &stubVerifier{}, tokens)

		_, err := svc.Register(ctx, "", "pw", "user", "")
		assert.True(t, domain.IsInvalidState(err))

		_, err = svc.Register(ctx, "alice", "", "user", "")
		assert.True(t, domain.IsInvalidState(err))
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Username: "alice", PasswordHash: string(hash), Role: domain.RoleMember}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)
		userRepo.On("GetByUsername", ctx, "alice").Return(user, nil)

		access, refresh, err := svc.Login(ctx, "alice", "hunter2")
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), claims.UserID)
		assert.Equal(t, domain.RoleMember, claims.Role)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)

		claims, err = tokens.ValidateToken(refresh)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)
		userRepo.On("GetByUsername", ctx, "alice").Return(user, nil)

		_, _, err := svc.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)
		userRepo.On("GetByUsername", ctx, "nobody").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)
		userRepo.On("UpdatePassword", ctx, int32(1), mock.AnythingOfType("string")).Return(nil)

		assert.NoError(t, svc.UpdatePassword(ctx, 1, "newpw"))
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepo), &stubVerifier{}, tokens)
		err := svc.UpdatePassword(ctx, 1, "")
		assert.True(t, domain.IsInvalidState(err))
	})

	t.Run("UserNotFound", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo, &stubVerifier{}, tokens)
		userRepo.On("GetByID", ctx, int32(9)).Return(nil, sql.ErrNoRows)

		err := svc.UpdatePassword(ctx, 9, "newpw")
		assert.True(t, domain.IsNotFound(err))
	})
}
