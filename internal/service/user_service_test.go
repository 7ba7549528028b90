package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	errs "examdesk/internal/errors"
	"examdesk/internal/model"
)

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	existing := &model.User{ID: uuid.New(), Email: "taken@example.com"}
	users.On("FindByEmailFold", mock.Anything, "taken@example.com").Return(existing, nil)

	_, err := svc.Create(context.Background(), "taken@example.com", "password123", nil)
	assert.ErrorIs(t, err, errs.ErrDuplicate)
	assert.EqualError(t, err, "Duplicate email")
}

func TestUserService_Create_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	users.On("FindByEmailFold", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Create(context.Background(), "new@example.com", "password123", []string{"Admin"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, []string{"Admin"}, []string(user.Roles))

	users.AssertExpectations(t)
}

func TestUserService_Update_RehashesOnlyWhenPasswordSupplied(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	id := uuid.New()
	originalHash := "$2a$10$unchanged-hash-value"
	user := &model.User{ID: id, Email: "user@example.com", PasswordHash: originalHash, Active: true}
	users.On("FindByID", mock.Anything, id).Return(user, nil)
	users.On("FindByEmailFold", mock.Anything, "user@example.com").Return(user, nil)
	users.On("Save", mock.Anything, user).Return(nil)

	updated, err := svc.Update(context.Background(), id, "user@example.com", []string{"Admin"}, false, "")
	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.PasswordHash)
	assert.False(t, updated.Active)

	updated, err = svc.Update(context.Background(), id, "user@example.com", []string{"Admin"}, true, "brand-new-pass")
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("brand-new-pass")))
}

func TestUserService_Update_EmailCollision(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	id := uuid.New()
	users.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Email: "user@example.com"}, nil)
	other := &model.User{ID: uuid.New(), Email: "taken@example.com"}
	users.On("FindByEmailFold", mock.Anything, "taken@example.com").Return(other, nil)

	_, err := svc.Update(context.Background(), id, "taken@example.com", nil, true, "")
	assert.ErrorIs(t, err, errs.ErrDuplicate)
	assert.EqualError(t, err, "Duplicate email")
}

func TestUserService_Delete_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	id := uuid.New()
	users.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.EqualError(t, err, "User not found")
}

func TestUserService_Delete_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewUserService(users)

	id := uuid.New()
	user := &model.User{ID: id, Email: "user@example.com"}
	users.On("FindByID", mock.Anything, id).Return(user, nil)
	users.On("Delete", mock.Anything, id).Return(nil)

	deleted, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", deleted.Email)
}
