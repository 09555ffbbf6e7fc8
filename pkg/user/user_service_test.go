package user

import (
	"Share-Recipe-Backend/domain"
	"Share-Recipe-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[uint]*entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*entities.User{}, nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username string) uint {
	t.Helper()
	u := &entities.User{Email: username + "@example.com", Username: username}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u.ID
}

func TestSetProfilePhoto_SetAndClear(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil)
	userID := seedUser(t, repo, "chef_anna")

	res, err := service.SetProfilePhoto(context.Background(), userID, "https://cdn.example.com/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", res.PhotoURL)

	// An empty URL removes the photo.
	res, err = service.SetProfilePhoto(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Empty(t, res.PhotoURL)
	assert.Empty(t, repo.users[userID].PhotoURL)
}

func TestSetProfilePhoto_UserMissing(t *testing.T) {
	service := NewUserService(newFakeUserRepo(), nil)

	_, err := service.SetProfilePhoto(context.Background(), 99, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateUser_UsernameCooldown(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil)
	userID := seedUser(t, repo, "chef_anna")

	newName := "chef_anna2"
	_, err := service.UpdateUser(context.Background(), userID, domain.UserUpdateRequest{Username: &newName})
	require.NoError(t, err)

	again := "chef_anna3"
	_, err = service.UpdateUser(context.Background(), userID, domain.UserUpdateRequest{Username: &again})
	assert.ErrorIs(t, err, domain.ErrUsernameCooldown)

	// After the cooldown window another change goes through.
	past := time.Now().UTC().Add(-UsernameCooldown - time.Hour)
	repo.users[userID].UsernameChangedAt = &past
	_, err = service.UpdateUser(context.Background(), userID, domain.UserUpdateRequest{Username: &again})
	assert.NoError(t, err)
}

func TestUpdateUser_UsernameTaken(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, nil)
	userID := seedUser(t, repo, "chef_anna")
	seedUser(t, repo, "critic")

	taken := "critic"
	_, err := service.UpdateUser(context.Background(), userID, domain.UserUpdateRequest{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}
