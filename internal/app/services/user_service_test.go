package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
	"github.com/tolga/acadapi/internal/pkg/auth"
)

// fakeUserRepo is an in-memory IUserRepository for service tests
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	var users []*models.User
	for id := int64(1); id < f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			users = append(users, user)
		}
	}
	if offset >= len(users) {
		return nil, nil
	}
	users = users[offset:]
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.HashedPassword = hashedPassword
	return nil
}

// testHasher keeps the work factor minimal so the suite stays fast
var testHasher = auth.NewPasswordHasher(bcrypt.MinCost)

func newTestUserService(repo *fakeUserRepo) UserService {
	return NewUserService(repo, testHasher, zerolog.Nop())
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)

	user, err := service.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "plain-password",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.ID == 0 {
		t.Error("expected an assigned user id")
	}
	if user.HashedPassword == "plain-password" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(user.HashedPassword, "plain-password") {
		t.Error("stored hash does not verify against the original password")
	}
	if !user.IsActive {
		t.Error("expected is_active to default to true")
	}
	if user.IsSuperuser {
		t.Error("expected is_superuser to default to false")
	}
}

func TestCreateUserRespectsExplicitFlags(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)

	inactive := false
	user, err := service.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:       "admin@example.com",
		Password:    "plain-password",
		IsActive:    &inactive,
		IsSuperuser: true,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.IsActive {
		t.Error("expected is_active false when explicitly set")
	}
	if !user.IsSuperuser {
		t.Error("expected is_superuser true when explicitly set")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)

	req := &dto.CreateUserRequest{Email: "dup@example.com", Password: "plain-password"}
	if _, err := service.CreateUser(context.Background(), req); err != nil {
		t.Fatalf("first CreateUser failed: %v", err)
	}

	_, err := service.CreateUser(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("expected 1 stored user, got %d", len(repo.users))
	}
}

func TestListUsersReturnsTotalCount(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := service.CreateUser(context.Background(), &dto.CreateUserRequest{
			Email:    email,
			Password: "plain-password",
		}); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	users, count, err := service.ListUsers(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected total count 3, got %d", count)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user in page, got %d", len(users))
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, password string) *models.User {
	t.Helper()
	hash, err := testHasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	user := &models.User{Email: "me@example.com", HashedPassword: hash, IsActive: true}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user failed: %v", err)
	}
	return user
}

func TestUpdatePassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)
	user := seedUser(t, repo, "old-password")

	if err := service.UpdatePassword(context.Background(), user.ID, "old-password", "new-password"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}

	stored := repo.users[user.ID]
	if !auth.CheckPassword(stored.HashedPassword, "new-password") {
		t.Error("stored hash does not verify against the new password")
	}
	if auth.CheckPassword(stored.HashedPassword, "old-password") {
		t.Error("old password still verifies after the change")
	}
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)
	user := seedUser(t, repo, "old-password")
	before := repo.users[user.ID].HashedPassword

	err := service.UpdatePassword(context.Background(), user.ID, "wrong-password", "new-password")
	if !errors.Is(err, apperrors.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
	if repo.users[user.ID].HashedPassword != before {
		t.Error("stored hash changed despite failed verification")
	}
}

func TestUpdatePasswordSameAsCurrent(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)
	user := seedUser(t, repo, "old-password")
	before := repo.users[user.ID].HashedPassword

	err := service.UpdatePassword(context.Background(), user.ID, "old-password", "old-password")
	if !errors.Is(err, apperrors.ErrSamePassword) {
		t.Errorf("expected ErrSamePassword, got %v", err)
	}
	if repo.users[user.ID].HashedPassword != before {
		t.Error("stored hash changed despite no-op rejection")
	}
}

func TestUpdatePasswordInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)
	user := seedUser(t, repo, "old-password")
	user.IsActive = false
	before := repo.users[user.ID].HashedPassword

	err := service.UpdatePassword(context.Background(), user.ID, "old-password", "new-password")
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Errorf("expected ErrAccountDisabled, got %v", err)
	}
	if repo.users[user.ID].HashedPassword != before {
		t.Error("stored hash changed for a disabled account")
	}
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestUserService(repo)

	err := service.UpdatePassword(context.Background(), 99, "old-password", "new-password")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
