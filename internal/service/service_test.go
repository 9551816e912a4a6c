package service

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-auth-service/internal/config"
	"github.com/spec-kit/user-auth-service/internal/domain"
	apperrors "github.com/spec-kit/user-auth-service/pkg/util"
)

// fakeUserRepo is an in-memory UserRepository. Create rejects duplicate
// emails the way the real repository does via the unique index.
type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.NewConflict("a user with this email already exists")
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			TokenTTLHours: 1,
			BcryptCost:    4,
		},
	}
}
