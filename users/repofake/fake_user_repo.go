package userrepofake

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-auth-api/users"
)

var _ users.UserRepo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	byID    map[string]*users.User
	byEmail map[string]string // email to user ID
	lock    sync.RWMutex
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		byID:    make(map[string]*users.User),
		byEmail: make(map[string]string),
	}
}

func (ur *FakeUserRepo) Create(_ context.Context, user *users.User) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.byEmail[user.Email]; ok {
		return users.ErrDuplicateEmail
	}

	copied := *user
	ur.byID[user.ID] = &copied
	ur.byEmail[user.Email] = user.ID
	return nil
}

func (ur *FakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	id, ok := ur.byEmail[email]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *ur.byID[id]
	return &copied, nil
}

func (ur *FakeUserRepo) GetByID(_ context.Context, id string) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	user, ok := ur.byID[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	copied := *user
	return &copied, nil
}
