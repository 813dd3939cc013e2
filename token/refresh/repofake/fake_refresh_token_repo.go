package refreshrepofake

import (
	"context"
	"sync"

	"github.com/jrsteele09/go-auth-api/token/refresh"
)

var _ refresh.Repo = (*FakeRefreshTokenRepo)(nil)

type FakeRefreshTokenRepo struct {
	records map[string]*refresh.StoredRefreshToken // keyed by user ID
	lock    sync.RWMutex
}

func NewFakeRefreshTokenRepo() *FakeRefreshTokenRepo {
	return &FakeRefreshTokenRepo{
		records: make(map[string]*refresh.StoredRefreshToken),
	}
}

func (tr *FakeRefreshTokenRepo) Upsert(_ context.Context, record *refresh.StoredRefreshToken) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	copied := *record
	tr.records[record.UserID] = &copied
	return nil
}

func (tr *FakeRefreshTokenRepo) GetByUserID(_ context.Context, userID string) (*refresh.StoredRefreshToken, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	record, ok := tr.records[userID]
	if !ok {
		return nil, refresh.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

// Count returns the number of stored records. Test helper.
func (tr *FakeRefreshTokenRepo) Count() int {
	tr.lock.RLock()
	defer tr.lock.RUnlock()
	return len(tr.records)
}
