package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
)

// fakeAccounts is a minimal AccountService keeping one map of accounts.
type fakeAccounts struct {
	mu       sync.Mutex
	accounts map[int64]*models.Account
	nextID   int64
	err      error

	lastID int64
	lastOp models.Operation
	lastKV string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: map[int64]*models.Account{}}
}

func (f *fakeAccounts) get(id int64) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, &common.NotFoundError{Entity: "account", Key: "x"}
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) apply(id int64, fn func(a *models.Account)) (*models.Account, error) {
	if _, err := f.get(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	fn(f.accounts[id])
	f.mu.Unlock()
	return f.get(id)
}

func (f *fakeAccounts) SignUp(ctx context.Context, form models.SignUpForm) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	a := &models.Account{ID: f.nextID, Email: form.Email, Nickname: form.Nickname, PasswordHash: "secret-hash"}
	f.accounts[a.ID] = a
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) Login(ctx context.Context, email, password string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Email == email && password == "12345678" {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorUnauthorized
}

func (f *fakeAccounts) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	return f.get(id)
}

func (f *fakeAccounts) GetTags(ctx context.Context, id int64) ([]string, error) {
	a, err := f.get(id)
	if err != nil {
		return nil, err
	}
	return a.TagTitles(), nil
}

func (f *fakeAccounts) GetZones(ctx context.Context, id int64) ([]string, error) {
	if _, err := f.get(id); err != nil {
		return nil, err
	}
	return []string{"Andong(안동시)/North Gyeongsang"}, nil
}

func (f *fakeAccounts) ListAllTags(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Go", "Spring"}, nil
}

func (f *fakeAccounts) ListAllZones(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Andong(안동시)/North Gyeongsang"}, nil
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, id int64, p models.Profile) (*models.Account, error) {
	return f.apply(id, func(a *models.Account) { a.Profile = p })
}

func (f *fakeAccounts) UpdatePassword(ctx context.Context, id int64, form models.PasswordForm) (*models.Account, error) {
	return f.apply(id, func(a *models.Account) { a.PasswordHash = "changed" })
}

func (f *fakeAccounts) UpdateNickname(ctx context.Context, id int64, nickname string) (*models.Account, error) {
	return f.apply(id, func(a *models.Account) { a.Nickname = nickname })
}

func (f *fakeAccounts) UpdateNotifications(ctx context.Context, id int64, n models.Notifications) (*models.Account, error) {
	return f.apply(id, func(a *models.Account) { a.Notifications = n })
}

func (f *fakeAccounts) UpdateTag(ctx context.Context, id int64, op models.Operation, title string) (*models.Account, error) {
	f.mu.Lock()
	f.lastOp, f.lastKV = op, title
	f.mu.Unlock()
	return f.apply(id, func(a *models.Account) { a.Tags = append(a.Tags, models.Tag{ID: 1, Title: title}) })
}

func (f *fakeAccounts) UpdateZone(ctx context.Context, id int64, op models.Operation, key string) (*models.Account, error) {
	f.mu.Lock()
	f.lastOp, f.lastKV = op, key
	f.mu.Unlock()
	return f.get(id)
}
