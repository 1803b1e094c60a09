package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/dbx"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/tags"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/zones"
)

// memStore is an in-memory stand-in for the three tables. It enforces the
// same unique constraints the schema declares, under one mutex, so that a
// racing writer is rejected the way the database would reject it.
type memStore struct {
	mu sync.Mutex

	accounts map[int64]models.Account
	nextID   int64

	tags      map[string]models.Tag
	nextTagID int64

	zones []models.Zone

	accountTags  map[int64]map[int64]bool
	accountZones map[int64]map[int64]bool

	// fault injection
	errOn map[string]error
	// tag titles that another transaction inserts right before ours
	preemptTag map[string]bool
	// when set, GetByNickname waits here so racing callers all pass the
	// advisory check before any of them writes
	nicknameBarrier *sync.WaitGroup

	writes int
}

func newMemStore() *memStore {
	return &memStore{
		accounts:     map[int64]models.Account{},
		tags:         map[string]models.Tag{},
		accountTags:  map[int64]map[int64]bool{},
		accountZones: map[int64]map[int64]bool{},
		errOn:        map[string]error{},
		preemptTag:   map[string]bool{},
	}
}

func (s *memStore) fail(op string) error {
	return s.errOn[op]
}

func (s *memStore) addAccount(email, nickname string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.accounts[s.nextID] = models.Account{ID: s.nextID, Email: email, Nickname: nickname, PasswordHash: "initial-hash"}
	return s.nextID
}

func (s *memStore) addTag(title string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTagID++
	s.tags[title] = models.Tag{ID: s.nextTagID, Title: title}
	return s.nextTagID
}

func (s *memStore) addZone(city, local, province string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := int64(len(s.zones) + 1)
	s.zones = append(s.zones, models.Zone{ID: id, City: city, LocalNameOfCity: local, Province: province})
	return id
}

func (s *memStore) account(id int64) models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts[id]
}

func (s *memStore) tagMemberships(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accountTags[id])
}

// --- accounts ---

type memAccounts struct{ s *memStore }

var _ accounts.Repository = (*memAccounts)(nil)

func (r *memAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("Create"); err != nil {
		return nil, err
	}
	for _, other := range r.s.accounts {
		if other.Email == a.Email {
			return nil, &common.DuplicateValueError{Field: "email"}
		}
		if other.Nickname == a.Nickname {
			return nil, &common.DuplicateValueError{Field: "nickname"}
		}
	}
	r.s.nextID++
	a.ID = r.s.nextID
	r.s.accounts[a.ID] = *a
	r.s.writes++
	return a, nil
}

func (r *memAccounts) get(id int64, op string) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(op); err != nil {
		return nil, err
	}
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *memAccounts) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return r.get(id, "GetByID")
}

func (r *memAccounts) GetByIDForUpdate(ctx context.Context, id int64) (*models.Account, error) {
	return r.get(id, "GetByIDForUpdate")
}

func (r *memAccounts) find(match func(models.Account) bool) (*models.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if match(a) {
			return &a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.find(func(a models.Account) bool { return a.Email == email })
}

func (r *memAccounts) GetByNickname(ctx context.Context, nickname string) (*models.Account, error) {
	a, err := r.find(func(a models.Account) bool { return a.Nickname == nickname })
	if b := r.s.nicknameBarrier; b != nil {
		b.Done()
		b.Wait()
	}
	return a, err
}

func (r *memAccounts) update(id int64, op string, fn func(a *models.Account) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail(op); err != nil {
		return err
	}
	a, ok := r.s.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	if err := fn(&a); err != nil {
		return err
	}
	r.s.accounts[id] = a
	r.s.writes++
	return nil
}

func (r *memAccounts) UpdateProfile(ctx context.Context, id int64, p models.Profile) error {
	return r.update(id, "UpdateProfile", func(a *models.Account) error {
		a.Profile = p
		return nil
	})
}

func (r *memAccounts) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return r.update(id, "UpdatePasswordHash", func(a *models.Account) error {
		a.PasswordHash = hash
		return nil
	})
}

func (r *memAccounts) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	return r.update(id, "UpdateNickname", func(a *models.Account) error {
		for otherID, other := range r.s.accounts {
			if otherID != id && other.Nickname == nickname {
				return &common.DuplicateValueError{Field: "nickname"}
			}
		}
		a.Nickname = nickname
		return nil
	})
}

func (r *memAccounts) UpdateNotifications(ctx context.Context, id int64, n models.Notifications) error {
	return r.update(id, "UpdateNotifications", func(a *models.Account) error {
		a.Notifications = n
		return nil
	})
}

// --- tags ---

type memTags struct{ s *memStore }

var _ tags.Repository = (*memTags)(nil)

func (r *memTags) FindByTitle(ctx context.Context, title string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("FindByTitle"); err != nil {
		return nil, err
	}
	t, ok := r.s.tags[title]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *memTags) Create(ctx context.Context, title string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("CreateTag"); err != nil {
		return nil, err
	}
	if r.s.preemptTag[title] {
		r.s.nextTagID++
		r.s.tags[title] = models.Tag{ID: r.s.nextTagID, Title: title}
	}
	if _, ok := r.s.tags[title]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.s.nextTagID++
	t := models.Tag{ID: r.s.nextTagID, Title: title}
	r.s.tags[title] = t
	return &t, nil
}

func (r *memTags) ListAll(ctx context.Context) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("ListAllTags"); err != nil {
		return nil, err
	}
	out := []models.Tag{}
	for _, t := range r.s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *memTags) ListByAccount(ctx context.Context, accountID int64) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Tag{}
	for _, t := range r.s.tags {
		if r.s.accountTags[accountID][t.ID] {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *memTags) AddToAccount(ctx context.Context, accountID, tagID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.accountTags[accountID] == nil {
		r.s.accountTags[accountID] = map[int64]bool{}
	}
	r.s.accountTags[accountID][tagID] = true
	return nil
}

func (r *memTags) RemoveFromAccount(ctx context.Context, accountID, tagID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.accountTags[accountID], tagID)
	return nil
}

// --- zones ---

type memZones struct{ s *memStore }

var _ zones.Repository = (*memZones)(nil)

func (r *memZones) FindByCityAndProvince(ctx context.Context, city, province string) (*models.Zone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, z := range r.s.zones {
		if z.City == city && z.Province == province {
			return &z, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memZones) ListAll(ctx context.Context) ([]models.Zone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]models.Zone{}, r.s.zones...), nil
}

func (r *memZones) ListByAccount(ctx context.Context, accountID int64) ([]models.Zone, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.Zone{}
	for _, z := range r.s.zones {
		if r.s.accountZones[accountID][z.ID] {
			out = append(out, z)
		}
	}
	return out, nil
}

func (r *memZones) AddToAccount(ctx context.Context, accountID, zoneID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.accountZones[accountID] == nil {
		r.s.accountZones[accountID] = map[int64]bool{}
	}
	r.s.accountZones[accountID][zoneID] = true
	return nil
}

func (r *memZones) RemoveFromAccount(ctx context.Context, accountID, zoneID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.accountZones[accountID], zoneID)
	return nil
}

// --- manager ---

type memRepoManager struct{ s *memStore }

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return &memAccounts{m.s} }
func (m *memRepoManager) Tags(dbx.DBTX) tags.Repository                { return &memTags{m.s} }
func (m *memRepoManager) Zones(dbx.DBTX) zones.Repository              { return &memZones{m.s} }

// prefixHasher makes stored hashes predictable.
type prefixHasher struct {
	calls    int
	compares int
	err      error
}

func (h *prefixHasher) Hash(password string) (string, error) {
	h.calls++
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (h *prefixHasher) Compare(hash, password string) bool {
	h.compares++
	return hash == "hashed:"+password
}
