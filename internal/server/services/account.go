// Package services contains server-side business logic. AccountService
// validates and applies changes to the acting member's own account, each
// change as one transaction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophsettings/internal/common"
	"github.com/dmitrijs2005/gophsettings/internal/dbx"
	"github.com/dmitrijs2005/gophsettings/internal/logging"
	"github.com/dmitrijs2005/gophsettings/internal/server/models"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophsettings/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsettings/internal/server/validators"
	"github.com/dmitrijs2005/gophsettings/internal/server/zonekey"
)

// PasswordHasher turns a plaintext password into an opaque stored hash and
// checks a candidate against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	nicknames   *validators.NicknamePolicy
	logger      logging.Logger

	decoyOnce sync.Once
	decoy     string
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, nicknames *validators.NicknamePolicy, l logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      h,
		nicknames:   nicknames,
		logger:      l.With("module", "account_service"),
	}
}

// SignUp creates an account after checking the form and that neither the
// email nor the nickname is taken.
func (s *AccountService) SignUp(ctx context.Context, form models.SignUpForm) (*models.Account, error) {
	if err := common.NewValidationError(validators.ValidateSignUp(form, s.nicknames)); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(form.Password)
	if err != nil {
		return nil, fmt.Errorf("error signing up: %w", err)
	}

	var snapshot *models.Account
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		if err := validators.CheckEmailAvailable(ctx, repo, form.Email); err != nil {
			return err
		}
		if err := validators.CheckNicknameAvailable(ctx, repo, 0, form.Nickname); err != nil {
			return err
		}
		created, err := repo.Create(ctx, &models.Account{Email: form.Email, Nickname: form.Nickname, PasswordHash: hash})
		if err != nil {
			return err
		}
		snapshot, err = s.load(ctx, tx, created.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error signing up: %w", mapCommitError(err))
	}

	s.logger.Info(ctx, "account created", "account_id", snapshot.ID)
	return snapshot, nil
}

// Login checks the credentials and returns the account. Unknown email and
// wrong password are both reported as common.ErrorUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// unknown emails pay for one comparison too
			s.hasher.Compare(s.decoyHash(), password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error logging in: %w", err)
	}
	if !s.hasher.Compare(account.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return account, nil
}

// decoyHash is a constant password hashed once with the configured hasher,
// so comparing against it costs the same as a real comparison.
func (s *AccountService) decoyHash() string {
	s.decoyOnce.Do(func() {
		h, err := s.hasher.Hash("gophsettings-decoy-password")
		if err != nil {
			s.logger.Error(context.Background(), "error hashing decoy password", "error", err)
		}
		s.decoy = h
	})
	return s.decoy
}

// GetAccount returns the account with its tags and zones.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.load(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	return account, nil
}

// GetTags returns the titles of the account's tags.
func (s *AccountService) GetTags(ctx context.Context, id int64) ([]string, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.TagTitles(), nil
}

// GetZones returns the account's zones as zone keys.
func (s *AccountService) GetZones(ctx context.Context, id int64) ([]string, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return zonekey.FormatAll(account.Zones), nil
}

// ListAllTags returns every known tag title, for autocompletion.
func (s *AccountService) ListAllTags(ctx context.Context) ([]string, error) {
	all, err := s.repomanager.Tags(s.db).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	titles := make([]string, 0, len(all))
	for _, t := range all {
		titles = append(titles, t.Title)
	}
	return titles, nil
}

// ListAllZones returns every reference zone as a zone key.
func (s *AccountService) ListAllZones(ctx context.Context) ([]string, error) {
	all, err := s.repomanager.Zones(s.db).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing zones: %w", err)
	}
	return zonekey.FormatAll(all), nil
}

// UpdateProfile overwrites the five profile fields verbatim, empty values
// included.
func (s *AccountService) UpdateProfile(ctx context.Context, id int64, p models.Profile) (*models.Account, error) {
	if err := common.NewValidationError(validators.ValidateProfile(p)); err != nil {
		return nil, err
	}

	account, err := s.mutate(ctx, id, func(ctx context.Context, tx dbx.DBTX, _ *models.Account) error {
		return s.repomanager.Accounts(tx).UpdateProfile(ctx, id, p)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return account, nil
}

// UpdatePassword replaces the stored hash. The password is hashed before the
// transaction starts so the row lock is not held while bcrypt runs.
func (s *AccountService) UpdatePassword(ctx context.Context, id int64, form models.PasswordForm) (*models.Account, error) {
	if err := common.NewValidationError(validators.ValidatePasswordChange(form)); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(form.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("error updating password: %w", err)
	}

	account, err := s.mutate(ctx, id, func(ctx context.Context, tx dbx.DBTX, _ *models.Account) error {
		return s.repomanager.Accounts(tx).UpdatePasswordHash(ctx, id, hash)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating password: %w", err)
	}
	return account, nil
}

// UpdateNickname checks the nickname against the configured policy and
// against other accounts. Resubmitting the current nickname succeeds without
// a write.
func (s *AccountService) UpdateNickname(ctx context.Context, id int64, nickname string) (*models.Account, error) {
	if err := common.NewValidationError(s.nicknames.Validate(nickname)); err != nil {
		return nil, err
	}

	account, err := s.mutate(ctx, id, func(ctx context.Context, tx dbx.DBTX, current *models.Account) error {
		if current.Nickname == nickname {
			return nil
		}
		repo := s.repomanager.Accounts(tx)
		if err := validators.CheckNicknameAvailable(ctx, repo, id, nickname); err != nil {
			return err
		}
		return repo.UpdateNickname(ctx, id, nickname)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating nickname: %w", err)
	}

	s.logger.Info(ctx, "nickname updated", "account_id", id, "nickname", nickname)
	return account, nil
}

// UpdateNotifications writes all six flags together.
func (s *AccountService) UpdateNotifications(ctx context.Context, id int64, n models.Notifications) (*models.Account, error) {
	account, err := s.mutate(ctx, id, func(ctx context.Context, tx dbx.DBTX, _ *models.Account) error {
		return s.repomanager.Accounts(tx).UpdateNotifications(ctx, id, n)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating notifications: %w", err)
	}
	return account, nil
}

// UpdateTag adds or removes one tag membership.
func (s *AccountService) UpdateTag(ctx context.Context, id int64, op models.Operation, title string) (*models.Account, error) {
	if err := checkOperation(op); err != nil {
		return nil, err
	}

	account, err := s.mutate(ctx, id, func(ctx context.Context, tx dbx.DBTX, _ *models.Account) error {
		assoc := s.associations(tx)
		if op == models.OperationAdd {
			return assoc.AddTag(ctx, id, title)
		}
		return assoc.RemoveTag(ctx, id, title)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating tags: %w", err)
	}
	return account, nil
}

// UpdateZone adds or removes one zone membership identified by its zone key.
func (s *AccountService) UpdateZone(ctx context.Context, id int64, op models.Operation, key string) (*models.Account, error) {
	if err := checkOperation(op); err != nil {
		return nil, err
	}
	parsed, err := zonekey.Parse(key)
	if err != nil {
		return nil, err
	}

	account, err := s.mutate(ctx, id, func(ctx context.Context, tx dbx.DBTX, _ *models.Account) error {
		assoc := s.associations(tx)
		if op == models.OperationAdd {
			return assoc.AddZone(ctx, id, parsed)
		}
		return assoc.RemoveZone(ctx, id, parsed)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating zones: %w", err)
	}
	return account, nil
}

// --- helpers below ---

// mutate locks the account row, applies fn and reloads the snapshot, all in
// one transaction. Nothing is written if fn fails.
func (s *AccountService) mutate(ctx context.Context, id int64, fn func(ctx context.Context, tx dbx.DBTX, current *models.Account) error) (*models.Account, error) {
	var snapshot *models.Account
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := s.repomanager.Accounts(tx).GetByIDForUpdate(ctx, id)
		if err != nil {
			return accountError(id, err)
		}
		if err := fn(ctx, tx, current); err != nil {
			return err
		}
		snapshot, err = s.load(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, common.ErrorValidation) && !errors.Is(err, common.ErrorAlreadyExists) && !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "account mutation failed", "account_id", id, "error", err)
		}
		return nil, mapCommitError(err)
	}
	return snapshot, nil
}

// load reads the account with its memberships through db.
func (s *AccountService) load(ctx context.Context, db dbx.DBTX, id int64) (*models.Account, error) {
	account, err := s.repomanager.Accounts(db).GetByID(ctx, id)
	if err != nil {
		return nil, accountError(id, err)
	}
	if account.Tags, err = s.repomanager.Tags(db).ListByAccount(ctx, id); err != nil {
		return nil, err
	}
	if account.Zones, err = s.repomanager.Zones(db).ListByAccount(ctx, id); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) associations(tx dbx.DBTX) *AssociationManager {
	return NewAssociationManager(s.repomanager.Tags(tx), s.repomanager.Zones(tx))
}

func accountError(id int64, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return &common.NotFoundError{Entity: "account", Key: fmt.Sprint(id)}
	}
	return err
}

func checkOperation(op models.Operation) error {
	switch op {
	case models.OperationAdd, models.OperationRemove:
		return nil
	}
	return common.NewValidationError([]common.Violation{{Field: "operation", Reason: "must be add or remove"}})
}

// mapCommitError turns a unique violation that surfaced outside a repository
// call, for example at COMMIT, into a DuplicateValueError.
func mapCommitError(err error) error {
	var dup *common.DuplicateValueError
	if errors.As(err, &dup) {
		return err
	}
	if constraint, ok := dbx.UniqueViolation(err); ok {
		return &common.DuplicateValueError{Field: accounts.ConstraintField(constraint)}
	}
	return err
}
