// Package account manages locally registered accounts and the single
// persisted login session.
package account

import (
	"context"
	"encoding/json"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

// Store keys owned by this service.
const (
	UsersKey   = "users"
	SessionKey = "user"
)

// MinPasswordLen is enforced on the authentication path only; account
// creation accepts any password, matching the original flow.
const MinPasswordLen = 6

// emailPattern accepts local@domain.tld shapes. Checked before any
// storage lookup.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements account creation, authentication and the
// {LoggedOut, LoggedIn} session state machine.
type Service struct {
	store   domain.KeyValueStore
	log     *logger.Logger
	current *domain.SessionRecord // nil = logged out
}

// New creates an account service over the given store. Call LoadSession
// once at startup to restore the prior session.
func New(store domain.KeyValueStore, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Create registers a new account. Fails with ErrInvalidEmail before any
// storage lookup, and with ErrDuplicateEmail when the address is already
// registered (case-sensitive exact match). The stored list is never
// altered on failure. Passwords are hashed before persisting.
func (s *Service) Create(ctx context.Context, name, email, password string) error {
	if !emailPattern.MatchString(email) {
		return domain.ErrInvalidEmail
	}

	accounts := s.loadAccounts(ctx)
	for _, a := range accounts {
		if a.Email == email {
			return domain.ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	accounts = append(accounts, domain.Account{
		Name:     name,
		Email:    email,
		Password: string(hash),
	})
	if err := s.saveAccounts(ctx, accounts); err != nil {
		s.log.Error("account: create write failed: %v", err)
		return err
	}
	s.log.Info("account created for %s", email)
	return nil
}

// Authenticate checks the email/password pair against the stored
// accounts. The password length policy applies here, not on creation.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < MinPasswordLen {
		return nil, domain.ErrShortPassword
	}

	for _, a := range s.loadAccounts(ctx) {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
			break
		}
		match := a
		return &match, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// Login establishes the session. With remember set the record is
// persisted and survives a restart; without it the session lives in
// memory only and any previously persisted record is cleared.
func (s *Service) Login(ctx context.Context, a *domain.Account, remember bool) error {
	rec := domain.SessionRecord{Name: a.Name, Email: a.Email}

	if !remember {
		if err := s.store.Delete(ctx, SessionKey); err != nil {
			s.log.Warn("account: clearing stale session failed: %v", err)
		}
		s.current = &rec
		s.log.Info("logged in as %s (not remembered)", a.Email)
		return nil
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, SessionKey, string(raw)); err != nil {
		s.log.Error("account: session write failed: %v", err)
		return err
	}
	s.current = &rec
	s.log.Info("logged in as %s", a.Email)
	return nil
}

// Logout deletes the persisted session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		s.log.Error("account: session delete failed: %v", err)
		return err
	}
	s.current = nil
	s.log.Info("logged out")
	return nil
}

// LoadSession restores the prior session at startup, defaulting to
// logged-out when nothing (or nothing readable) is stored. Legacy session
// records carried email+password and no name; those are accepted and the
// name is backfilled from the account list.
func (s *Service) LoadSession(ctx context.Context) *domain.SessionRecord {
	s.current = nil

	raw, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		if err != domain.ErrNotFound {
			s.log.Warn("account: session read failed, staying logged out: %v", err)
		}
		return nil
	}

	var rec domain.SessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.Email == "" {
		s.log.Warn("account: unreadable session record, staying logged out")
		return nil
	}

	if rec.Name == "" {
		for _, a := range s.loadAccounts(ctx) {
			if a.Email == rec.Email {
				rec.Name = a.Name
				break
			}
		}
	}

	s.current = &rec
	s.log.Info("session restored for %s", rec.Email)
	return s.current
}

// Current returns the logged-in session record, or nil when logged out.
func (s *Service) Current() *domain.SessionRecord {
	return s.current
}

// EmailRegistered reports whether an account exists for the address.
// Used by the forgot-password stub; validates the shape first.
func (s *Service) EmailRegistered(ctx context.Context, email string) (bool, error) {
	if !emailPattern.MatchString(email) {
		return false, domain.ErrInvalidEmail
	}
	for _, a := range s.loadAccounts(ctx) {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// loadAccounts reads the persisted account list. Read failures and
// unparsable values degrade to an empty list.
func (s *Service) loadAccounts(ctx context.Context) []domain.Account {
	raw, err := s.store.Get(ctx, UsersKey)
	if err != nil {
		if err != domain.ErrNotFound {
			s.log.Warn("account: users read failed, treating as empty: %v", err)
		}
		return nil
	}
	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		s.log.Warn("account: unparsable users value, treating as empty: %v", err)
		return nil
	}
	return accounts
}

func (s *Service) saveAccounts(ctx context.Context, accounts []domain.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, UsersKey, string(raw))
}
