package auth

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/timex"
)

// blockTimeLayout is how lockout deadlines are shown to the user.
const blockTimeLayout = "2006-01-02 15:04:05"

// MessageKind classifies a Prompter notification so the caller can style it.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// Prompter collects interactive input during login and registration and
// receives progress messages. ReadPassword returns common.ErrCancelled when
// the user aborts the prompt.
type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) ([]byte, error)
	Confirm(prompt string) (bool, error)
	Notify(kind MessageKind, text string)
}

// CredentialStore is the slice of the storage layer the auth flows need.
type CredentialStore interface {
	SaveUsers(users map[string]models.UserRecord) error
	SaveAttempts(attempts map[string]models.AttemptRecord) error
	UserPasswordHash(username string) (string, error)
	SetUserPasswordHash(username, hash string) error
	AdminSecretHash() (string, error)
}

// LoginOutcome tells the caller how a login session ended.
type LoginOutcome int

const (
	// LoginSuccess means the password matched.
	LoginSuccess LoginOutcome = iota
	// LoginUnknownUser means no account matched the entered name.
	LoginUnknownUser
	// LoginBlocked means the account was still inside a lockout window.
	LoginBlocked
	// LoginLockedOut means this session's failure hit the attempt limit.
	LoginLockedOut
	// LoginCancelled means the user aborted the password prompt.
	LoginCancelled
	// LoginAbandoned means the user declined to retry after a failure.
	LoginAbandoned
)

// LoginResult carries the outcome of a login session. Username holds the
// canonical spelling of the account once resolved; BlockedUntil is set for
// the LoginBlocked and LoginLockedOut outcomes.
type LoginResult struct {
	Outcome      LoginOutcome
	Username     string
	Admin        bool
	BlockedUntil time.Time
}

// RegisterOutcome tells the caller how a registration session ended.
type RegisterOutcome int

const (
	RegisterSuccess RegisterOutcome = iota
	RegisterCancelled
)

// RegisterResult carries the outcome of a registration session.
type RegisterResult struct {
	Outcome  RegisterOutcome
	Username string
	Admin    bool
}

// Service implements the login state machine, registration and the
// admin-secret gate on top of a CredentialStore.
type Service struct {
	store       CredentialStore
	maxAttempts int
	blockFor    time.Duration
	log         logging.Logger
	now         func() time.Time
}

// NewService constructs a Service with the lockout policy from cfg.
func NewService(store CredentialStore, cfg *config.Config, log logging.Logger) *Service {
	return &Service{
		store:       store,
		maxAttempts: cfg.MaxLoginAttempts,
		blockFor:    cfg.BlockDuration,
		log:         log,
		now:         time.Now,
	}
}

// Login runs the password check for username against state. The username has
// already been read by the caller; password prompts, retry confirmations and
// progress messages go through p. Attempt counters are persisted as they
// change, so an abandoned session still leaves its failures on record. Only
// storage and prompt I/O failures return a non-nil error; wrong passwords,
// unknown users and lockouts are outcomes, not errors.
func (s *Service) Login(ctx context.Context, state *models.State, username string, p Prompter) (LoginResult, error) {
	canonical, ok := state.ResolveUser(username)
	if !ok {
		p.Notify(MessageError, "Username does not exist.")
		s.log.Warn(ctx, "login attempt for unknown user", "user", username)
		return LoginResult{Outcome: LoginUnknownUser}, nil
	}

	rec := state.Attempts[canonical]
	if rec.BlockedUntil != nil {
		until := rec.BlockedUntil.Time
		if s.now().Before(until) {
			p.Notify(MessageError, fmt.Sprintf("Too many failed attempts. Try again at %s", until.Format(blockTimeLayout)))
			s.log.Warn(ctx, "login rejected while blocked", "user", canonical, "blocked_until", until)
			return LoginResult{Outcome: LoginBlocked, Username: canonical, BlockedUntil: until}, nil
		}
		// Lockout window has expired.
		rec = models.AttemptRecord{}
		state.Attempts[canonical] = rec
	}

	for {
		password, err := p.ReadPassword("Password: ")
		if err != nil {
			if errors.Is(err, common.ErrCancelled) {
				p.Notify(MessageWarning, "Login cancelled.")
				return LoginResult{Outcome: LoginCancelled, Username: canonical}, nil
			}
			return LoginResult{}, fmt.Errorf("error reading password: %w", err)
		}
		password = bytes.TrimSpace(password)

		stored, err := s.store.UserPasswordHash(canonical)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			common.WipeByteArray(password)
			return LoginResult{}, fmt.Errorf("error loading stored password: %w", err)
		}
		// A user with no stored credential fails the same way a wrong
		// password does.
		match := err == nil && VerifyPassword(password, stored)
		common.WipeByteArray(password)

		if match {
			state.Attempts[canonical] = models.AttemptRecord{}
			if err := s.store.SaveAttempts(state.Attempts); err != nil {
				return LoginResult{}, fmt.Errorf("error saving attempts: %w", err)
			}
			user := state.Users[canonical]
			p.Notify(MessageSuccess, fmt.Sprintf("Welcome, %s!", canonical))
			s.log.Info(ctx, "login successful", "user", canonical, "admin", user.Admin)
			return LoginResult{Outcome: LoginSuccess, Username: canonical, Admin: user.Admin}, nil
		}

		rec = state.Attempts[canonical]
		rec.Attempts++

		if rec.Attempts >= s.maxAttempts {
			until := timex.New(s.now().Add(s.blockFor))
			rec.BlockedUntil = &until
			state.Attempts[canonical] = rec
			if err := s.store.SaveAttempts(state.Attempts); err != nil {
				return LoginResult{}, fmt.Errorf("error saving attempts: %w", err)
			}
			p.Notify(MessageError, fmt.Sprintf("Too many failed attempts. Login blocked until %s", until.Format(blockTimeLayout)))
			s.log.Warn(ctx, "login blocked", "user", canonical, "attempts", rec.Attempts)
			return LoginResult{Outcome: LoginLockedOut, Username: canonical, BlockedUntil: until.Time}, nil
		}

		state.Attempts[canonical] = rec
		if err := s.store.SaveAttempts(state.Attempts); err != nil {
			return LoginResult{}, fmt.Errorf("error saving attempts: %w", err)
		}
		p.Notify(MessageError, "Invalid password.")
		p.Notify(MessageWarning, fmt.Sprintf("Attempt %d of %d.", rec.Attempts, s.maxAttempts))
		s.log.Warn(ctx, "invalid password", "user", canonical, "attempt", rec.Attempts)

		again, err := p.Confirm("Try again? (y/n): ")
		if err != nil {
			return LoginResult{}, fmt.Errorf("error reading answer: %w", err)
		}
		if !again {
			return LoginResult{Outcome: LoginAbandoned, Username: canonical}, nil
		}
	}
}

// Register interactively creates an account. The username prompt loops until
// a non-empty name free of case-insensitive collisions is entered. Nothing
// is persisted until the password prompt is answered, so a cancelled
// registration leaves no trace.
func (s *Service) Register(ctx context.Context, state *models.State, admin bool, p Prompter) (RegisterResult, error) {
	var username string
	for {
		entered, err := p.ReadLine("Choose a username: ")
		if err != nil {
			return RegisterResult{}, fmt.Errorf("error reading username: %w", err)
		}
		entered = strings.TrimSpace(entered)

		if _, exists := state.ResolveUser(entered); exists {
			p.Notify(MessageError, fmt.Sprintf("Username '%s' already exists. Please choose another name.", strings.ToLower(entered)))
			continue
		}
		if entered == "" {
			p.Notify(MessageError, "Username cannot be empty.")
			continue
		}
		username = entered
		break
	}

	password, err := p.ReadPassword("Choose a password: ")
	if err != nil {
		if errors.Is(err, common.ErrCancelled) {
			p.Notify(MessageWarning, "Registration cancelled. Password must be provided.")
			return RegisterResult{Outcome: RegisterCancelled}, nil
		}
		return RegisterResult{}, fmt.Errorf("error reading password: %w", err)
	}
	password = bytes.TrimSpace(password)
	defer common.WipeByteArray(password)

	// Metadata is written as typed; the credential key is lowercased by the
	// store.
	state.Users[username] = models.UserRecord{Admin: admin}
	if err := s.store.SaveUsers(state.Users); err != nil {
		return RegisterResult{}, fmt.Errorf("error saving users: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return RegisterResult{}, err
	}
	if err := s.store.SetUserPasswordHash(username, hash); err != nil {
		return RegisterResult{}, fmt.Errorf("error saving password: %w", err)
	}

	suffix := ""
	if admin {
		suffix = " (Admin)"
	}
	p.Notify(MessageSuccess, fmt.Sprintf("User '%s' registered successfully!%s", username, suffix))
	s.log.Info(ctx, "user registered", "user", username, "admin", admin)
	return RegisterResult{Outcome: RegisterSuccess, Username: username, Admin: admin}, nil
}

// VerifyAdminSecret checks passphrase against the stored admin-gate digest,
// a single shared secret with no attempt limiting. The passphrase is hashed
// exactly as entered. When no digest is configured the check burns a dummy
// comparison and fails, so a missing secret is indistinguishable from a
// wrong one.
func (s *Service) VerifyAdminSecret(ctx context.Context, passphrase []byte) (bool, error) {
	stored, err := s.store.AdminSecretHash()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			sum := sha256.Sum256(passphrase)
			subtle.ConstantTimeCompare(sum[:], common.GenerateRandByteArray(sha256.Size))
			s.log.Warn(ctx, "admin secret is not configured")
			return false, nil
		}
		return false, fmt.Errorf("error loading admin secret: %w", err)
	}

	want, err := hex.DecodeString(stored)
	if err != nil {
		return false, nil
	}
	sum := sha256.Sum256(passphrase)
	return subtle.ConstantTimeCompare(sum[:], want) == 1, nil
}
