package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/petra-home/storefront/internal/domain"
	"github.com/petra-home/storefront/internal/repositories"
)

var (
	// ErrInvalidCredentials covers both unknown accounts and wrong passwords,
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("identity service: invalid credentials")
	// ErrEmailTaken marks a registration against an existing email.
	ErrEmailTaken = errors.New("identity service: email already registered")
	// ErrNotAuthenticated marks operations that require a signed-in user.
	ErrNotAuthenticated = errors.New("identity service: not authenticated")
	// ErrIdentityUnavailable marks identity operations refused because the
	// remote store could not be reached.
	ErrIdentityUnavailable = errors.New("identity service: remote store unavailable")
	// ErrAddressNotFound marks address mutations against an unknown id.
	ErrAddressNotFound = errors.New("identity service: address not found")
	// ErrInvalidRegistration marks a registration with missing fields.
	ErrInvalidRegistration = errors.New("identity service: registration fields are required")
)

// The built-in operator account signs in without touching the remote store.
const (
	operatorUsername = "petra"
	operatorPassword = "1234"
	operatorEmail    = "admin@petrahome.com"
)

// sessionFavorites is the slice of the favorite set the identity lifecycle
// drives: replaced on login, cleared on logout.
type sessionFavorites interface {
	Reset(email string, persist bool, ids []int)
	Clear()
}

// IdentityServiceDeps wires the identity service to its collaborators.
type IdentityServiceDeps struct {
	Users     repositories.UserRepository
	Favorites sessionFavorites
	Logger    *zap.Logger
	Now       func() time.Time
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Surname  string
}

// IdentityService owns the session: who is signed in, their address book and
// the favorites lifecycle tied to it. The cart is deliberately outside its
// reach; signing out never empties a cart.
type IdentityService struct {
	users     repositories.UserRepository
	favorites sessionFavorites
	logger    *zap.Logger
	now       func() time.Time
	entropy   *ulid.MonotonicEntropy

	mu        sync.Mutex
	user      domain.User
	signedIn  bool
	persisted bool
}

// NewIdentityService constructs a signed-out identity service.
func NewIdentityService(deps IdentityServiceDeps) (*IdentityService, error) {
	if deps.Users == nil {
		return nil, errors.New("identity service: user repository is required")
	}
	if deps.Favorites == nil {
		return nil, errors.New("identity service: favorite set is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &IdentityService{
		users:     deps.Users,
		favorites: deps.Favorites,
		logger:    logger,
		now:       now,
		entropy:   ulid.Monotonic(ulid.DefaultEntropy(), 0),
	}, nil
}

// Login authenticates by email and password and binds the session to the
// account, replacing the favorite set with the account's persisted ids. The
// operator username and password pair bypasses the remote store entirely.
func (s *IdentityService) Login(ctx context.Context, identifier, password string) (domain.User, error) {
	identifier = strings.TrimSpace(identifier)

	if identifier == operatorUsername && password == operatorPassword {
		user := domain.User{
			Email:   operatorEmail,
			Name:    "PETRA",
			Surname: "ADMIN",
			Admin:   true,
		}
		s.bind(user, false, nil)
		s.logger.Info("operator session started")
		return user, nil
	}

	record, err := s.users.FindByEmail(ctx, strings.ToLower(identifier))
	if err != nil {
		return domain.User{}, translateIdentityError(err, ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	s.bind(record.User, true, record.Favorites)
	s.logger.Info("user signed in", zap.String("email", record.User.Email))
	return record.User, nil
}

// Register creates a new account and signs it in with an empty favorite set.
// The password is stored only as a bcrypt hash.
func (s *IdentityService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	surname := strings.TrimSpace(input.Surname)
	if email == "" || input.Password == "" || name == "" || surname == "" {
		return domain.User{}, ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("identity service: hash password: %w", err)
	}

	user := domain.User{Email: email, Name: name, Surname: surname}
	err = s.users.Create(ctx, repositories.UserRecord{
		User:         user,
		PasswordHash: string(hash),
		Favorites:    []int{},
	})
	if err != nil {
		return domain.User{}, translateIdentityError(err, nil)
	}

	s.bind(user, true, nil)
	s.logger.Info("user registered", zap.String("email", email))
	return user, nil
}

// Logout ends the session and clears the favorite set. The cart belongs to
// the device and is left alone.
func (s *IdentityService) Logout() {
	s.mu.Lock()
	s.user = domain.User{}
	s.signedIn = false
	s.persisted = false
	s.mu.Unlock()
	s.favorites.Clear()
}

// Current returns the signed-in user, if any.
func (s *IdentityService) Current() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUser(s.user), s.signedIn
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *IdentityService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signedIn && s.user.Admin
}

// AddAddress appends a new address book entry and persists the whole book.
// The session keeps its previous book when the write fails.
func (s *IdentityService) AddAddress(ctx context.Context, title, fullAddress, city string) (domain.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.signedIn {
		return domain.Address{}, ErrNotAuthenticated
	}

	address := domain.Address{
		ID:          ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String(),
		Title:       strings.TrimSpace(title),
		FullAddress: strings.TrimSpace(fullAddress),
		City:        strings.TrimSpace(city),
	}
	next := append(append([]domain.Address(nil), s.user.Addresses...), address)

	if s.persisted {
		if err := s.users.SaveAddresses(ctx, s.user.Email, next); err != nil {
			return domain.Address{}, translateIdentityError(err, nil)
		}
	}
	s.user.Addresses = next
	return address, nil
}

// RemoveAddress deletes an address book entry by id and persists the rest.
func (s *IdentityService) RemoveAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.signedIn {
		return ErrNotAuthenticated
	}

	next := make([]domain.Address, 0, len(s.user.Addresses))
	found := false
	for _, addr := range s.user.Addresses {
		if addr.ID == id {
			found = true
			continue
		}
		next = append(next, addr)
	}
	if !found {
		return ErrAddressNotFound
	}

	if s.persisted {
		if err := s.users.SaveAddresses(ctx, s.user.Email, next); err != nil {
			return translateIdentityError(err, nil)
		}
	}
	s.user.Addresses = next
	return nil
}

func (s *IdentityService) bind(user domain.User, persisted bool, favorites []int) {
	s.mu.Lock()
	s.user = cloneUser(user)
	s.signedIn = true
	s.persisted = persisted
	s.mu.Unlock()
	s.favorites.Reset(user.Email, persisted, favorites)
}

func cloneUser(user domain.User) domain.User {
	dup := user
	if user.Addresses != nil {
		dup.Addresses = append([]domain.Address(nil), user.Addresses...)
	}
	return dup
}

func translateIdentityError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	var repoErr repositories.RepositoryError
	if errors.As(err, &repoErr) {
		switch {
		case repoErr.IsNotFound() && notFound != nil:
			return notFound
		case repoErr.IsConflict():
			return ErrEmailTaken
		case repoErr.IsUnavailable():
			return fmt.Errorf("%w: %v", ErrIdentityUnavailable, err)
		}
	}
	return err
}
