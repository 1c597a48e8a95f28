package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	domain "github.com/petra-home/storefront/internal/domain"
	pfirestore "github.com/petra-home/storefront/internal/platform/firestore"
	"github.com/petra-home/storefront/internal/repositories"
)

const userCollection = "users"

// UserRepository persists user records keyed by lowercase email. The stored
// document carries the credential hash and favorite set; neither field leaves
// the repository layer except through the identity and favorites services.
type UserRepository struct {
	coll *pfirestore.Collection[userDocument]
}

// NewUserRepository constructs a Firestore-backed user repository.
func NewUserRepository(provider *pfirestore.Provider) (*UserRepository, error) {
	if provider == nil {
		return nil, errors.New("user repository requires firestore provider")
	}
	return &UserRepository{
		coll: pfirestore.NewCollection[userDocument](provider, userCollection, nil),
	}, nil
}

// FindByEmail loads the record for the lowercase-normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (repositories.UserRecord, error) {
	if r == nil || r.coll == nil {
		return repositories.UserRecord{}, errors.New("user repository not initialised")
	}
	key, err := userKey(email)
	if err != nil {
		return repositories.UserRecord{}, err
	}
	doc, err := r.coll.Get(ctx, key)
	if err != nil {
		return repositories.UserRecord{}, err
	}
	return toUserRecord(doc.ID, doc.Data), nil
}

// Create inserts a new record; an existing email surfaces as a conflict.
func (r *UserRepository) Create(ctx context.Context, record repositories.UserRecord) error {
	if r == nil || r.coll == nil {
		return errors.New("user repository not initialised")
	}
	key, err := userKey(record.User.Email)
	if err != nil {
		return err
	}
	return r.coll.Create(ctx, key, fromUserRecord(record))
}

// SaveFavorites overwrites the user's whole favorite set.
func (r *UserRepository) SaveFavorites(ctx context.Context, email string, favorites []int) error {
	if r == nil || r.coll == nil {
		return errors.New("user repository not initialised")
	}
	key, err := userKey(email)
	if err != nil {
		return err
	}
	if favorites == nil {
		favorites = []int{}
	}
	return r.coll.Update(ctx, key, []firestore.Update{
		{Path: "savedFavorites", Value: favorites},
	})
}

// SaveAddresses overwrites the user's address book.
func (r *UserRepository) SaveAddresses(ctx context.Context, email string, addresses []domain.Address) error {
	if r == nil || r.coll == nil {
		return errors.New("user repository not initialised")
	}
	key, err := userKey(email)
	if err != nil {
		return err
	}
	docs := make([]addressDocument, 0, len(addresses))
	for _, addr := range addresses {
		docs = append(docs, addressDocument(addr))
	}
	return r.coll.Update(ctx, key, []firestore.Update{
		{Path: "addresses", Value: docs},
	})
}

func userKey(email string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return "", errors.New("user repository: email is required")
	}
	return key, nil
}

type userDocument struct {
	Email        string            `firestore:"email"`
	Name         string            `firestore:"name"`
	Surname      string            `firestore:"surname"`
	Admin        bool              `firestore:"isAdmin"`
	PasswordHash string            `firestore:"passwordHash"`
	Favorites    []int             `firestore:"savedFavorites"`
	Addresses    []addressDocument `firestore:"addresses"`
}

type addressDocument struct {
	ID          string `firestore:"id"`
	Title       string `firestore:"title"`
	FullAddress string `firestore:"fullAddress"`
	City        string `firestore:"city"`
}

func fromUserRecord(record repositories.UserRecord) userDocument {
	addresses := make([]addressDocument, 0, len(record.User.Addresses))
	for _, addr := range record.User.Addresses {
		addresses = append(addresses, addressDocument(addr))
	}
	favorites := record.Favorites
	if favorites == nil {
		favorites = []int{}
	}
	return userDocument{
		Email:        strings.ToLower(strings.TrimSpace(record.User.Email)),
		Name:         record.User.Name,
		Surname:      record.User.Surname,
		Admin:        record.User.Admin,
		PasswordHash: record.PasswordHash,
		Favorites:    favorites,
		Addresses:    addresses,
	}
}

func toUserRecord(id string, doc userDocument) repositories.UserRecord {
	email := doc.Email
	if email == "" {
		email = id
	}
	addresses := make([]domain.Address, 0, len(doc.Addresses))
	for _, addr := range doc.Addresses {
		addresses = append(addresses, domain.Address(addr))
	}
	return repositories.UserRecord{
		User: domain.User{
			Email:     email,
			Name:      doc.Name,
			Surname:   doc.Surname,
			Admin:     doc.Admin,
			Addresses: addresses,
		},
		PasswordHash: doc.PasswordHash,
		Favorites:    doc.Favorites,
	}
}

// Ensure interface compliance.
var _ repositories.UserRepository = (*UserRepository)(nil)
