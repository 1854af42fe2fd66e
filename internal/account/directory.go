package account

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fittrack-api/pkg/cerror"
)

//go:generate mockgen -source=directory.go -destination=mock_directory.go -package=account

// Directory resolves accounts across the standard and privileged collections.
// An email or id is expected to live in exactly one of them.
type Directory interface {
	FindAccountWithEmail(ctx context.Context, email string) (*Entry, error)
	FindAccountWithId(ctx context.Context, accountId string) (*Entry, error)
	InsertAccount(ctx context.Context, kind Kind, account *Document) error
	ActivateAccount(ctx context.Context, entry *Entry, verifyToken string, updatedAt int64) (*Document, error)
	UpdateAccount(ctx context.Context, entry *Entry, update *ProfileUpdate) (*Document, error)
}

type directory struct {
	repositories map[Kind]Repository
}

func NewDirectory(standardRepository, privilegedRepository Repository) Directory {
	return &directory{
		repositories: map[Kind]Repository{
			KindStandard:   standardRepository,
			KindPrivileged: privilegedRepository,
		},
	}
}

func (d *directory) FindAccountWithEmail(ctx context.Context, email string) (*Entry, error) {
	return d.resolve(func(repository Repository) (*Document, error) {
		return repository.FindAccountWithEmail(ctx, email)
	}, zap.String("email", email))
}

func (d *directory) FindAccountWithId(ctx context.Context, accountId string) (*Entry, error) {
	return d.resolve(func(repository Repository) (*Document, error) {
		return repository.FindAccountWithId(ctx, accountId)
	}, zap.String("accountId", accountId))
}

func (d *directory) resolve(
	find func(repository Repository) (*Document, error),
	lookupField zap.Field,
) (*Entry, error) {
	var found []*Entry
	for _, kind := range []Kind{KindStandard, KindPrivileged} {
		account, err := find(d.repositories[kind])
		if err != nil {
			if cerror.HasStatus(err, fiber.StatusNotFound) {
				continue
			}

			return nil, err
		}

		found = append(found, &Entry{Kind: kind, Account: account})
	}

	switch len(found) {
	case 0:
		return nil, cerror.NotFound("Account not found", lookupField)
	case 1:
		return found[0], nil
	default:
		return nil, cerror.Internal(
			"internal server error",
			lookupField,
		).SetLogMessage("account exists in both standard and privileged collections")
	}
}

func (d *directory) InsertAccount(ctx context.Context, kind Kind, account *Document) error {
	return d.repositories[kind].InsertAccount(ctx, account)
}

func (d *directory) ActivateAccount(
	ctx context.Context,
	entry *Entry,
	verifyToken string,
	updatedAt int64,
) (*Document, error) {
	return d.repositories[entry.Kind].ActivateAccount(ctx, entry.Account.Id, verifyToken, updatedAt)
}

func (d *directory) UpdateAccount(ctx context.Context, entry *Entry, update *ProfileUpdate) (*Document, error) {
	return d.repositories[entry.Kind].UpdateAccountWithId(ctx, entry.Account.Id, update)
}
