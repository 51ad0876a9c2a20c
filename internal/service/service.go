package service

import (
	"context"
	"encoding/json"

	"github.com/gofrs/uuid/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type RecordRepository interface {
	List(ctx context.Context) ([]entity.Record, error)
	FindByEmail(ctx context.Context, email string) (entity.Record, error)
	Add(ctx context.Context, record entity.Record) (uuid.UUID, error)
	Set(ctx context.Context, id uuid.UUID, record entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (entity.Identity, error)
	SignUp(ctx context.Context, email, password string) (entity.Identity, error)
	FederatedAuthURL(state string) string
	SignInWithFederatedCode(ctx context.Context, code string) (entity.Identity, error)
}

type AccountFunctions interface {
	CreateUserAccount(ctx context.Context, idToken, email, hashedPassword string) (json.RawMessage, error)
	DeleteUserAccount(ctx context.Context, idToken, email string) (json.RawMessage, error)
	RenameUserAccount(ctx context.Context, idToken, email, newEmail string) (json.RawMessage, error)
}

type SessionManager interface {
	SignIn(ctx context.Context, sid string, identity entity.Identity) (entity.Session, error)
	SignOut(ctx context.Context, sid string) error
	Fresh(ctx context.Context, sess entity.Session) (entity.Session, error)
}

type EventPublisher interface {
	PublishRecordEvent(ctx context.Context, event entity.RecordEvent)
}

type Service struct {
	hasher     *Hasher
	pinHash    string
	records    RecordRepository
	identity   IdentityProvider
	functions  AccountFunctions
	sessions   SessionManager
	events     EventPublisher
	workspaces *Workspaces
}

func New(
	cfg config.Config,
	records RecordRepository,
	identity IdentityProvider,
	functions AccountFunctions,
	sessions SessionManager,
	events EventPublisher,
) *Service {
	return &Service{
		hasher:     NewHasher(cfg.PinSalt),
		pinHash:    cfg.PinHash,
		records:    records,
		identity:   identity,
		functions:  functions,
		sessions:   sessions,
		events:     events,
		workspaces: NewWorkspaces(),
	}
}
