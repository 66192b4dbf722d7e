package authgate

import (
	"database/sql"

	"github.com/redis/go-redis/v9"

	"github.com/opsgate/authgate/password"
	"github.com/opsgate/authgate/session"
)

// Builder wires a [Strategy] variant from configuration and collaborators.
// Construction is allocation-only; no I/O happens before Build, and Build
// performs I/O only when a Postgres backend must ensure its schema.
type Builder struct {
	config  Config
	users   UserStore
	hasher  Hasher
	redis   redis.UniversalClient
	db      *sql.DB
	records session.RecordStore

	built bool
}

// New creates a Builder with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithUserStore wires the user record collaborator. Required for every
// variant except [AuthTypeNone].
func (b *Builder) WithUserStore(users UserStore) *Builder {
	b.users = users
	return b
}

// WithHasher wires the password hashing collaborator. When unset, basic
// auth falls back to a default-cost bcrypt hasher.
func (b *Builder) WithHasher(h Hasher) *Builder {
	b.hasher = h
	return b
}

// WithRedis wires a Redis client as the persistent session backend for
// [AuthTypeSessionDB].
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithDB wires a SQL database as the persistent session backend for
// [AuthTypeSessionDB]. WithRedis takes precedence when both are set.
func (b *Builder) WithDB(db *sql.DB) *Builder {
	b.db = db
	return b
}

// WithRecordStore wires a custom persistent session backend, overriding
// WithRedis and WithDB.
func (b *Builder) WithRecordStore(records session.RecordStore) *Builder {
	b.records = records
	return b
}

// Build validates the configuration and constructs the selected variant.
// A Builder can build at most once.
func (b *Builder) Build() (Strategy, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	if b.config.AuthType != AuthTypeNone && b.users == nil {
		return nil, ErrUserStoreRequired
	}

	strategy, err := b.buildVariant()
	if err != nil {
		return nil, err
	}

	b.built = true
	return strategy, nil
}

func (b *Builder) buildVariant() (Strategy, error) {
	cfg := b.config

	switch cfg.AuthType {
	case AuthTypeNone:
		return NewAuth(cfg.SessionName), nil

	case AuthTypeBasic:
		hasher := b.hasher
		if hasher == nil {
			bc, err := password.NewBcrypt(0)
			if err != nil {
				return nil, err
			}
			hasher = bc
		}
		return NewBasicAuth(b.users, hasher, cfg.SessionName), nil

	case AuthTypeSession:
		return NewSessionAuth(b.users, cfg.SessionName), nil

	case AuthTypeSessionExp:
		return NewSessionExpAuth(b.users, cfg.SessionName, cfg.SessionDuration), nil

	case AuthTypeSessionDB:
		records, err := b.recordStore()
		if err != nil {
			return nil, err
		}
		return NewSessionDBAuth(b.users, cfg.SessionName, cfg.SessionDuration, records), nil

	default:
		return nil, ErrUnknownAuthType
	}
}

func (b *Builder) recordStore() (session.RecordStore, error) {
	if b.records != nil {
		return b.records, nil
	}
	if b.redis != nil {
		return session.NewRedisStore(b.redis, ""), nil
	}
	if b.db != nil {
		return session.NewPostgresStore(b.db)
	}
	return nil, ErrSessionBackendRequired
}
