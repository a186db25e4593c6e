package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lyrapkg/lyra/internal/client/repositories/metadata"
	"github.com/lyrapkg/lyra/internal/dbx"
)

// savedAtKey records when the slot was last written. It changes together with
// Key in one transaction.
const savedAtKey = "token_saved_at"

// SQLiteStore keeps the credential in the local metadata table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	v, ok, err := s.repo(s.db).Get(ctx, Key)
	if err != nil {
		return "", false, fmt.Errorf("read credential: %w", err)
	}
	if !ok || len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	stamp := s.now().UTC().Format(time.RFC3339Nano)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Put(ctx, Key, []byte(token)); err != nil {
			return err
		}
		return r.Put(ctx, savedAtKey, []byte(stamp))
	})
	if err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, Key, savedAtKey); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// SavedAt returns when the current credential was written.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, ok, err := s.repo(s.db).Get(ctx, savedAtKey)
	if err != nil {
		return time.Time{}, false, err
	}
	if !ok || len(v) == 0 {
		return time.Time{}, false, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", savedAtKey, err)
	}
	return ts, true, nil
}

var _ Store = (*SQLiteStore)(nil)
