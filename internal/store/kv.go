package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const kvTable = "kv"

// KVRepo is a key-value store on the kv table. A key holds either an
// integer or a byte slice; writing one kind clears the other.
type KVRepo struct {
	drv *entsql.Driver
}

// GetInt returns the integer stored under key, or ErrNotFound.
func (r *KVRepo) GetInt(ctx context.Context, key string) (int, error) {
	var v sql.NullInt64
	if err := r.get(ctx, key, "int_value", &v); err != nil {
		return 0, err
	}
	if !v.Valid {
		return 0, ErrNotFound
	}
	return int(v.Int64), nil
}

// GetBytes returns the bytes stored under key, or ErrNotFound.
func (r *KVRepo) GetBytes(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	if err := r.get(ctx, key, "blob_value", &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// SetInt stores an integer under key.
func (r *KVRepo) SetInt(ctx context.Context, key string, v int) error {
	return r.put(ctx, key, int64(v), nil)
}

// SetBytes stores bytes under key.
func (r *KVRepo) SetBytes(ctx context.Context, key string, b []byte) error {
	if b == nil {
		b = []byte{}
	}
	return r.put(ctx, key, nil, b)
}

// Delete removes key. Deleting a missing key is not an error.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.EQ("name", key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *KVRepo) get(ctx context.Context, key, column string, dest any) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(column).
		From(entsql.Table(kvTable)).
		Where(entsql.EQ("name", key)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return fmt.Errorf("query %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("query %q: %w", key, err)
		}
		return ErrNotFound
	}
	if err := rows.Scan(dest); err != nil {
		return fmt.Errorf("scan %q: %w", key, err)
	}
	return nil
}

func (r *KVRepo) put(ctx context.Context, key string, intValue any, blobValue any) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTable).
		Columns("name", "int_value", "blob_value", "updated_at").
		Values(key, intValue, blobValue, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("store %q: %w", key, err)
	}
	return nil
}
