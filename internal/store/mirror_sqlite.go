package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
)

// Orderable mirror columns.
const (
	OrderByID        = "id"
	OrderByCreatedAt = "created_at"
	OrderBySyncedAt  = "synced_at"
)

// upsertChunkSize keeps a multi-row insert well under SQLite's bound
// parameter limit.
const upsertChunkSize = 100

const upsertSuffix = `ON CONFLICT(id) DO UPDATE SET
	created_at = excluded.created_at,
	status = excluded.status,
	payload = excluded.payload,
	synced_at = excluded.synced_at`

type sqliteMirror[T models.Entity] struct {
	*DB
	table   string
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

// NewSQLiteMirror returns a MirrorRepository storing records of T as JSON
// in table. The table must have been created by the migrations.
func NewSQLiteMirror[T models.Entity](db *DB, table string, log *logger.Logger) MirrorRepository[T] {
	return &sqliteMirror[T]{
		DB:      db,
		table:   table,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
		logger:  log,
	}
}

func (m *sqliteMirror[T]) BulkUpsert(ctx context.Context, records ...T) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		m.logger.Err(err).Str("func", "sqliteMirror.BulkUpsert").Str("table", m.table).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	syncedAt := m.now().UnixMilli()
	for start := 0; start < len(records); start += upsertChunkSize {
		end := min(start+upsertChunkSize, len(records))

		insert := m.builder.Insert(m.table).
			Columns("id", "created_at", "status", "payload", "synced_at").
			Suffix(upsertSuffix)
		for _, r := range records[start:end] {
			payload, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("%w (id=%d): %w", ErrMarshalingPayload, r.EntityID(), err)
			}
			insert = insert.Values(r.EntityID(), r.CreatedTime().UnixMilli(), r.EntityStatus(), string(payload), syncedAt)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			m.logger.Err(err).
				Str("func", "sqliteMirror.BulkUpsert").
				Str("table", m.table).
				Int("records", end-start).
				Msg("failed to upsert records")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (m *sqliteMirror[T]) Upsert(ctx context.Context, record T) error {
	return m.BulkUpsert(ctx, record)
}

func (m *sqliteMirror[T]) Delete(ctx context.Context, id int64) error {
	query, args, err := m.builder.Delete(m.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = m.DB.ExecContext(ctx, query, args...); err != nil {
		m.logger.Err(err).Str("func", "sqliteMirror.Delete").Str("table", m.table).Int64("id", id).Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (m *sqliteMirror[T]) ScanAll(ctx context.Context) ([]T, error) {
	return m.ScanOrderedBy(ctx, OrderByID, 0)
}

func (m *sqliteMirror[T]) ScanOrderedBy(ctx context.Context, field string, limit int) ([]T, error) {
	switch field {
	case OrderByID:
	case OrderByCreatedAt, OrderBySyncedAt:
		field += ", id"
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOrderField, field)
	}

	selectQuery := m.builder.Select("payload").From(m.table).OrderBy(field)
	if limit > 0 {
		selectQuery = selectQuery.Limit(uint64(limit))
	}
	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		m.logger.Err(err).Str("func", "sqliteMirror.ScanOrderedBy").Str("table", m.table).Msg("failed to query records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return m.scanPayloads(rows)
}

func (m *sqliteMirror[T]) scanPayloads(rows *sql.Rows) ([]T, error) {
	records := make([]T, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var record T
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnmarshalingPayload, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return records, nil
}

func (m *sqliteMirror[T]) Count(ctx context.Context) (int, error) {
	query, args, err := m.builder.Select("COUNT(*)").From(m.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = m.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (m *sqliteMirror[T]) EvictOldest(ctx context.Context, maxKeep int) (int, error) {
	if maxKeep < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMaxKeep, maxKeep)
	}

	count, err := m.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count <= maxKeep {
		return 0, nil
	}

	oldest := m.builder.Select("id").From(m.table).OrderBy("created_at", "id").Limit(uint64(count - maxKeep))
	subQuery, subArgs, err := oldest.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	query, args, err := m.builder.Delete(m.table).Where("id IN ("+subQuery+")", subArgs...).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		m.logger.Err(err).Str("func", "sqliteMirror.EvictOldest").Str("table", m.table).Msg("failed to evict records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	m.logger.Debug().
		Str("func", "sqliteMirror.EvictOldest").
		Str("table", m.table).
		Int64("deleted", deleted).
		Int("max_keep", maxKeep).
		Msg("evicted oldest mirror records")
	return int(deleted), nil
}
