package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{
		DSN:    filepath.Join(t.TempDir(), "mirror.db"),
		Driver: config.DriverSQLite,
	}}
	s, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// brandAt returns a brand created minutes after baseTime.
func brandAt(id int64, minutes int) models.Brand {
	return models.Brand{
		BrandID:   id,
		Name:      fmt.Sprintf("brand-%d", id),
		Status:    models.StatusActive,
		CreatedAt: baseTime.Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339),
	}
}

func brandIDs(records []models.Brand) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.BrandID)
	}
	return out
}

func newMockMirror(t *testing.T) (MirrorRepository[models.Brand], sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteMirror[models.Brand](NewDB(conn, logger.Nop()), "brands", logger.Nop()), mock
}

// ── SQLite-backed behaviour ──────────────────────────────────────────────────

func TestMirror_UpsertIsIdempotentLastWriteWins(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands

	require.NoError(t, m.BulkUpsert(ctx, brandAt(1, 0), brandAt(2, 1)))
	require.NoError(t, m.BulkUpsert(ctx, brandAt(1, 0), brandAt(2, 1)))

	renamed := brandAt(2, 1)
	renamed.Name = "renamed"
	require.NoError(t, m.Upsert(ctx, renamed))

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := m.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "renamed", all[1].Name)
}

func TestMirror_BulkUpsertEmptyIsNoop(t *testing.T) {
	m := newTestStorages(t).Brands
	assert.NoError(t, m.BulkUpsert(context.Background()))
}

func TestMirror_BulkUpsertLargerThanChunk(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands

	records := make([]models.Brand, 0, 250)
	for i := 1; i <= 250; i++ {
		records = append(records, brandAt(int64(i), i))
	}
	require.NoError(t, m.BulkUpsert(ctx, records...))

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, count)
}

func TestMirror_ScanAllOrderedByID(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands

	require.NoError(t, m.BulkUpsert(ctx, brandAt(30, 1), brandAt(10, 3), brandAt(20, 2)))

	all, err := m.ScanAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, brandIDs(all))
}

func TestMirror_ScanOrderedBy(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands
	require.NoError(t, m.BulkUpsert(ctx, brandAt(1, 30), brandAt(2, 10), brandAt(3, 20), brandAt(4, 10)))

	byCreated, err := m.ScanOrderedBy(ctx, OrderByCreatedAt, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 3}, brandIDs(byCreated), "ties broken by id")

	bySynced, err := m.ScanOrderedBy(ctx, OrderBySyncedAt, 0)
	require.NoError(t, err)
	assert.Len(t, bySynced, 4)

	_, err = m.ScanOrderedBy(ctx, "payload; DROP TABLE brands", 1)
	assert.ErrorIs(t, err, ErrInvalidOrderField)
}

func TestMirror_Delete(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands
	require.NoError(t, m.BulkUpsert(ctx, brandAt(1, 0), brandAt(2, 1)))

	require.NoError(t, m.Delete(ctx, 1))
	require.NoError(t, m.Delete(ctx, 99), "deleting a missing id is not an error")

	all, err := m.ScanAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, brandIDs(all))
}

// TestMirror_EvictOldest stores 150 records with increasing timestamps and
// keeps 100: the 50 oldest must be gone.
func TestMirror_EvictOldest(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands

	records := make([]models.Brand, 0, 150)
	for i := 1; i <= 150; i++ {
		records = append(records, brandAt(int64(i), i))
	}
	require.NoError(t, m.BulkUpsert(ctx, records...))

	deleted, err := m.EvictOldest(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, deleted)

	count, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)

	all, err := m.ScanAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(51), all[0].BrandID)
	assert.Equal(t, int64(150), all[len(all)-1].BrandID)

	deleted, err = m.EvictOldest(ctx, 100)
	require.NoError(t, err)
	assert.Zero(t, deleted, "already within bound")

	_, err = m.EvictOldest(ctx, -1)
	assert.ErrorIs(t, err, ErrInvalidMaxKeep)
}

func TestMirror_EvictOldestByTimestampNotID(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Brands
	// id order and age order disagree
	require.NoError(t, m.BulkUpsert(ctx, brandAt(1, 50), brandAt(2, 5), brandAt(3, 40)))

	_, err := m.EvictOldest(ctx, 2)
	require.NoError(t, err)

	all, err := m.ScanAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, brandIDs(all))
}

func TestMirror_SalesKeepLineItems(t *testing.T) {
	ctx := context.Background()
	m := newTestStorages(t).Sales

	sale := models.Sale{
		SaleID:    7,
		InvoiceNo: "INV-1",
		Status:    models.InvoiceStatusPaid,
		CreatedAt: baseTime.Format(time.RFC3339),
		Items:     []models.SaleItem{{ProductID: 1, ProductName: "Milk", Quantity: 2, Price: 1.5, Total: 3}},
		Total:     3,
	}
	require.NoError(t, m.Upsert(ctx, sale))

	all, err := m.ScanAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, sale, all[0])
}

func TestNewConnectSQLite_UnknownDriver(t *testing.T) {
	_, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: "x.db", Driver: "pgx"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.db")
	require.NoError(t, createLocalDBFileIfNotExists("file:"+path+"?_busy_timeout=5000"))
	assert.FileExists(t, path)
	require.NoError(t, createLocalDBFileIfNotExists(path))
}

// ── SQL shape and error paths ────────────────────────────────────────────────

func TestMirror_BeginError(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := m.BulkUpsert(context.Background(), brandAt(1, 0))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMirror_UpsertExecErrorRollsBack(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO brands (id,created_at,status,payload,synced_at) VALUES (?,?,?,?,?) ON CONFLICT(id) DO UPDATE")).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := m.Upsert(context.Background(), brandAt(1, 0))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMirror_CommitError(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO brands").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := m.Upsert(context.Background(), brandAt(1, 0))
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestMirror_DeleteSQL(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM brands WHERE id = ?")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, m.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMirror_EvictOldestSQL(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM brands")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(150))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM brands WHERE id IN (SELECT id FROM brands ORDER BY created_at, id LIMIT 50)")).
		WillReturnResult(sqlmock.NewResult(0, 50))

	deleted, err := m.EvictOldest(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 50, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMirror_CountError(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("no such table"))

	_, err := m.EvictOldest(context.Background(), 10)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMirror_ScanCorruptPayload(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM brands ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow("{not json"))

	_, err := m.ScanAll(context.Background())
	assert.ErrorIs(t, err, ErrUnmarshalingPayload)
}

func TestMirror_ScanQueryError(t *testing.T) {
	m, mock := newMockMirror(t)
	mock.ExpectQuery("SELECT payload FROM brands").WillReturnError(errors.New("boom"))

	_, err := m.ScanOrderedBy(context.Background(), OrderByCreatedAt, 10)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
