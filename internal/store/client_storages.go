package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
)

// ClientStorages groups one mirror per entity type, all sharing one
// database handle.
type ClientStorages struct {
	Customers  MirrorRepository[models.Customer]
	Suppliers  MirrorRepository[models.Supplier]
	Brands     MirrorRepository[models.Brand]
	Categories MirrorRepository[models.Category]
	Products   MirrorRepository[models.Product]
	Variations MirrorRepository[models.Variation]
	Sales      MirrorRepository[models.Sale]
	Purchases  MirrorRepository[models.Purchase]

	db *DB
}

// NewClientStorages opens the mirror database, applies pending migrations
// and builds every mirror.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewClientStoragesFromDB(db, logger), nil
}

// NewClientStoragesFromDB builds the mirrors on an already migrated handle.
func NewClientStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Customers:  NewSQLiteMirror[models.Customer](db, models.CustomerSchema.Table, logger),
		Suppliers:  NewSQLiteMirror[models.Supplier](db, models.SupplierSchema.Table, logger),
		Brands:     NewSQLiteMirror[models.Brand](db, models.BrandSchema.Table, logger),
		Categories: NewSQLiteMirror[models.Category](db, models.CategorySchema.Table, logger),
		Products:   NewSQLiteMirror[models.Product](db, models.ProductSchema.Table, logger),
		Variations: NewSQLiteMirror[models.Variation](db, models.VariationSchema.Table, logger),
		Sales:      NewSQLiteMirror[models.Sale](db, models.SaleSchema.Table, logger),
		Purchases:  NewSQLiteMirror[models.Purchase](db, models.PurchaseSchema.Table, logger),
		db:         db,
	}
}

// Close closes the shared database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
