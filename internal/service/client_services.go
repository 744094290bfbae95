package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pos-client/internal/adapter"
	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/store"
	"github.com/MKhiriev/go-pos-client/internal/utils"
	"github.com/MKhiriev/go-pos-client/internal/workers"
	"github.com/MKhiriev/go-pos-client/models"
)

type ClientServices struct {
	Customers  EntitySync[models.Customer, models.CustomerInput]
	Suppliers  EntitySync[models.Supplier, models.SupplierInput]
	Brands     EntitySync[models.Brand, models.BrandInput]
	Categories EntitySync[models.Category, models.CategoryInput]
	Products   EntitySync[models.Product, models.ProductInput]
	Variations EntitySync[models.Variation, models.VariationInput]
	Sales      EntitySync[models.Sale, models.SaleInput]
	Purchases  EntitySync[models.Purchase, models.PurchaseInput]

	ReportService  ReportService
	AppInfoService AppInfoService

	syncInterval time.Duration
	logger       *logger.Logger
}

func NewClientServices(
	adapters *adapter.ServerAdapters,
	storages *store.ClientStorages,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*ClientServices, error) {
	if adapters == nil || storages == nil || cfg == nil {
		return nil, ErrMissingDependency
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		return nil, err
	}

	opts := SyncOptionsFromConfig(cfg.Sync)
	return &ClientServices{
		Customers:  NewSynchronizer(models.CustomerSchema, adapters.Customers, storages.Customers, opts, log),
		Suppliers:  NewSynchronizer(models.SupplierSchema, adapters.Suppliers, storages.Suppliers, opts, log),
		Brands:     NewSynchronizer(models.BrandSchema, adapters.Brands, storages.Brands, opts, log),
		Categories: NewSynchronizer(models.CategorySchema, adapters.Categories, storages.Categories, opts, log),
		Products:   NewSynchronizer(models.ProductSchema, adapters.Products, storages.Products, opts, log),
		Variations: NewSynchronizer(models.VariationSchema, adapters.Variations, storages.Variations, opts, log),
		Sales:      NewSynchronizer(models.SaleSchema, adapters.Sales, storages.Sales, opts, log),
		Purchases:  NewSynchronizer(models.PurchaseSchema, adapters.Purchases, storages.Purchases, opts, log),

		ReportService:  NewReportService(storages, cfg.Sync.LowStockThreshold, log),
		AppInfoService: appInfo,

		syncInterval: cfg.Workers.SyncInterval,
		logger:       log,
	}, nil
}

// Lists returns every entity list in tab order.
func (s *ClientServices) Lists() []EntityList {
	return []EntityList{
		s.Customers, s.Suppliers, s.Brands, s.Categories,
		s.Products, s.Variations, s.Sales, s.Purchases,
	}
}

// WarmUp fetches the first page of every list in parallel so the mirrors
// are filled before the user opens a tab. Failures are logged only.
func (s *ClientServices) WarmUp(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for _, list := range s.Lists() {
		g.Go(func() error {
			if err := list.Refresh(gctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn().Err(err).
					Str("func", "ClientServices.WarmUp").
					Str("entity", list.Schema().Name).
					Msg("warm-up fetch failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Jobs returns one periodic refresh per list.
func (s *ClientServices) Jobs() []workers.Worker {
	lists := s.Lists()
	jobs := make([]workers.Worker, 0, len(lists))
	for _, list := range lists {
		name := "refresh-" + strings.ToLower(list.Schema().Name)
		refresh := func(ctx context.Context) error {
			return list.Refresh(utils.WithRequestID(ctx, fmt.Sprintf("%s-%d", name, time.Now().UnixMilli())))
		}
		jobs = append(jobs, workers.NewPeriodicJob(name, s.syncInterval, refresh, s.logger))
	}
	return jobs
}

// Close closes every list.
func (s *ClientServices) Close() {
	for _, list := range s.Lists() {
		list.Close()
	}
}
