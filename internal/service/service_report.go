package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/store"
	"github.com/MKhiriev/go-pos-client/models"
)

type reportService struct {
	storages          *store.ClientStorages
	lowStockThreshold int64

	logger *logger.Logger
}

// NewReportService builds summaries from the local mirrors. Products with
// fewer pieces than lowStockThreshold are reported as low stock.
func NewReportService(storages *store.ClientStorages, lowStockThreshold int64, log *logger.Logger) ReportService {
	return &reportService{
		storages:          storages,
		lowStockThreshold: lowStockThreshold,
		logger:            log.ForComponent("report"),
	}
}

// Summary reads every mirror concurrently. The figures only cover records
// the client has already seen.
func (s *reportService) Summary(ctx context.Context) (models.Summary, error) {
	var (
		summary   models.Summary
		products  []models.Product
		sales     []models.Sale
		purchases []models.Purchase
	)

	g, gctx := errgroup.WithContext(ctx)
	count := func(name string, m interface {
		Count(context.Context) (int, error)
	}, dst *int) {
		g.Go(func() error {
			n, err := m.Count(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("customers", s.storages.Customers, &summary.Customers)
	count("suppliers", s.storages.Suppliers, &summary.Suppliers)
	count("brands", s.storages.Brands, &summary.Brands)
	count("categories", s.storages.Categories, &summary.Categories)
	count("variations", s.storages.Variations, &summary.Variations)

	g.Go(func() (err error) {
		products, err = s.storages.Products.ScanAll(gctx)
		if err != nil {
			return fmt.Errorf("scan products: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		sales, err = s.storages.Sales.ScanAll(gctx)
		if err != nil {
			return fmt.Errorf("scan sales: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		purchases, err = s.storages.Purchases.ScanAll(gctx)
		if err != nil {
			return fmt.Errorf("scan purchases: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("func", "reportService.Summary").Msg("failed to read local mirrors")
		return models.Summary{}, err
	}

	summary.Products = len(products)
	summary.LowStock = lowStock(products, s.lowStockThreshold)
	summary.Sales = summarizeInvoices(sales, func(r models.Sale) (string, string, float64) {
		return r.Status, r.PaymentMethod, r.Total
	})
	summary.Purchases = summarizeInvoices(purchases, func(r models.Purchase) (string, string, float64) {
		return r.Status, r.PaymentMethod, r.Total
	})
	return summary, nil
}

func summarizeInvoices[T any](records []T, fields func(T) (status, method string, total float64)) models.InvoiceSummary {
	out := models.InvoiceSummary{
		Count:           len(records),
		ByStatus:        make(map[string]float64),
		ByPaymentMethod: make(map[string]float64),
	}
	for _, r := range records {
		status, method, total := fields(r)
		out.Total += total
		out.ByStatus[status] += total
		out.ByPaymentMethod[method] += total
	}
	return out
}

// lowStock returns active products below threshold, lowest stock first.
func lowStock(products []models.Product, threshold int64) []models.Product {
	var out []models.Product
	for _, p := range products {
		if strings.EqualFold(p.Status, models.StatusActive) && p.Pieces < threshold {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Product) int {
		return cmp.Compare(a.Pieces, b.Pieces)
	})
	return out
}
