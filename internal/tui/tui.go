package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, service.ErrMissingDependency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, logger: log}, nil
}

// tabs builds one tab per entity list, in the order of service.Lists.
func (t *TUI) tabs(ctx context.Context) []tab {
	s := t.services
	return []tab{
		newListTab(ctx, 0, s.Customers, customerSpec),
		newListTab(ctx, 1, s.Suppliers, supplierSpec),
		newListTab(ctx, 2, s.Brands, brandSpec),
		newListTab(ctx, 3, s.Categories, categorySpec),
		newListTab(ctx, 4, s.Products, productSpec),
		newListTab(ctx, 5, s.Variations, variationSpec),
		newListTab(ctx, 6, s.Sales, saleSpec),
		newListTab(ctx, 7, s.Purchases, purchaseSpec),
	}
}

// Run shows the list screens until the user quits. It returns ErrUserQuit
// on a normal exit.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.tabs(ctx), t.services.ReportService,
		t.services.AppInfoService.GetAppVersion(ctx), t.services.AppInfoService.GetBuildInfo(ctx))

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Str("func", "TUI.Run").Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
