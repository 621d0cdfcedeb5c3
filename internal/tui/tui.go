// Package tui is the terminal front end: a navbar over two routed pages,
// Payees and Transactions, each showing the cached records in a table.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

type TUI struct {
	services     *service.ClientServices
	buildInfo    models.AppBuildInfo
	syncInterval time.Duration
	logger       *logger.Logger
}

// New creates the terminal UI. syncInterval is the period of the background
// sync job; the pages re-read the cache at least that often.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, syncInterval time.Duration, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, syncInterval: syncInterval, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo, t.syncInterval, t.logger)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
