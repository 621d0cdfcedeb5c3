package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/ynab-payee-manager/internal/app"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
	"github.com/MKhiriev/ynab-payee-manager/models"
)

// Lines taken by everything around the table.
const chromeHeight = 10

// Upper bound for how long a background sync stays invisible.
const maxReloadInterval = 30 * time.Second

type entityState struct {
	table     table.Model
	knowledge int64
	synced    bool
	loading   bool
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	active       route
	payees       entityState
	transactions entityState

	filter    textinput.Model
	filtering bool

	spinner spinner.Model
	syncing bool
	status  string

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool

	// reload is how often the cache is read again to pick up syncs made by
	// the background job. Zero disables it.
	reload time.Duration

	writeClipboard func(string) error
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo, syncInterval time.Duration, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter by name"
	filter.CharLimit = 64

	return appModel{
		ctx:            ctx,
		services:       services,
		buildInfo:      buildInfo,
		logger:         logger,
		active:         routePayees,
		payees:         entityState{table: newTable(payeeColumns), loading: true},
		transactions:   entityState{table: newTable(transactionColumns), loading: true},
		filter:         filter,
		spinner:        s,
		reload:         reloadInterval(syncInterval),
		writeClipboard: clipboard.WriteAll,
	}
}

func reloadInterval(syncInterval time.Duration) time.Duration {
	if syncInterval <= 0 {
		return 0
	}
	return min(syncInterval, maxReloadInterval)
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadPayees(""), m.cmdLoadTransactions(), m.cmdScheduleReload())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case payeesLoadedMsg:
		m.payees.loading = false
		if msg.err != nil {
			m.loadFailed(msg.err, msg.background)
			return m, nil
		}
		m.payees.synced = msg.synced
		m.payees.knowledge = msg.knowledge
		m.payees.table.SetRows(payeeRows(msg.payees))
		if !msg.background {
			m.payees.table.GotoTop()
		}
		return m, nil
	case transactionsLoadedMsg:
		m.transactions.loading = false
		if msg.err != nil {
			m.loadFailed(msg.err, msg.background)
			return m, nil
		}
		m.transactions.synced = msg.synced
		m.transactions.knowledge = msg.knowledge
		m.transactions.table.SetRows(transactionRows(msg.transactions))
		if !msg.background {
			m.transactions.table.GotoTop()
		}
		return m, nil
	case reloadTickMsg:
		return m, tea.Batch(
			m.loadPayees(m.filter.Value(), true),
			m.loadTransactions(true),
			m.cmdScheduleReload(),
		)
	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.logger.Err(msg.err).Bool("full", msg.full).Msg("sync from terminal ui failed")
			m.status = "sync failed"
			m.showErrorf(app.UserMessage(msg.err))
			// partial results may have been stored
			return m, tea.Batch(m.cmdLoadPayees(m.filter.Value()), m.cmdLoadTransactions())
		}
		m.status = syncSummary(msg.results)
		return m, tea.Batch(m.cmdLoadPayees(m.filter.Value()), m.cmdLoadTransactions(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.status = "copied " + msg.value
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 3)
		m.payees.table.SetHeight(height)
		m.transactions.table.SetHeight(height)
		m.payees.table.SetWidth(msg.Width)
		m.transactions.table.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.filtering {
		return m.updateFilter(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.nextPage):
		m.active = m.active.next()
		return m, nil
	case key.Matches(msg, keys.prevPage):
		m.active = m.active.prev()
		return m, nil
	case key.Matches(msg, keys.payees):
		m.active = routePayees
		return m, nil
	case key.Matches(msg, keys.transactions):
		m.active = routeTransactions
		return m, nil
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.sync), key.Matches(msg, keys.fullSync):
		if m.syncing {
			return m, nil
		}
		full := key.Matches(msg, keys.fullSync)
		m.syncing = true
		m.status = "syncing..."
		return m, tea.Batch(m.spinner.Tick, m.cmdSync(full))
	case key.Matches(msg, keys.filter):
		if m.active != routePayees {
			return m, nil
		}
		m.filtering = true
		m.payees.table.Blur()
		return m, m.filter.Focus()
	case key.Matches(msg, keys.copy):
		if m.active != routePayees {
			return m, nil
		}
		row := m.payees.table.SelectedRow()
		if len(row) == 0 {
			return m, nil
		}
		return m, m.cmdCopyToClipboard(row[0])
	case key.Matches(msg, keys.esc):
		if m.active == routePayees && m.filter.Value() != "" {
			m.filter.SetValue("")
			return m, m.cmdLoadPayees("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.active == routePayees {
		m.payees.table, cmd = m.payees.table.Update(msg)
	} else {
		m.transactions.table, cmd = m.transactions.table.Update(msg)
	}
	return m, cmd
}

// updateFilter feeds keys to the filter input. enter applies it, esc clears
// it and shows the whole list again.
func (m appModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		m.payees.table.Focus()
		return m, m.cmdLoadPayees(strings.TrimSpace(m.filter.Value()))
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.payees.table.Focus()
		return m, m.cmdLoadPayees("")
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(renderNavbar(m.active))
	b.WriteString("\n\n")

	state := m.currentState()
	b.WriteString(statusStyle.Render(m.statusLine(state)))
	b.WriteString("\n\n")

	switch {
	case state.loading:
		b.WriteString("loading...\n")
	case !state.synced:
		b.WriteString(app.MsgNeverSynced + "\n")
	default:
		b.WriteString(state.table.View())
		b.WriteString("\n")
	}

	if m.active == routePayees && (m.filtering || m.filter.Value() != "") {
		b.WriteString("\n")
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	if m.showError {
		b.WriteString("\n\n")
		b.WriteString(m.errorOverlay.View())
	}

	return appStyle.Render(b.String())
}

func (m appModel) currentState() entityState {
	if m.active == routeTransactions {
		return m.transactions
	}
	return m.payees
}

func (m appModel) statusLine(state entityState) string {
	parts := []string{m.active.title()}
	if state.synced {
		parts = append(parts, fmt.Sprintf("server knowledge %d", state.knowledge))
	}
	if m.syncing {
		parts = append(parts, m.spinner.View()+" "+m.status)
	} else if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, " · ")
}

func (m appModel) helpLine() string {
	if m.filtering {
		return "enter apply  esc clear"
	}
	help := "tab/1/2 pages  s sync  S full sync  v about  q quit"
	if m.active == routePayees {
		help = "tab/1/2 pages  / filter  c copy id  s sync  S full sync  v about  q quit"
	}
	return help
}

// loadFailed reports a failed cache read. Periodic reloads only log, so a
// broken cache does not reopen the overlay on every tick.
func (m *appModel) loadFailed(err error, background bool) {
	if background {
		m.logger.Err(err).Msg("reload of cached records failed")
		return
	}
	m.showErrorf(app.UserMessage(err))
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func syncSummary(results []models.SyncResult) string {
	if len(results) == 0 {
		return "synced"
	}
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("%d %s", r.Count, r.Entity))
	}
	return "synced " + strings.Join(parts, ", ")
}
