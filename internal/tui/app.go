// Package tui provides the interactive Bubble Tea dashboard for orca.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agenciagand/orca/internal/cli"
	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/export"
	"github.com/agenciagand/orca/internal/model"
	"github.com/agenciagand/orca/internal/tui/components"
	"github.com/agenciagand/orca/internal/tui/theme"
)

// Panes, cycled with tab.
const (
	paneAgents = iota
	paneFeatures
	paneResources
	paneCount
)

// App is the root Bubble Tea model. Every key binding maps onto one
// engine operation; the totals panel re-derives from state on each View.
type App struct {
	eng       *engine.Engine
	branding  export.Branding
	outputDir string

	width  int
	height int

	pane   int
	cursor [paneCount]int

	couponIn   textinput.Model
	couponMode bool

	status string
}

// NewApp creates the dashboard model around an engine.
func NewApp(eng *engine.Engine, branding export.Branding, outputDir string) App {
	ti := textinput.New()
	ti.Placeholder = "GAND10"
	ti.CharLimit = 32
	ti.Width = 20

	return App{
		eng:       eng,
		branding:  branding,
		outputDir: outputDir,
		couponIn:  ti,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a App) paneLength(pane int) int {
	switch pane {
	case paneAgents:
		return len(model.AllAgentTypes)
	case paneFeatures:
		return len(model.AllFeatureKeys)
	case paneResources:
		return len(a.eng.State().Features.CustomResources)
	}
	return 0
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.couponMode {
			switch key {
			case "esc":
				a.couponMode = false
				a.couponIn.Blur()
				return a, nil
			case "enter":
				code := a.couponIn.Value()
				a.eng.ApplyCoupon(code)
				state := a.eng.State()
				if state.Discount.Percentage > 0 {
					a.status = fmt.Sprintf("Cupom %s aplicado: %d%% de desconto",
						*state.Discount.Coupon, state.Discount.Percentage)
				} else {
					a.status = "Cupom inválido — desconto removido"
				}
				a.couponMode = false
				a.couponIn.Blur()
				a.couponIn.SetValue("")
				return a, nil
			}
			var cmd tea.Cmd
			a.couponIn, cmd = a.couponIn.Update(msg)
			return a, cmd
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "tab":
			a.pane = (a.pane + 1) % paneCount
		case "shift+tab":
			a.pane = (a.pane + paneCount - 1) % paneCount

		case "j", "down":
			if a.cursor[a.pane] < a.paneLength(a.pane)-1 {
				a.cursor[a.pane]++
			}
		case "k", "up":
			if a.cursor[a.pane] > 0 {
				a.cursor[a.pane]--
			}

		case " ", "enter":
			a.toggleCurrent()

		case "d":
			if a.pane == paneResources {
				resources := a.eng.State().Features.CustomResources
				i := a.cursor[paneResources]
				if i < len(resources) {
					a.eng.RemoveCustomResource(resources[i].ID)
					if i > 0 && i == len(resources)-1 {
						a.cursor[paneResources] = i - 1
					}
				}
			}

		case "+", "=", "right":
			a.eng.UpdateQuantity(true)
		case "-", "left":
			a.eng.UpdateQuantity(false)

		case "p":
			if a.eng.State().Financial.PlanType == model.PlanCompleto {
				a.eng.SetPlanType(model.PlanImplementacao)
			} else {
				a.eng.SetPlanType(model.PlanCompleto)
			}

		case "c":
			a.couponMode = true
			a.couponIn.Focus()
			return a, textinput.Blink

		case "e":
			a.status = a.exportPDF()
		}
	}

	return a, nil
}

func (a *App) toggleCurrent() {
	switch a.pane {
	case paneAgents:
		a.eng.ToggleAgentType(model.AllAgentTypes[a.cursor[paneAgents]])
	case paneFeatures:
		a.eng.ToggleFeature(model.AllFeatureKeys[a.cursor[paneFeatures]])
	}
}

func (a *App) exportPDF() string {
	state := a.eng.State()
	totals := a.eng.Totals()
	now := time.Now()
	orderNumber := export.OrderNumber(now)
	path := filepath.Join(a.outputDir, export.DefaultFilename(state, orderNumber))

	if err := export.WritePDF(state, totals, orderNumber, a.branding, now, path); err != nil {
		return fmt.Sprintf("Falha ao exportar: %v", err)
	}
	return fmt.Sprintf("Proposta exportada: %s", path)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "carregando..."
	}

	t := theme.Active
	state := a.eng.State()
	totals := a.eng.Totals()

	width := a.width
	if width > 120 {
		width = 120
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	header := titleStyle.Render("  "+a.branding.Name) +
		mutedStyle.Render(fmt.Sprintf("  ·  Calculadora de Orçamentos  ·  %dx agentes", state.Agents.Quantity))

	totalNote := ""
	if state.Discount.Percentage > 0 {
		totalNote = fmt.Sprintf("-%d%% cupom", state.Discount.Percentage)
	}
	if state.Financial.PaymentCondition == model.ConditionAvista {
		if totalNote != "" {
			totalNote += ", "
		}
		totalNote += "-5% à vista"
	}

	maintenanceNote := "por mês"
	if state.Financial.PlanType != model.PlanCompleto {
		maintenanceNote = "não incluso no plano"
	}

	cards := components.MetricCardRow([]struct{ Label, Value, Note string }{
		{"Total", cli.FormatBRL(totals.Total), totalNote},
		{"Implementação", cli.FormatBRL(totals.Implementation), ""},
		{"Mensalidade", cli.FormatBRL(totals.MonthlyMaintenance), maintenanceNote},
		{"Subtotal", cli.FormatBRL(totals.Subtotal), cli.FormatMonths(state.Financial.ContractDuration)},
	}, width)

	paneWidths := components.LayoutRow(width, 3)
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		components.Pane("Agentes", a.renderAgents(state), paneWidths[0], a.pane == paneAgents),
		components.Pane("Recursos", a.renderFeatures(state), paneWidths[1], a.pane == paneFeatures),
		components.Pane("Adicionais", a.renderResources(state), paneWidths[2], a.pane == paneResources),
	)

	footer := dimStyle.Render("  tab painel · espaço alterna · +/- quantidade · p plano · c cupom · e exportar PDF · q sair")

	couponLine := ""
	if a.couponMode {
		couponLine = "\n  Cupom: " + a.couponIn.View()
	}

	statusLine := ""
	if a.status != "" {
		statusLine = "\n  " + mutedStyle.Render(a.status)
	}

	return "\n" + header + "\n\n" + cards + "\n" + panes + couponLine + statusLine + "\n\n" + footer + "\n"
}

func (a App) renderAgents(state model.BudgetState) string {
	t := theme.Active
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent)
	normalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var out string
	for i, agent := range model.AllAgentTypes {
		mark := "[ ]"
		if state.Agents.HasType(agent) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, agent.Label())
		style := normalStyle
		if a.pane == paneAgents && i == a.cursor[paneAgents] {
			style = selectedStyle
			line = "> " + line
		} else {
			line = "  " + line
		}
		out += style.Render(line) + "\n"
	}
	if state.Agents.HasType(model.AgentPersonalizado) && state.Agents.CustomTypeDescription != "" {
		out += dimStyle.Render("  ↳ " + state.Agents.CustomTypeDescription)
	}
	return out
}

func (a App) renderFeatures(state model.BudgetState) string {
	t := theme.Active
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent)
	normalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var out string
	for i, key := range model.AllFeatureKeys {
		mark := "[ ]"
		if on := state.Features.Flag(key); on != nil && *on {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, key.Label())
		style := normalStyle
		if a.pane == paneFeatures && i == a.cursor[paneFeatures] {
			style = selectedStyle
			line = "> " + line
		} else {
			line = "  " + line
		}
		out += style.Render(line) + "\n"
	}
	return out
}

func (a App) renderResources(state model.BudgetState) string {
	t := theme.Active
	selectedStyle := lipgloss.NewStyle().Foreground(t.Accent)
	normalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	resources := state.Features.CustomResources
	if len(resources) == 0 {
		return dimStyle.Render("  nenhum item adicional\n  use `orca features add`")
	}

	var out string
	for i, r := range resources {
		line := "· " + r.Description
		style := normalStyle
		if a.pane == paneResources && i == a.cursor[paneResources] {
			style = selectedStyle
			line = "> " + line
		} else {
			line = "  " + line
		}
		out += style.Render(line) + "\n"
	}
	out += dimStyle.Render("  d remove o item selecionado")
	return out
}
