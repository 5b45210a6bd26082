// Package tui implements the interactive configuration wizard that collects
// a deployment configuration from the operator, validating each answer
// inline and re-prompting on bad input.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vlessops/vlessctl/internal/cli/tui/theme"
	"github.com/vlessops/vlessctl/internal/config"
	"github.com/vlessops/vlessctl/internal/models"
	"github.com/vlessops/vlessctl/internal/validate"
)

type wizardStep int

const (
	stepRegion wizardStep = iota
	stepCPU
	stepMemory
	stepMemoryConfirm
	stepNotifyMode
	stepChannelIDs
	stepChatIDs
	stepBotToken
	stepChannelURL
	stepServiceName
	stepUUID
	stepDomain
	stepConfirm
	stepDone
)

// stepTitles drives the header; steps skipped for the chosen notify mode are
// simply never shown.
var stepTitles = map[wizardStep]string{
	stepRegion:        "Choose a deployment region",
	stepCPU:           "Choose a CPU tier",
	stepMemory:        "Choose a memory tier",
	stepMemoryConfirm: "Memory outside the recommended band",
	stepNotifyMode:    "Telegram notification target",
	stepChannelIDs:    "Channel IDs",
	stepChatIDs:       "Chat IDs",
	stepBotToken:      "Bot token",
	stepChannelURL:    "Channel URL",
	stepServiceName:   "Service name",
	stepUUID:          "Client UUID",
	stepDomain:        "Host domain",
	stepConfirm:       "Confirm deployment",
}

type choiceItem struct{ title string }

func (c choiceItem) FilterValue() string { return c.title }

type choiceDelegate struct{}

func (d choiceDelegate) Height() int                             { return 1 }
func (d choiceDelegate) Spacing() int                            { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d choiceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(choiceItem)
	if !ok {
		return
	}
	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedStyle().Render("> "+ci.title))
		return
	}
	fmt.Fprint(w, "  "+ci.title)
}

func newChoiceList(title string, choices []string, width, height int) list.Model {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem{c}
	}
	l := list.New(items, choiceDelegate{}, width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)
	l.Styles.PaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(2)
	return l
}

// ConfigWizard walks the operator through every deployment question.
type ConfigWizard struct {
	width  int
	height int

	step   wizardStep
	result models.Configuration
	ok     bool
	errMsg string

	regionList  list.Model
	cpuList     list.Model
	memoryList  list.Model
	bandList    list.Model
	notifyList  list.Model
	confirmList list.Model

	channelIDsInput textinput.Model
	chatIDsInput    textinput.Model
	botTokenInput   textinput.Model
	channelURLInput textinput.Model
	nameInput       textinput.Model
	uuidInput       textinput.Model
	domainInput     textinput.Model
}

// NewConfigWizard builds a wizard pre-filled with defaults from cfg.
func NewConfigWizard(cfg *config.Config) *ConfigWizard {
	mk := func(ph string, w int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = ph
		ti.Width = w
		return ti
	}

	notifyChoices := []string{
		"None (skip Telegram notifications)",
		"Channel (post to channels)",
		"Bot (message chats directly)",
		"Both (channels, then chats)",
	}

	w := &ConfigWizard{
		step:        stepRegion,
		regionList:  newChoiceList("Choose a deployment region", models.Regions, 44, 16),
		cpuList:     newChoiceList("Choose a CPU tier (vCPU)", models.CPUTiers, 40, 8),
		memoryList:  newChoiceList("Choose a memory tier", models.MemoryTiers, 40, 10),
		bandList:    newChoiceList("Keep this selection anyway?", []string{"No, choose again", "Yes, keep it"}, 44, 6),
		notifyList:  newChoiceList("Where should the result be announced?", notifyChoices, 50, 8),
		confirmList: newChoiceList("Deploy with this configuration?", []string{"Yes, deploy", "No, abort"}, 44, 6),

		channelIDsInput: mk("comma-separated channel IDs (e.g. -1001234,-1005678)", 56),
		chatIDsInput:    mk("comma-separated chat IDs (e.g. 123456,789)", 56),
		botTokenInput:   mk("bot token from @BotFather", 56),
		channelURLInput: mk("https://t.me/yourchannel", 56),
		nameInput:       mk("service name", 40),
		uuidInput:       mk("client UUID", 44),
		domainInput:     mk("host domain", 44),
	}

	w.botTokenInput.SetValue(cfg.BotToken)
	w.uuidInput.SetValue(cfg.UUID)
	w.domainInput.SetValue(cfg.HostDomain)
	return w
}

// Ok reports whether the wizard finished with a confirmed configuration.
func (w *ConfigWizard) Ok() bool { return w.ok }

// Result returns the collected configuration; valid only when Ok().
func (w *ConfigWizard) Result() models.Configuration { return w.result }

func (w *ConfigWizard) Init() tea.Cmd {
	return nil
}

func (w *ConfigWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = m.Width, m.Height
		return w, nil
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			w.ok = false
			return w, tea.Quit
		case "esc":
			if w.step == stepRegion {
				w.ok = false
				return w, tea.Quit
			}
			w.errMsg = ""
			w.prevStep()
			return w, nil
		case "enter":
			return w, w.onEnter()
		}
	}

	// Delegate to the active step's component.
	var cmd tea.Cmd
	switch w.step {
	case stepRegion:
		w.regionList, cmd = w.regionList.Update(msg)
	case stepCPU:
		w.cpuList, cmd = w.cpuList.Update(msg)
	case stepMemory:
		w.memoryList, cmd = w.memoryList.Update(msg)
	case stepMemoryConfirm:
		w.bandList, cmd = w.bandList.Update(msg)
	case stepNotifyMode:
		w.notifyList, cmd = w.notifyList.Update(msg)
	case stepChannelIDs:
		w.channelIDsInput, cmd = w.channelIDsInput.Update(msg)
	case stepChatIDs:
		w.chatIDsInput, cmd = w.chatIDsInput.Update(msg)
	case stepBotToken:
		w.botTokenInput, cmd = w.botTokenInput.Update(msg)
	case stepChannelURL:
		w.channelURLInput, cmd = w.channelURLInput.Update(msg)
	case stepServiceName:
		w.nameInput, cmd = w.nameInput.Update(msg)
	case stepUUID:
		w.uuidInput, cmd = w.uuidInput.Update(msg)
	case stepDomain:
		w.domainInput, cmd = w.domainInput.Update(msg)
	case stepConfirm:
		w.confirmList, cmd = w.confirmList.Update(msg)
	}
	return w, cmd
}

// onEnter validates the current answer and advances. Validation failures set
// errMsg and keep the wizard on the same step, which is the re-prompt loop.
func (w *ConfigWizard) onEnter() tea.Cmd {
	w.errMsg = ""
	switch w.step {
	case stepRegion:
		if item, ok := w.regionList.SelectedItem().(choiceItem); ok {
			w.result.Region = item.title
			w.step = stepCPU
		}
	case stepCPU:
		if item, ok := w.cpuList.SelectedItem().(choiceItem); ok {
			w.result.CPU = item.title
			w.step = stepMemory
		}
	case stepMemory:
		if item, ok := w.memoryList.SelectedItem().(choiceItem); ok {
			w.result.Memory = item.title
			if models.MemoryInBand(w.result.CPU, w.result.Memory) {
				w.step = stepNotifyMode
			} else {
				w.step = stepMemoryConfirm
			}
		}
	case stepMemoryConfirm:
		if w.bandList.Index() == 0 {
			// Operator declined the override; back to the memory list.
			w.step = stepMemory
		} else {
			w.step = stepNotifyMode
		}
	case stepNotifyMode:
		w.result.Notify = models.NotificationTarget{Mode: models.NotifyModes[w.notifyList.Index()]}
		w.advanceFromNotify()
	case stepChannelIDs:
		ids, err := validate.IDList(w.channelIDsInput.Value())
		if err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.Notify.ChannelIDs = ids
		if w.result.Notify.Mode == models.NotifyBoth {
			w.step = stepChatIDs
			w.chatIDsInput.Focus()
		} else {
			w.step = stepBotToken
			w.botTokenInput.Focus()
		}
	case stepChatIDs:
		ids, err := validate.IDList(w.chatIDsInput.Value())
		if err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.Notify.ChatIDs = ids
		w.step = stepBotToken
		w.botTokenInput.Focus()
	case stepBotToken:
		if err := validate.BotToken(w.botTokenInput.Value()); err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.BotToken = w.botTokenInput.Value()
		w.step = stepChannelURL
		w.channelURLInput.Focus()
	case stepChannelURL:
		if err := validate.URL(w.channelURLInput.Value()); err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.ChannelURL = w.channelURLInput.Value()
		w.step = stepServiceName
		w.nameInput.Focus()
	case stepServiceName:
		if err := validate.ServiceName(w.nameInput.Value()); err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.ServiceName = strings.TrimSpace(w.nameInput.Value())
		w.step = stepUUID
		w.uuidInput.Focus()
	case stepUUID:
		if err := validate.UUID(w.uuidInput.Value()); err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.UUID = w.uuidInput.Value()
		w.step = stepDomain
		w.domainInput.Focus()
	case stepDomain:
		if err := validate.URL("https://" + w.domainInput.Value() + "/"); err != nil {
			w.errMsg = fmt.Sprintf("invalid host domain %q", w.domainInput.Value())
			return nil
		}
		w.result.HostDomain = w.domainInput.Value()
		w.step = stepConfirm
	case stepConfirm:
		if w.confirmList.Index() == 0 {
			w.ok = true
		}
		w.step = stepDone
		return tea.Quit
	}

	if w.step == stepChannelIDs {
		w.channelIDsInput.Focus()
	}
	return nil
}

// advanceFromNotify routes past the recipient prompts that do not apply to
// the chosen mode.
func (w *ConfigWizard) advanceFromNotify() {
	switch w.result.Notify.Mode {
	case models.NotifyChannel, models.NotifyBoth:
		w.step = stepChannelIDs
	case models.NotifyBot:
		w.step = stepChatIDs
		w.chatIDsInput.Focus()
	default:
		w.step = stepServiceName
		w.nameInput.Focus()
	}
}

// prevStep walks back one question, honoring the mode-dependent skips.
func (w *ConfigWizard) prevStep() {
	switch w.step {
	case stepCPU:
		w.step = stepRegion
	case stepMemory:
		w.step = stepCPU
	case stepMemoryConfirm:
		w.step = stepMemory
	case stepNotifyMode:
		w.step = stepMemory
	case stepChannelIDs:
		w.step = stepNotifyMode
	case stepChatIDs:
		if w.result.Notify.Mode == models.NotifyBoth {
			w.step = stepChannelIDs
		} else {
			w.step = stepNotifyMode
		}
	case stepBotToken:
		switch w.result.Notify.Mode {
		case models.NotifyChannel:
			w.step = stepChannelIDs
		default:
			w.step = stepChatIDs
		}
	case stepChannelURL:
		w.step = stepBotToken
	case stepServiceName:
		if w.result.Notify.Enabled() {
			w.step = stepChannelURL
		} else {
			w.step = stepNotifyMode
		}
	case stepUUID:
		w.step = stepServiceName
	case stepDomain:
		w.step = stepUUID
	case stepConfirm:
		w.step = stepDomain
	}
}

func (w *ConfigWizard) View() string {
	header := theme.HeadingStyle().Render(stepTitles[w.step])
	body := ""
	switch w.step {
	case stepRegion:
		body = w.regionList.View()
	case stepCPU:
		body = w.cpuList.View()
	case stepMemory:
		body = w.memoryList.View()
	case stepMemoryConfirm:
		body = w.bandWarning() + "\n" + w.bandList.View()
	case stepNotifyMode:
		body = w.notifyList.View()
	case stepChannelIDs:
		body = w.labeled("Channel IDs", w.channelIDsInput.View())
	case stepChatIDs:
		body = w.labeled("Chat IDs", w.chatIDsInput.View())
	case stepBotToken:
		body = w.labeled("Bot token", w.botTokenInput.View())
	case stepChannelURL:
		body = w.labeled("Channel URL", w.channelURLInput.View())
	case stepServiceName:
		body = w.labeled("Service name", w.nameInput.View())
	case stepUUID:
		body = w.labeled("UUID", w.uuidInput.View())
	case stepDomain:
		body = w.labeled("Host domain", w.domainInput.View())
	case stepConfirm:
		body = w.summary() + "\n" + w.confirmList.View()
	case stepDone:
		body = theme.HeadingStyle().Render("Done")
	}

	help := theme.StatusStyle().Render("enter continue · esc back · ctrl+c quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body+w.errorView(), help)
}

func (w *ConfigWizard) labeled(label, view string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, theme.StatusStyle().Render(label+": "), view)
}

func (w *ConfigWizard) errorView() string {
	if w.errMsg == "" {
		return ""
	}
	return theme.ErrorStyle().Render("\nError: " + w.errMsg)
}

func (w *ConfigWizard) bandWarning() string {
	min, max, _ := models.MemoryBand(w.result.CPU)
	return theme.WarningStyle().Render(fmt.Sprintf(
		"%s is outside the recommended %s-%s band for %s vCPU.",
		w.result.Memory, min, max, w.result.CPU))
}

func (w *ConfigWizard) summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Region:  %s\n", w.result.Region)
	fmt.Fprintf(&sb, "CPU:     %s vCPU\n", w.result.CPU)
	fmt.Fprintf(&sb, "Memory:  %s\n", w.result.Memory)
	fmt.Fprintf(&sb, "Service: %s\n", w.result.ServiceName)
	fmt.Fprintf(&sb, "UUID:    %s\n", w.result.UUID)
	fmt.Fprintf(&sb, "Domain:  %s\n", w.result.HostDomain)
	fmt.Fprintf(&sb, "Notify:  %s\n", w.result.Notify.Mode)
	return theme.StatusStyle().Render(sb.String())
}

// Run starts the wizard and blocks until the operator confirms or aborts.
func Run(cfg *config.Config) (models.Configuration, bool, error) {
	w := NewConfigWizard(cfg)
	p := tea.NewProgram(w)
	if _, err := p.Run(); err != nil {
		return models.Configuration{}, false, fmt.Errorf("wizard failed: %w", err)
	}
	return w.Result(), w.Ok(), nil
}
