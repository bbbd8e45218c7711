package tui

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// openPrimaryContact hands the mailto URL to the host environment.
// Fire-and-forget: failures are logged and otherwise ignored.
func (m Model) openPrimaryContact() tea.Cmd {
	email := m.store.Profile.Contact.Email
	if email == "" {
		return nil
	}
	url := "mailto:" + email
	log := m.log
	return func() tea.Msg {
		if err := openExternal(url); err != nil {
			log.Warn("opening contact target", zap.String("url", url), zap.Error(err))
		}
		return nil
	}
}

func openExternal(url string) error {
	return launch(openerCommand(url))
}

func openerCommand(url string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// launch starts the command detached from the event loop and reaps it in
// the background so it does not linger as a zombie until exit.
func launch(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
