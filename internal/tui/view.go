package tui

import "github.com/charmbracelet/x/ansi"

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	body := canvasStyle
	if a.timer == timerRunning {
		body = runStyle
	}
	return body.Render(a.canvas.Snapshot()) + "\n" + a.statusBar()
}

func (a *App) statusBar() string {
	text := a.status
	if text == "" && a.screen == screenTimer {
		text = a.keys.help()
	}
	style := statusStyle
	if a.statusFailed {
		style = errorStyle
	}
	return style.Width(a.width).Render(ansi.Truncate(text, a.width, "…"))
}
