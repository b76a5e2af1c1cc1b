package tui

// confirmModel is the y/n box shown before a todo is deleted.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render("Удалить задачу «" + fitText(m.message, listTitleWidth) + "»?\n\ny: да │ n: нет")
}
