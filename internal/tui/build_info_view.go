// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	rows := [][2]string{
		{"Приложение", "TodoKeeper"},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
		{"Версия сервера", serverVersion},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s: %s\n", row[0], valueOrNA(row[1]))
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}
