package view

import (
	"github.com/MrEthical07/gamewatch/router"
	"github.com/MrEthical07/gamewatch/session"
)

// MenuEntry is one link of the navigation bar.
type MenuEntry struct {
	Path   string
	Label  string
	Active bool
}

// Menu builds the navigation bar for the current path. rec is nil while anonymous.
func Menu(rec *session.Record, current string) []MenuEntry {
	var entries []MenuEntry
	if rec == nil && (current == router.LoginPath || current == router.RegisterPath) {
		entries = []MenuEntry{
			{Path: router.LoginPath, Label: "Login"},
			{Path: router.RegisterPath, Label: "Criar Conta"},
		}
	} else {
		entries = []MenuEntry{
			{Path: router.HomePath, Label: "Buscar Jogos"},
			{Path: "/reviews", Label: "Reviews de Jogos"},
			{Path: "/wishlist", Label: "Lista de Desejos"},
			{Path: "/profile", Label: "Perfil"},
		}
	}
	if rec != nil && rec.IsSuperAdmin() {
		entries = append(entries, MenuEntry{Path: "/users", Label: "Usuários"})
	}
	for i := range entries {
		entries[i].Active = entries[i].Path == current
	}
	return entries
}
