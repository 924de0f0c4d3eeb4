package site

import (
	"golang.org/x/text/language"

	"github.com/agentstation/teammap/pkg/contributors"
)

// labels are the fixed strings of a page in one locale.
type labels struct {
	Team         string
	About        string
	Interests    string
	Publications string
	BackToTeam   string
	Home         string
	NoImage      string
	Unclaimed    string
	Volume       string
	Issue        string
	Redirecting  string
	Moved        string
	ClickHere    string
}

var localeLabels = map[contributors.Locale]labels{
	contributors.LocaleES: {
		Team:         "Equipo",
		About:        "Sobre mí",
		Interests:    "Áreas de interés",
		Publications: "Publicaciones",
		BackToTeam:   "Volver al Equipo",
		Home:         "Inicio",
		NoImage:      "Sin imagen",
		Unclaimed:    "Perfil de autor aún no reclamado",
		Volume:       "Vol.",
		Issue:        "Núm.",
		Redirecting:  "Redirigiendo...",
		Moved:        "Este perfil se ha movido.",
		ClickHere:    "Haz clic aquí si no eres redirigido",
	},
	contributors.LocaleEN: {
		Team:         "Team",
		About:        "About",
		Interests:    "Areas of interest",
		Publications: "Publications",
		BackToTeam:   "Back to Team",
		Home:         "Home",
		NoImage:      "No image",
		Unclaimed:    "Author profile not yet claimed",
		Volume:       "Vol.",
		Issue:        "No.",
		Redirecting:  "Redirecting...",
		Moved:        "This profile has moved.",
		ClickHere:    "Click here if you are not redirected",
	},
}

func labelsFor(l contributors.Locale) labels {
	if lb, ok := localeLabels[l]; ok {
		return lb
	}
	return localeLabels[contributors.LocaleES]
}

func languageOf(l contributors.Locale) language.Tag {
	if l == contributors.LocaleEN {
		return language.English
	}
	return language.Spanish
}
