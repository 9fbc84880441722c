package forge

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
)

// levelWidth pads the rendered level names so nothing gets cut off.
const levelWidth = 5

// logStyles returns the logger styles: the defaults with recoloured,
// width-padded level names.
func logStyles() *log.Styles {
	styles := log.DefaultStyles()

	colours := map[log.Level]string{
		log.DebugLevel: "63",
		log.InfoLevel:  "86",
		log.WarnLevel:  "192",
		log.ErrorLevel: "204",
		log.FatalLevel: "134",
	}

	for level, colour := range colours {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Bold(true).
			MaxWidth(levelWidth).
			Foreground(lipgloss.Color(colour))
	}

	return styles
}
