package deck

// Panel names a slide. The order of [Panels] is the deck order.
type Panel string

const (
	PanelWelcome   Panel = "welcome"
	PanelProfile   Panel = "profile"
	PanelStats     Panel = "stats"
	PanelLanguages Panel = "languages"
	PanelRepos     Panel = "repos"
	PanelHeatmap   Panel = "heatmap"
	PanelPersona   Panel = "persona"
	PanelScore     Panel = "score"
)

// Panels lists every slide in order.
var Panels = []Panel{
	PanelWelcome,
	PanelProfile,
	PanelStats,
	PanelLanguages,
	PanelRepos,
	PanelHeatmap,
	PanelPersona,
	PanelScore,
}

// Title returns the heading shown above the panel.
func (p Panel) Title() string {
	switch p {
	case PanelWelcome:
		return "GitHub Wrapped"
	case PanelProfile:
		return "Profile"
	case PanelStats:
		return "Your Year in Numbers"
	case PanelLanguages:
		return "Top Languages"
	case PanelRepos:
		return "Top Repositories"
	case PanelHeatmap:
		return "Contribution Heatmap"
	case PanelPersona:
		return "Developer Persona"
	case PanelScore:
		return "Final Score"
	default:
		return string(p)
	}
}

// IndexOf returns the position of p in [Panels], or -1.
func IndexOf(p Panel) int {
	for i, q := range Panels {
		if q == p {
			return i
		}
	}
	return -1
}
