package model

// ownerColors assigns each long-standing family member a fixed display color.
var ownerColors = map[string]string{
	"Nan":        "#b45309",
	"Wade":       "#0369a1",
	"Donetta":    "#be185d",
	"Adrienne":   "#7e22ce",
	"Cathy":      "#15803d",
	"Jean":       "#c2410c",
	"Carolyn":    "#0e7490",
	"Dorothy":    "#334155",
	"Selma":      "#4338ca",
	"Bernice":    "#4d7c0f",
	"Gail":       "#1d4ed8",
	"Laurie":     "#9d174d",
	"Molly":      "#b91c1c",
	"Wanda":      "#0f766e",
	"Bernadette": "#6b21a8",
	"Joanie":     "#854d0e",
}

// avatarColors is the fallback palette for contributors without a fixed color.
var avatarColors = []string{
	"#b91c1c", "#15803d", "#b45309", "#0369a1", "#334155",
	"#4338ca", "#be185d", "#854d0e", "#0f766e", "#7e22ce",
}

// AvatarColor resolves the display color for a contributor name. An explicit
// color wins, then the fixed family table, then a deterministic hash into the
// fallback palette so the same name always renders the same color.
func AvatarColor(name, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c, ok := ownerColors[name]; ok {
		return c
	}
	var hash int32
	for _, r := range name {
		hash = r + ((hash << 5) - hash)
	}
	if hash < 0 {
		hash = -hash
	}
	return avatarColors[int(hash)%len(avatarColors)]
}
