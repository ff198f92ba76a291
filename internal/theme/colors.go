package theme

import "github.com/opencode-ai/themekit/internal/tokens"

// Colors is the resolved color set of a theme.
type Colors struct {
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	SurfaceLight  string `json:"surfaceLight"`
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextTertiary  string `json:"textTertiary"`
	Border        string `json:"border"`
	Primary       string `json:"primary"`
	PrimaryDark   string `json:"primaryDark"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Error         string `json:"error"`
	Info          string `json:"info"`
	Shadow        string `json:"shadow"`
	Overlay       string `json:"overlay"`
	OnPrimary     string `json:"onPrimary"`
}

type colorRole struct {
	key string
	get func(*Colors) *string
}

// colorRoles lists every resolved role in display order.
var colorRoles = []colorRole{
	{"background", func(c *Colors) *string { return &c.Background }},
	{"surface", func(c *Colors) *string { return &c.Surface }},
	{"surfaceLight", func(c *Colors) *string { return &c.SurfaceLight }},
	{"textPrimary", func(c *Colors) *string { return &c.TextPrimary }},
	{"textSecondary", func(c *Colors) *string { return &c.TextSecondary }},
	{"textTertiary", func(c *Colors) *string { return &c.TextTertiary }},
	{"border", func(c *Colors) *string { return &c.Border }},
	{"primary", func(c *Colors) *string { return &c.Primary }},
	{"primaryDark", func(c *Colors) *string { return &c.PrimaryDark }},
	{"secondary", func(c *Colors) *string { return &c.Secondary }},
	{"accent", func(c *Colors) *string { return &c.Accent }},
	{"success", func(c *Colors) *string { return &c.Success }},
	{"warning", func(c *Colors) *string { return &c.Warning }},
	{"error", func(c *Colors) *string { return &c.Error }},
	{"info", func(c *Colors) *string { return &c.Info }},
	{"shadow", func(c *Colors) *string { return &c.Shadow }},
	{"overlay", func(c *Colors) *string { return &c.Overlay }},
	{"onPrimary", func(c *Colors) *string { return &c.OnPrimary }},
}

// roleFallbacks maps optional roles to the role they inherit from. Roles
// without an entry end at the token neutrals (textPrimary) or are required
// (background, primary, error).
var roleFallbacks = map[string]string{
	"surface":       "background",
	"surfaceLight":  "surface",
	"textSecondary": "textPrimary",
	"textTertiary":  "textSecondary",
	"border":        "textTertiary",
	"primaryDark":   "primary",
	"secondary":     "primary",
	"accent":        "secondary",
	"success":       "accent",
	"warning":       "primary",
	"info":          "primary",
	"shadow":        "textPrimary",
	"overlay":       "shadow",
	"onPrimary":     "background",
}

// RequiredRoles returns the roles that have neither a fallback role nor a
// neutral default.
func RequiredRoles() []string {
	var required []string
	for _, role := range colorRoles {
		if _, ok := roleFallbacks[role.key]; ok {
			continue
		}
		if _, ok := tokens.NeutralDefault(role.key, false); ok {
			continue
		}
		required = append(required, role.key)
	}
	return required
}

// RoleNames returns every color role in display order.
func RoleNames() []string {
	names := make([]string, len(colorRoles))
	for i, role := range colorRoles {
		names[i] = role.key
	}
	return names
}

// Get returns the color for a semantic role name.
func (c Colors) Get(key string) (string, bool) {
	for _, role := range colorRoles {
		if role.key == key {
			return *role.get(&c), true
		}
	}
	return "", false
}

// Map returns the colors keyed by role name.
func (c Colors) Map() map[string]string {
	out := make(map[string]string, len(colorRoles))
	for _, role := range colorRoles {
		out[role.key] = *role.get(&c)
	}
	return out
}

func colorsFromMap(values map[string]string) Colors {
	var c Colors
	for _, role := range colorRoles {
		*role.get(&c) = values[role.key]
	}
	return c
}
