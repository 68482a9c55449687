package site

// ThemePreference is the light/dark visual mode.
type ThemePreference string

const (
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

// DefaultTheme applies whenever no valid preference has been persisted.
const DefaultTheme = ThemeDark

// ThemeStorageKey is the persisted-storage key holding the preference.
const ThemeStorageKey = "theme"

// ParseTheme accepts exactly "light" or "dark". Anything else, including
// differently-cased values, is rejected.
func ParseTheme(raw string) (ThemePreference, bool) {
	switch ThemePreference(raw) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Toggle returns the opposite preference. Invalid values toggle from the default.
func (t ThemePreference) Toggle() ThemePreference {
	if t == ThemeLight {
		return ThemeDark
	}
	if t == ThemeDark {
		return ThemeLight
	}
	return DefaultTheme.Toggle()
}

// String returns the persisted representation.
func (t ThemePreference) String() string {
	return string(t)
}
