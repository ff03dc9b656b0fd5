package nexo

// AppTheme is the persisted primary/secondary color pair. It is a process
// wide singleton; applying it to a rendering surface is the consumer's
// responsibility.
type AppTheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// DefaultTheme is the pair returned when no theme was ever set: the
// application's original purple palette.
var DefaultTheme = AppTheme{Primary: "#6d28d9", Secondary: "#4c1d95"}

// Themes persists the application theme.
type Themes struct {
	store Store
}

func NewThemes(store Store) *Themes {
	return &Themes{store: store}
}

// Theme returns the stored theme, or DefaultTheme when unset. Unset is
// never an error.
func (t *Themes) Theme() (AppTheme, error) {
	theme, ok, err := loadRecord[AppTheme](t.store, KeyTheme)
	if err != nil {
		return AppTheme{}, err
	}
	if !ok {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme overwrites the stored theme.
func (t *Themes) SetTheme(theme AppTheme) error {
	return saveRecord(t.store, KeyTheme, theme)
}
