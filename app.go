package nexo

import (
	"github.com/sirupsen/logrus"
)

// App is the application context: the store plus every component wired on
// top of it. It is constructed once at process start and passed down to
// whatever consumes the core, instead of living in ambient globals.
type App struct {
	Config    Config
	Store     Store
	Sessions  *Sessions
	Directory *Directory
	Ledger    *Ledger
	Journal   *Journal
	Themes    *Themes
	Auth      *Auth

	log *logrus.Logger
}

// NewApp wires the components over the given store.
func NewApp(cfg Config, store Store) *App {
	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	sessions := NewSessions(store)
	directory := NewDirectory(store, sessions, log)
	ledger := NewLedger(store, log)

	return &App{
		Config:    cfg,
		Store:     store,
		Sessions:  sessions,
		Directory: directory,
		Ledger:    ledger,
		Journal:   NewJournal(store, ledger, log),
		Themes:    NewThemes(store),
		Auth:      NewAuth(cfg, directory, sessions, log),
		log:       log,
	}
}

// Open opens the durable store under cfg.DataDir and wires the application
// on top of it.
func Open(cfg Config) (*App, error) {
	store, err := OpenDirStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	app := NewApp(cfg, store)
	app.log.WithField("dir", store.Dir()).Debug("store opened")
	return app, nil
}
