package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/chatline/internal/client/api"
	"github.com/dmitrijs2005/chatline/internal/client/auth"
	"github.com/dmitrijs2005/chatline/internal/client/bootstrap"
	"github.com/dmitrijs2005/chatline/internal/client/config"
	"github.com/dmitrijs2005/chatline/internal/client/session"
	"github.com/dmitrijs2005/chatline/internal/client/upload"
	"github.com/dmitrijs2005/chatline/internal/logging"
)

type App struct {
	config    *config.Config
	store     session.Store
	uploader  *upload.Uploader
	submitter *auth.Submitter
	router    *bootstrap.Router
	log       logging.Logger
	reader    *bufio.Reader
	session   *session.Session
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := session.NewFileStore(cfg.SessionFile, log)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.AuthorityBaseURL, cfg.RequestTimeout, log)
	uploader := upload.New(cfg.UploadURL, cfg.UploadPreset, cfg.UploadNamespace, cfg.RequestTimeout, log)

	return &App{
		config:    cfg,
		store:     store,
		uploader:  uploader,
		submitter: auth.NewSubmitter(apiClient, uploader, store, log),
		router:    bootstrap.NewRouter(store, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isSignedIn() bool {
	return a.session != nil
}

// Run performs the bootstrap check once and then hands control to the REPL.
// A persisted session skips the authentication surface entirely.
func (a *App) Run(ctx context.Context) {
	if a.router.Route(ctx) == bootstrap.SurfaceChat {
		sess, _ := a.store.Get(ctx)
		a.session = sess
		a.openChat(ctx)
	}
	a.Root(ctx)
}

// openChat is the hand-off to the messaging surface, which is served by the
// chat backend and is not part of this client.
func (a *App) openChat(ctx context.Context) {
	fmt.Printf("Welcome back, %s! Connecting to your chats...\n", a.session.Name)
	a.log.Info(ctx, "chat surface opened", "identity", a.session.Email)
}
