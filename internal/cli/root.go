// Package cli implements hostelctl, a terminal client for the hostel
// dashboard. The session is cached on disk between invocations.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/config"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/session"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

type options struct {
	baseURL    string
	sessionDir string
	sessionKey string
	timeout    time.Duration
	currency   string
	jsonOutput bool
	verbose    bool
}

// app holds the components shared by every subcommand. They are built in
// the root PersistentPreRunE once flags are parsed.
type app struct {
	opts options

	logger     *logger.Logger
	cache      *session.Cache
	notifier   *session.Notifier
	client     backend.Client
	reconciler *reconcile.Reconciler
}

// NewRootCommand builds the hostelctl command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hostelctl",
		Short: "Terminal client for the hostel student dashboard",
		Long: `Terminal client for the hostel student dashboard. Usage:

	hostelctl login --email you@example.com --password secret
	hostelctl dashboard
	hostelctl complaint submit --complaint "Fan not working"
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setup(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.baseURL, "base-url", envOr("BACKEND_BASE_URL", config.DefaultBackendBaseURL), "hostel API base URL")
	flags.StringVar(&a.opts.sessionDir, "session-dir", envOr("SESSION_DIR", defaultSessionDir()), "directory holding the cached session")
	flags.StringVar(&a.opts.sessionKey, "session-key", envOr("SESSION_KEY", config.DefaultSessionKey), "name of the session slot")
	flags.DurationVar(&a.opts.timeout, "timeout", 15*time.Second, "timeout for each backend request")
	flags.StringVar(&a.opts.currency, "currency", envOr("CURRENCY_SYMBOL", config.DefaultCurrencySymbol), "currency symbol used for rent")
	flags.BoolVar(&a.opts.jsonOutput, "json", false, "print JSON instead of text")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log backend traffic to stderr")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newProfileCmd(a),
		newRoomCmd(a),
		newMenuCmd(a),
		newComplaintCmd(a),
		newLaundryCmd(a),
	)

	return root
}

// Execute runs hostelctl with os.Args and returns the process exit code
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", apperrors.MessageOf(err, err.Error()))
		return 1
	}
	return 0
}

func (a *app) setup(stderr io.Writer) {
	if a.opts.verbose {
		a.logger = logger.NewLogger("debug", "text")
		a.logger.SetOutput(stderr)
	} else {
		a.logger = logger.NewNopLogger()
	}

	a.cache = session.NewCache(session.NewFilePersistence(a.opts.sessionDir), a.opts.sessionKey, a.logger)
	a.notifier = session.NewNotifier(a.logger)
	a.client = backend.NewHTTPClient(a.opts.baseURL, a.opts.timeout, a.logger)
	a.reconciler = reconcile.NewReconciler(a.client, a.cache, a.logger)
}

// print writes value as indented JSON with --json, otherwise through text
func (a *app) print(cmd *cobra.Command, value interface{}, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}
	text(out)
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func defaultSessionDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "hostelctl")
	}
	return ".hostelctl"
}
