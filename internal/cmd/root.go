// Package cmd is the growgroove command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	constants "github.com/ImGajeed76/growgroove/internal"
	"github.com/ImGajeed76/growgroove/internal/config"
	"github.com/ImGajeed76/growgroove/internal/logging"
	"github.com/ImGajeed76/growgroove/pkg/growgroove"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/console"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/prefs"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries what every command needs once the config is loaded.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger

	// interactive reports whether prompts and progress bars can be shown.
	interactive func() bool
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{
		v:           viper.New(),
		interactive: isTerminal,
	})
}

func newRootCommand(a *app) *cobra.Command {
	var tab string

	root := &cobra.Command{
		Use:   constants.ServiceName,
		Short: "The Growgroove digital marketing site, in your terminal",
		Long: `Growgroove shows the Growgroove site as an interactive terminal app.

Switch pages with ←/→ or 1-3, move between questions and packages with ↑/↓,
and open one with enter or a mouse click. Only one item is open at a time.`,
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSite(cmd.Context(), tab)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/growgroove/config.yaml)")
	root.Flags().StringVarP(&tab, "tab", "t", "", "page to open: "+strings.Join(tabs.IDs(), ", "))
	root.Flags().Bool("mouse", true, "enable mouse clicks and scrolling")
	root.Flags().Bool("alt-screen", true, "use the alternate screen")
	_ = a.v.BindPFlag("ui.mouse", root.Flags().Lookup("mouse"))
	_ = a.v.BindPFlag("ui.alt_screen", root.Flags().Lookup("alt-screen"))

	root.AddCommand(
		newPrintCommand(a),
		newTabsCommand(a),
		newPublishCommand(a),
		newForgetCommand(a),
	)
	return root
}

func (a *app) initConfig() error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath("$HOME/.config/" + constants.ServiceName)
		a.v.AddConfigPath(".")
	}

	a.v.SetEnvPrefix("GROWGROOVE")
	// GROWGROOVE_UI_DEFAULT_TAB for ui.default_tab
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", zap.String("file", used))
	}
	return nil
}

func (a *app) runSite(ctx context.Context, tab string) error {
	if tab != "" {
		if _, err := tabs.Lookup(tab); err != nil {
			return err
		}
	}

	var store *prefs.Store
	if a.cfg.UI.RememberTab {
		s, err := prefs.New(constants.ServiceName)
		if err != nil {
			return err
		}
		store = s
		if tab == "" {
			tab = store.LastTab()
		}
	}
	if tab == "" {
		tab = a.cfg.UI.DefaultTab
	}

	a.logger.Info("starting site", zap.String("tab", tab))
	return growgroove.Run(ctx, growgroove.Options{
		Site: console.SiteOptions{
			Tab:      tab,
			Registry: a.cfg.Registry(),
			Prefs:    store,
			Logger:   a.logger,
		},
		AltScreen: a.cfg.UI.AltScreen,
		Mouse:     a.cfg.UI.Mouse,
	})
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
