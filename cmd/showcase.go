package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/modalslot/internal/config"
	"github.com/marcus/modalslot/internal/showcase"
	"github.com/marcus/modalslot/pkg/modal"
	"github.com/marcus/modalslot/pkg/modal/ui"
)

var showcaseCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Run the interactive modal showcase",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("showcase needs an interactive terminal")
		}

		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		settings, err := resolveSettings(cmd.Flags(), cfg)
		if err != nil {
			return err
		}

		root := modal.NewScope("root")
		app := showcase.New(root.Child("showcase"))
		ctrl := modal.New(
			modal.WithDefaultCancelable(settings.defaultCancelable),
			modal.WithLogger(slog.Default()),
			modal.WithObserver(app.Record),
		)
		root.Provide(ctrl)

		host := ui.NewHost(ctrl, app, ui.WithStyles(settings.styles), ui.WithHostLogger(slog.Default()))
		defer host.Detach()

		slog.Debug("showcase starting", "default_cancelable", settings.defaultCancelable, "dim", settings.styles.Dim)
		p := tea.NewProgram(host, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run showcase: %w", err)
		}
		return nil
	},
}

type settings struct {
	defaultCancelable bool
	styles            ui.Styles
}

// resolveSettings merges the config file with command-line flags. Flags
// win when set.
func resolveSettings(flags *pflag.FlagSet, cfg *config.Config) (settings, error) {
	s := settings{defaultCancelable: true, styles: ui.DefaultStyles()}

	if cfg.DefaultCancelable != nil {
		s.defaultCancelable = *cfg.DefaultCancelable
	}
	if cfg.Dim != nil {
		s.styles.Dim = *cfg.Dim
	}

	var err error
	if s.styles.Backdrop, err = cfg.Backdrop.Apply(s.styles.Backdrop); err != nil {
		return s, fmt.Errorf("backdrop style: %w", err)
	}
	if s.styles.Root, err = cfg.Root.Apply(s.styles.Root); err != nil {
		return s, fmt.Errorf("root style: %w", err)
	}

	if flags.Changed("default-cancelable") {
		s.defaultCancelable, _ = flags.GetBool("default-cancelable")
	}
	if flags.Changed("no-dim") {
		noDim, _ := flags.GetBool("no-dim")
		s.styles.Dim = !noDim
	}
	return s, nil
}

func addShowcaseFlags(flags *pflag.FlagSet) {
	flags.Bool("default-cancelable", true, "let modals without a cancel policy be dismissed")
	flags.Bool("no-dim", false, "blank the app behind the dialog instead of dimming it")
}

func init() {
	addShowcaseFlags(showcaseCmd.Flags())
	rootCmd.AddCommand(showcaseCmd)
}
