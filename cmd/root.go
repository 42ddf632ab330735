// Package cmd implements the orca CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/config"
	"github.com/agenciagand/orca/internal/engine"
	"github.com/agenciagand/orca/internal/export"
	"github.com/agenciagand/orca/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "orca",
	Short: "Calculadora de orçamentos para soluções em IA",
	Long: "Monte orçamentos de agentes de IA pelo terminal: preencha os campos,\n" +
		"acompanhe o total em tempo real e exporte a proposta em PDF.",
	RunE: runShow,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-file", "d", "", "Draft database file (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	cobra.OnInitialize(func() {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	})
}

func draftPath() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return store.DefaultPath()
}

// branding returns the agency identity from config, falling back to the
// built-in defaults when no config file exists.
func branding() export.Branding {
	cfg, _ := config.Load()
	return export.Branding{
		Name:    cfg.Agency.Name,
		Tagline: cfg.Agency.Tagline,
	}
}

// openEngine loads the draft (or the default state with any configured
// price overrides) and wires the autosave observer. The returned
// cleanup flushes pending saves and closes the store.
func openEngine() (*engine.Engine, func(), error) {
	st, err := store.Open(draftPath())
	if err != nil {
		return nil, nil, err
	}

	state, found := st.Load()
	if !found {
		cfg, _ := config.Load()
		if cfg.Defaults.ImplementationValue != nil {
			state.Financial.ImplementationValue = *cfg.Defaults.ImplementationValue
		}
		if cfg.Defaults.MaintenanceValue != nil {
			state.Financial.MaintenanceValue = *cfg.Defaults.MaintenanceValue
		}
	}

	saver := store.NewSaver(st)
	eng := engine.New(state, saver.Observe)

	cleanup := func() {
		saver.Close()
		_ = st.Close()
	}
	return eng, cleanup, nil
}

func runShow(_ *cobra.Command, _ []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	now := time.Now()
	doc := export.RenderText(eng.State(), eng.Totals(), export.OrderNumber(now), branding(), now)
	fmt.Println(doc)
	return nil
}
