package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Mostra a configuração atual",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Grava um arquivo de configuração com os valores padrão",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Arquivo: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status:  carregado")
	} else {
		fmt.Println("  Status:  padrões (sem arquivo de configuração)")
	}
	fmt.Println()

	fmt.Println("  [agency]")
	fmt.Printf("    name:    %s\n", cfg.Agency.Name)
	fmt.Printf("    tagline: %s\n", cfg.Agency.Tagline)
	fmt.Println()

	fmt.Println("  [export]")
	if cfg.Export.OutputDir != "" {
		fmt.Printf("    output_dir: %s\n", cfg.Export.OutputDir)
	} else {
		fmt.Println("    output_dir: (diretório atual)")
	}
	fmt.Println()

	fmt.Println("  [appearance]")
	fmt.Printf("    theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [defaults]")
	if cfg.Defaults.ImplementationValue != nil {
		fmt.Printf("    implementation_value: %.2f\n", *cfg.Defaults.ImplementationValue)
	}
	if cfg.Defaults.MaintenanceValue != nil {
		fmt.Printf("    maintenance_value:    %.2f\n", *cfg.Defaults.MaintenanceValue)
	}
	if cfg.Defaults.ImplementationValue == nil && cfg.Defaults.MaintenanceValue == nil {
		fmt.Println("    (valores padrão de um novo orçamento)")
	}

	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("já existe configuração em %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Configuração criada em %s\n", config.ConfigPath())
	}
	return nil
}
