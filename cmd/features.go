package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agenciagand/orca/internal/model"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Gerencia os recursos incluídos no orçamento",
	RunE:  runFeaturesList,
}

var featuresToggleCmd = &cobra.Command{
	Use:   "toggle <recurso>",
	Short: "Liga ou desliga um recurso fixo",
	Long: "Recursos: whatsapp, spreadsheet, crm, externalTools, dashboard,\n" +
		"reports, training, support247.",
	Args: cobra.ExactArgs(1),
	RunE: runFeaturesToggle,
}

var featuresAddCmd = &cobra.Command{
	Use:   "add <descrição>",
	Short: "Adiciona um recurso personalizado",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFeaturesAdd,
}

var featuresRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove um recurso personalizado pelo id",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeaturesRemove,
}

func init() {
	featuresCmd.AddCommand(featuresToggleCmd, featuresAddCmd, featuresRemoveCmd)
	rootCmd.AddCommand(featuresCmd)
}

func runFeaturesList(_ *cobra.Command, _ []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	state := eng.State()
	for _, key := range model.AllFeatureKeys {
		mark := "[ ]"
		if on := state.Features.Flag(key); on != nil && *on {
			mark = "[x]"
		}
		fmt.Printf("  %s %-14s %s\n", mark, key, key.Label())
	}

	if len(state.Features.CustomResources) > 0 {
		fmt.Println()
		for _, r := range state.Features.CustomResources {
			fmt.Printf("  %s  %s\n", r.ID, r.Description)
		}
	}
	return nil
}

func runFeaturesToggle(_ *cobra.Command, args []string) error {
	key := model.FeatureKey(args[0])
	if key == model.FeatureCustomResources {
		return fmt.Errorf("customResources não é um recurso alternável; use features add/remove")
	}

	found := false
	for _, known := range model.AllFeatureKeys {
		if key == known {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("recurso desconhecido: %q", args[0])
	}

	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	eng.ToggleFeature(key)

	if !flagQuiet {
		state := eng.State()
		if on := state.Features.Flag(key); on != nil && *on {
			fmt.Printf("  + %s\n", key.Label())
		} else {
			fmt.Printf("  - %s\n", key.Label())
		}
	}
	return nil
}

func runFeaturesAdd(_ *cobra.Command, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return fmt.Errorf("a descrição não pode ser vazia")
	}

	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	id := eng.AddCustomResource(description)
	if !flagQuiet {
		fmt.Printf("  + %s (%s)\n", description, id)
	}
	return nil
}

func runFeaturesRemove(_ *cobra.Command, args []string) error {
	eng, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	before := len(eng.State().Features.CustomResources)
	eng.RemoveCustomResource(args[0])
	after := len(eng.State().Features.CustomResources)

	if !flagQuiet {
		if after < before {
			fmt.Println("  Recurso removido")
		} else {
			fmt.Println("  Nenhum recurso com esse id")
		}
	}
	return nil
}
