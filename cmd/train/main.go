package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"heatcls/app"
	"heatcls/internal/config"
	"heatcls/internal/registry"
)

func main() {
	var configPath string
	var baseDir string
	var seed int64

	rootCmd := &cobra.Command{
		Use:   "heatcls-train",
		Short: "Train a tabular binary classifier from declarative configuration",
		Long: `Assemble a feature-transform + classifier pipeline from a YAML
configuration, cross-validate it, fit it on the train split, evaluate
ROC AUC on the test split, and persist the metric and fitted model.

Example: heatcls-train --config configs/train.yaml --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; it can override nothing but the process env.
			_ = godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Relative paths resolve against the config file's directory
			// unless --base-dir says otherwise.
			if baseDir == "" {
				baseDir = filepath.Dir(configPath)
			}
			cfg.ResolvePaths(baseDir)

			service := app.NewTrainService(registry.NewBuiltins())
			result, err := service.Run(cmd.Context(), cfg, seed)
			if err != nil {
				return err
			}

			fmt.Printf("ROC AUC: %f\n", result.ROCAUC)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "configs/train.yaml", "Path to the train configuration file")
	rootCmd.Flags().StringVar(&baseDir, "base-dir", "", "Base directory for relative paths (default: config file directory)")
	rootCmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic fold construction")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
