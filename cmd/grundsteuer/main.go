package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bossin/grundsteuercheck/internal/calculation"
	"github.com/bossin/grundsteuercheck/internal/config"
	"github.com/bossin/grundsteuercheck/internal/domain"
	"github.com/bossin/grundsteuercheck/internal/output"
	"github.com/bossin/grundsteuercheck/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultsFileName = "grundsteuer.yaml"

var rootCmd = &cobra.Command{
	Use:   "grundsteuer",
	Short: "Grundsteuer-Einsparungsrechner (§ 220 Abs. 2 BewG)",
	Long:  "Berechnet die Grundsteuer-Ersparnis bei Nachweis eines niedrigeren gemeinen Werts.",
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Ersparnis für einen Grundsteuerwert berechnen",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := loadDefaults(cmd)
			if err != nil {
				return err
			}

			assessment, err := assessmentFromFlags(cmd, defaults)
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			result := engine.Calculate(assessment)

			format, _ := cmd.Flags().GetString("format")
			data, err := output.Render(format, assessment, result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().String("gsw", "", "Grundsteuerwert in Euro, z. B. 1031600")
	cmd.Flags().String("mess", "", "Steuermesszahl in ‰ (Default aus Konfiguration, sonst 0.31)")
	cmd.Flags().String("heb", "", "Hebesatz in % (Default aus Konfiguration, sonst 470)")
	cmd.Flags().Int("years", 0, "Restjahre bis zur nächsten Hauptfeststellung (Default aus Konfiguration, sonst 4)")
	cmd.Flags().String("custom", "", "optionaler Verkehrswert in Euro für das Szenario")
	cmd.Flags().String("format", "console", fmt.Sprintf("Ausgabeformat: %v", output.FormatterNames()))
	_ = cmd.MarkFlagRequired("gsw")

	return cmd
}

// assessmentFromFlags merges the flags with the configured defaults. Flags
// the user did not touch fall back to the defaults; the --custom flag is
// absent unless set, so a supplied "0" still reaches the engine.
func assessmentFromFlags(cmd *cobra.Command, defaults config.Defaults) (domain.Assessment, error) {
	gsw, _ := cmd.Flags().GetString("gsw")
	assessed, err := calculation.ParseAmount("--gsw", gsw)
	if err != nil {
		return domain.Assessment{}, err
	}

	rate := defaults.RatePerMille
	if cmd.Flags().Changed("mess") {
		mess, _ := cmd.Flags().GetString("mess")
		if rate, err = calculation.ParseRate("--mess", mess); err != nil {
			return domain.Assessment{}, err
		}
	}

	municipal := defaults.MunicipalRatePercent
	if cmd.Flags().Changed("heb") {
		heb, _ := cmd.Flags().GetString("heb")
		if municipal, err = calculation.ParseRate("--heb", heb); err != nil {
			return domain.Assessment{}, err
		}
	}

	years := defaults.RemainingYears
	if cmd.Flags().Changed("years") {
		if years, _ = cmd.Flags().GetInt("years"); years < 0 {
			return domain.Assessment{}, fmt.Errorf("--years must not be negative, got %d", years)
		}
	}

	a := domain.Assessment{
		AssessedValue:        assessed,
		RatePerMille:         rate,
		MunicipalRatePercent: municipal,
		RemainingYears:       years,
	}

	if cmd.Flags().Changed("custom") {
		custom, _ := cmd.Flags().GetString("custom")
		if a.CustomValue, err = calculation.ParseOptionalAmount("--custom", custom); err != nil {
			return domain.Assessment{}, err
		}
	}
	return a, nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Web-Formular und JSON-API starten",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Best effort; a missing .env is the normal case.
			_ = godotenv.Load()

			logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

			defaults, err := loadDefaults(cmd)
			if err != nil {
				return err
			}

			serverCfgPath, _ := cmd.Flags().GetString("server-config")
			cfg, err := server.LoadConfig(serverCfgPath)
			if err != nil {
				return err
			}

			api := server.NewWebAPI(logger, *cfg, server.Dependencies{
				Engine:   calculation.NewEngine(),
				Defaults: defaults,
				Version:  version,
			})
			return api.Start()
		},
	}

	cmd.Flags().String("server-config", "", "Pfad zur Server-Konfiguration (optional)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Versionsinformationen ausgeben",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "grundsteuer %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadDefaults reads the defaults file named by --config; without the flag
// the file next to the working directory is used when it exists.
func loadDefaults(cmd *cobra.Command) (config.Defaults, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path == "" && fileExists(defaultsFileName) {
		path = defaultsFileName
	}
	return config.LoadDefaults(path)
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func main() {
	rootCmd.PersistentFlags().String("config", "", "Pfad zur Defaults-Datei (YAML)")
	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
