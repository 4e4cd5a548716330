package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════╗",
		"║     ██████╗ █████╗ ██████╗  ██████╗ ██████╗ ████████╗    ║",
		"║    ██╔════╝██╔══██╗██╔══██╗██╔═══██╗██╔══██╗╚══██╔══╝    ║",
		"║    ██║     ███████║██████╔╝██║   ██║██████╔╝   ██║       ║",
		"║    ██║     ██╔══██║██╔═══╝ ██║   ██║██╔═══╝    ██║       ║",
		"║    ╚██████╗██║  ██║██║     ╚██████╔╝██║        ██║       ║",
		"║     ╚═════╝╚═╝  ╚═╝╚═╝      ╚═════╝ ╚═╝        ╚═╝       ║",
		"║                                                          ║",
		"║         Platform Seed Orchestrator                       ║",
		"╚══════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                 ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "capopt",
	Short: "Seed the CapOpt Platform database with master and demo data",
	Long: `
capopt populates a CapOpt Platform database with reference data, a demo
enterprise and Business Model Canvases. Seeding is split into chunks that
run in dependency order and can be re-run safely.

Database Support:
- PostgreSQL (pgx, or lib/pq with database.driver = "pq")
- MySQL
- SQLite`,
	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("capopt version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./capopt.config.json)")
	rootCmd.PersistentFlags().String("log-format", "", "output format: console or json")
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("capopt.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
