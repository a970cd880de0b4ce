package configcmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test connectivity with configured credentials",
		Long:  `Test that wpp can connect to your WordPress site with the current configuration.`,
		Example: `  # Test connection
  wpp config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(noColor, nil)
		},
	}

	return cmd
}

func runTest(noColor bool, cfgOverride *config.Config) error {
	if noColor {
		color.NoColor = true
	}

	cfg := cfgOverride
	if cfg == nil {
		var err error
		cfg, err = config.LoadWithEnv(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'wpp init' to configure)", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w (run 'wpp init' to configure)", err)
		}
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Printf("Testing connection to %s...\n", cfg.SiteURL)

	client := api.NewClient(cfg.SiteURL, cfg.Username, cfg.AppPassword)

	user, err := client.Me(context.Background())
	if err != nil {
		if apiErr, ok := err.(*api.ErrorResponse); ok {
			switch apiErr.StatusCode {
			case 401:
				red.Println("✗ Authentication failed: 401 Unauthorized")
				fmt.Println("\nCheck your credentials with: wpp config show")
				fmt.Println("Reconfigure with: wpp init")
				return fmt.Errorf("authentication failed")
			case 403:
				red.Println("✗ Access denied: 403 Forbidden")
				fmt.Println("\nCheck your permissions.")
				return fmt.Errorf("access denied")
			default:
				red.Printf("✗ Unexpected response: %d\n", apiErr.StatusCode)
				return fmt.Errorf("unexpected status code: %d", apiErr.StatusCode)
			}
		}
		red.Println("✗ Connection failed:", err)
		fmt.Println("\nCheck your site URL with: wpp config show")
		fmt.Println("Reconfigure with: wpp init")
		return fmt.Errorf("connection failed: %w", err)
	}

	green.Println("✓ Authentication successful")
	green.Println("✓ REST API access verified")
	fmt.Printf("\nAuthenticated as: %s\n", user.Name)

	return nil
}
