// Package init provides the init command for wpp.
package init

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		site     string
		username string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize wpp configuration",
		Long: `Initialize wpp with your WordPress site credentials.

This command will guide you through setting up your site URL, username,
and application password. The configuration will be saved to
~/.config/wpp/config.yml.

To generate an application password:
  1. Log in to WordPress and open Users > Profile
  2. Scroll to "Application Passwords"
  3. Enter a name (e.g. "wpp") and click "Add New Application Password"
  4. Copy the generated password (it won't be shown again)`,
		Example: `  # Interactive setup
  wpp init

  # Pre-populate site URL
  wpp init --site https://blog.example.com`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(site, username, noVerify)
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "WordPress site URL (e.g., https://blog.example.com)")
	cmd.Flags().StringVar(&username, "username", "", "Your WordPress username")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(prefillSite, prefillUsername string, noVerify bool) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{}

	// Use prefilled values or prompt
	if prefillSite != "" {
		cfg.SiteURL = prefillSite
	}
	if prefillUsername != "" {
		cfg.Username = prefillUsername
	}

	// Build the form
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Site URL").
				Description("Your WordPress site URL").
				Placeholder("https://blog.example.com").
				Value(&cfg.SiteURL).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("site URL is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Username").
				Description("Your WordPress username").
				Placeholder("admin").
				Value(&cfg.Username).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("username is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Application Password").
				Description("Generate under Users > Profile > Application Passwords").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.AppPassword).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("application password is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Default post status").
				Description("Status used when publishing without --status").
				Options(
					huh.NewOption("draft", "draft"),
					huh.NewOption("publish", "publish"),
					huh.NewOption("private", "private"),
				).
				Value(&cfg.DefaultStatus),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Normalize URL
	cfg.NormalizeURL()

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify connection unless skipped
	if !noVerify {
		fmt.Print("Verifying connection... ")
		if err := verifyConnection(cfg); err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Println("success!")
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  wpp post list")
	fmt.Println("  wpp post publish my-article.md")

	return nil
}

func verifyConnection(cfg *config.Config) error {
	client := api.NewClient(cfg.SiteURL, cfg.Username, cfg.AppPassword)

	user, err := client.Me(context.Background())
	if err != nil {
		if apiErr, ok := err.(*api.ErrorResponse); ok {
			switch apiErr.StatusCode {
			case 401:
				return fmt.Errorf("authentication failed - check your username and application password")
			case 403:
				return fmt.Errorf("access denied - check your permissions")
			}
		}
		return err
	}

	if user.ID == 0 {
		return fmt.Errorf("unexpected response from %s", cfg.SiteURL)
	}

	return nil
}
