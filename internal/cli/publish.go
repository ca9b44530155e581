package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/pkg/wordpress"
)

const passwordEnv = "WP_APP_PASSWORD"

var publishCmd = &cobra.Command{
	Use:   "publish <site>",
	Short: "Create a WordPress draft from a rewritten article",
	Long:  "Post an article to a bookmarked site as a draft. The application password is read from " + passwordEnv + ".",
	Args:  cobra.ExactArgs(1),
	RunE:  runPublish,
}

var (
	flagPublishTitle   string
	flagPublishInput   string
	flagPublishPersona string
	flagPublishFormat  string
)

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVarP(&flagPublishTitle, "title", "t", "", "Post title")
	publishCmd.Flags().StringVarP(&flagPublishInput, "input", "i", "", "Post body file")
	publishCmd.Flags().StringVarP(&flagPublishPersona, "persona", "p", "", "Persona to credit at the end of the post")
	publishCmd.Flags().StringVarP(&flagPublishFormat, "format", "f", string(wordpress.FormatHTML), "Body format: html or markdown")
}

func runPublish(cmd *cobra.Command, args []string) error {
	if flagPublishTitle == "" || flagPublishInput == "" {
		return errors.New("--title and --input are required")
	}

	password := os.Getenv(passwordEnv)
	if password == "" {
		return fmt.Errorf("%s is not set", passwordEnv)
	}

	store, err := siteStore()
	if err != nil {
		return err
	}
	site, err := store.Get(args[0])
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(flagPublishInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var name string
	if flagPublishPersona != "" {
		name = persona.DisplayName(flagPublishPersona)
	}

	content, err := wordpress.PrepareContent(string(raw), wordpress.Format(flagPublishFormat), name)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	created, err := wordpress.NewClient(cfg.Fetch.Timeout).CreateDraft(cmd.Context(), wordpress.Site{
		URL:      site.URL,
		Username: site.Username,
		Password: password,
	}, wordpress.Post{Title: flagPublishTitle, Content: content})
	if err != nil {
		var apiErr *wordpress.APIError
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			return fmt.Errorf("authentication failed for %s, check the username and %s: %w", site.URL, passwordEnv, err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Draft %d created: %s\n", created.ID, wordpress.EditURL(site.URL, created.ID))
	return nil
}
