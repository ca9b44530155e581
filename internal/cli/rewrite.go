package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/cobra"

	"github.com/Click-Movement/ContentSoftware/internal/model"
	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
	"github.com/Click-Movement/ContentSoftware/pkg/news"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite an article in a persona's style",
	Long:  "Rewrite an article read from a file, stdin or a URL. Rule mode works offline; ai mode needs OPENAI_API_KEY or CLAUDE_API_KEY.",
	RunE:  runRewrite,
}

var (
	flagRewriteInput    string
	flagRewriteURL      string
	flagRewriteTitle    string
	flagRewritePersona  string
	flagRewriteMode     string
	flagRewriteModel    string
	flagRewriteMarkdown bool
	flagRewriteSeed     uint64
)

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().StringVarP(&flagRewriteInput, "input", "i", "", "Article body file, or - for stdin")
	rewriteCmd.Flags().StringVarP(&flagRewriteURL, "url", "u", "", "Fetch the article from a URL instead")
	rewriteCmd.Flags().StringVarP(&flagRewriteTitle, "title", "t", "", "Article title (taken from the page with --url)")
	rewriteCmd.Flags().StringVarP(&flagRewritePersona, "persona", "p", "", "Persona id, see 'rewriter personas' (default rewrite.default_persona)")
	rewriteCmd.Flags().StringVarP(&flagRewriteMode, "mode", "m", model.ModeRule, "Rewrite mode: rule or ai")
	rewriteCmd.Flags().StringVar(&flagRewriteModel, "model", "", "AI backend: gpt or claude (default ai.default_model)")
	rewriteCmd.Flags().BoolVar(&flagRewriteMarkdown, "markdown", false, "Print the content as markdown instead of HTML")
	rewriteCmd.Flags().Uint64Var(&flagRewriteSeed, "seed", 0, "Seed for reproducible rule-based output (0 picks a random one)")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	if flagRewriteMode != model.ModeRule && flagRewriteMode != model.ModeAI {
		return fmt.Errorf("invalid mode %q: must be rule or ai", flagRewriteMode)
	}
	if _, err := persona.Lookup(flagRewritePersona); flagRewritePersona != "" && err != nil {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(personaIDs(), ", "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	title, content, err := readArticle(cmd.Context(), cmd.InOrStdin(), news.NewPageFetcher(cfg.Fetch.Timeout))
	if err != nil {
		return err
	}

	var rnd persona.Source
	if flagRewriteSeed != 0 {
		rnd = persona.NewSeededSource(flagRewriteSeed)
	}

	var backends []llm.Completer
	if flagRewriteMode == model.ModeAI {
		backends = llm.NewBackends(llm.Keys{
			OpenAIKey:      cfg.AI.OpenAIKey,
			OpenAIModel:    cfg.AI.OpenAIModel,
			AnthropicKey:   cfg.AI.AnthropicKey,
			AnthropicModel: cfg.AI.AnthropicModel,
		})
		if len(backends) == 0 {
			return errors.New("ai mode needs OPENAI_API_KEY or CLAUDE_API_KEY")
		}
	}
	service := rewrite.NewService(rnd, backends...).WithDefaults(cfg.Rewrite.DefaultPersona, cfg.AI.DefaultModel)

	var res persona.Result
	if flagRewriteMode == model.ModeAI {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.AI.Timeout)
		defer cancel()

		out, err := service.AI(ctx, title, content, flagRewritePersona, flagRewriteModel)
		if err != nil {
			return err
		}
		res = out.Result
	} else {
		res, _ = service.Direct(cmd.Context(), title, content, flagRewritePersona)
	}

	return printResult(cmd.OutOrStdout(), res, flagRewriteMarkdown)
}

// readArticle loads the title and body from --url, --input or stdin.
func readArticle(ctx context.Context, stdin io.Reader, fetcher *news.PageFetcher) (string, string, error) {
	if flagRewriteURL != "" {
		page, err := fetcher.Fetch(ctx, flagRewriteURL)
		if err != nil {
			return "", "", err
		}
		title := page.Title
		if flagRewriteTitle != "" {
			title = flagRewriteTitle
		}
		return title, page.Content, nil
	}

	if flagRewriteTitle == "" {
		return "", "", errors.New("--title is required unless --url is given")
	}

	var (
		raw []byte
		err error
	)
	switch flagRewriteInput {
	case "":
		return "", "", errors.New("either --input (-i) or --url (-u) is required")
	case "-":
		raw, err = io.ReadAll(stdin)
	default:
		raw, err = os.ReadFile(flagRewriteInput)
	}
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return "", "", errors.New("input is empty")
	}
	return flagRewriteTitle, string(raw), nil
}

func printResult(w io.Writer, res persona.Result, markdown bool) error {
	content := res.Content
	if markdown {
		converter := md.NewConverter("", true, nil)
		out, err := converter.ConvertString(content)
		if err != nil {
			return fmt.Errorf("convert to markdown: %w", err)
		}
		content = out
		fmt.Fprintf(w, "# %s\n\n%s\n", res.Title, content)
		return nil
	}
	fmt.Fprintf(w, "%s\n\n%s\n", res.Title, content)
	return nil
}

func personaIDs() []string {
	var ids []string
	for _, p := range persona.All() {
		ids = append(ids, string(p.ID))
	}
	return ids
}
