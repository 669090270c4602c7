package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/vecmcp/internal/domain"
	"github.com/kailas-cloud/vecmcp/internal/render"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a vector store from the command line",
	Long: `Run one semantic search and print the rendered result.

The output is exactly what an MCP host would receive from the
litellm_search_vector_store tool.

Examples:
  vecmcp search "how does the auth middleware work"
  vecmcp search --store internal-corpus "retry semantics"
  vecmcp search --max-results 10 --json "connection pooling"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("store", "", "vector store name or ID (default: configured store)")
	searchCmd.Flags().Int("max-results", domain.DefaultMaxResults, "maximum results (1-20)")
	searchCmd.Flags().Bool("json", false, "output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	st, err := buildStack()
	if err != nil {
		return err
	}
	defer st.Close()

	maxResults, _ := cmd.Flags().GetInt("max-results")
	storeFlag, _ := cmd.Flags().GetString("store")

	format := domain.FormatMarkdown
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		format = domain.FormatJSON
	}

	q, err := domain.NewSearchQuery(strings.Join(args, " "), maxResults)
	if err != nil {
		return domain.ConditionOf(err)
	}

	ctx := cmd.Context()

	storeID, err := st.resolver.Resolve(ctx, domain.ParseStoreSelector(storeFlag))
	if err != nil {
		return domain.ConditionOf(err)
	}

	results, err := st.searcher.Run(ctx, storeID, q)
	if err != nil {
		return domain.ConditionOf(err)
	}

	resp := domain.NewSearchResponse(q.Text(), results, false)
	page := render.Search(resp, format, st.cfg.Search.CharacterLimit)
	fmt.Println(page.Text)

	return nil
}
