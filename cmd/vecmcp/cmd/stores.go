package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/vecmcp/internal/domain"
	"github.com/kailas-cloud/vecmcp/internal/render"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List vector stores from the LiteLLM catalog",
	Long: `List every vector store the configured API key can reach.

Examples:
  vecmcp stores              # table output
  vecmcp stores --json       # the same JSON the MCP tool returns`,
	RunE: runStores,
}

func init() {
	rootCmd.AddCommand(storesCmd)

	storesCmd.Flags().Bool("json", false, "output as JSON")
}

func runStores(cmd *cobra.Command, _ []string) error {
	st, err := buildStack()
	if err != nil {
		return err
	}
	defer st.Close()

	stores, err := st.catalog.ListVectorStores(cmd.Context())
	if err != nil {
		return domain.ConditionOf(err)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		fmt.Println(render.Stores(stores, domain.FormatJSON))
		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.Separators{ShowHeader: tw.Off}},
		}),
	)

	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		name := s.Name()
		if name == "" {
			name = "-"
		}
		rows = append(rows, []string{s.ID(), name, s.Provider(), s.Description()})
	}

	table.Header([]string{"ID", "NAME", "PROVIDER", "DESCRIPTION"})
	table.Bulk(rows)
	table.Render()
	fmt.Printf("\n%d stores\n", len(stores))

	return nil
}
