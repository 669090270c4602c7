package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/vecmcp/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and connectivity",
	Long: `Run startup diagnostics: configuration, LiteLLM reachability,
default store resolution, and the catalog cache when one is configured.
With --probe, also issue a test search against the default store.

Exits non-zero when any hard check fails.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("probe", false, "run a test search against the default store")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	st, err := buildStack()
	if err != nil {
		bad.Printf("✗ Configuration: %v\n", err)
		return fmt.Errorf("configuration check failed")
	}
	defer st.Close()

	ok.Printf("✓ Configuration loaded (base_url %s, cache %s)\n",
		st.cfg.LiteLLM.BaseURL, st.cfg.Cache.Driver)

	ctx := cmd.Context()
	failed := false

	stores, err := st.client.ListVectorStores(ctx)
	if err != nil {
		bad.Printf("✗ LiteLLM backend: %s\n", domain.ConditionOf(err).Message)
		failed = true
	} else {
		ok.Printf("✓ LiteLLM backend reachable (%d stores visible)\n", len(stores))
	}

	switch id := st.cfg.LiteLLM.DefaultStoreID; {
	case id == "":
		warn.Println("⚠ No default store configured; every search must pass vector_store")
	case err != nil:
		warn.Printf("⚠ Default store %s not verified (catalog unavailable)\n", id)
	default:
		if descriptorByID(stores, id) {
			ok.Printf("✓ Default store %s present in catalog\n", id)
		} else {
			warn.Printf("⚠ Default store %s not in catalog; searches against it may 404\n", id)
		}
	}

	if st.redis != nil {
		if err := st.redis.Ping(ctx); err != nil {
			// Деградация, не отказ: резолвер сходит напрямую в бэкенд
			warn.Printf("⚠ Catalog cache unreachable: %v\n", err)
		} else {
			ok.Println("✓ Catalog cache reachable")
		}
	}

	if probe, _ := cmd.Flags().GetBool("probe"); probe {
		if id := st.cfg.LiteLLM.DefaultStoreID; id == "" {
			warn.Println("⚠ Probe search skipped: no default store configured")
		} else if results, err := st.client.Search(ctx, id, "test query"); err != nil {
			bad.Printf("✗ Probe search: %s\n", domain.ConditionOf(err).Message)
			failed = true
		} else {
			ok.Printf("✓ Probe search returned %d results\n", len(results))
		}
	}

	if failed {
		return fmt.Errorf("diagnostics failed")
	}
	return nil
}

func descriptorByID(stores []domain.StoreDescriptor, id string) bool {
	for i := range stores {
		if stores[i].ID() == id {
			return true
		}
	}
	return false
}
