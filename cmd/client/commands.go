package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-derma-records/internal/adapter"
	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/utils"
	"github.com/MKhiriev/go-derma-records/models"
)

type adapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.AdminAdapter, error)

// cli holds the state shared by all admin commands. The adapter is built in
// the root PersistentPreRunE after flag overrides are applied.
type cli struct {
	cfg        *config.ClientConfig
	newAdapter adapterFactory

	verbose bool
	baseURL string
	timeout time.Duration

	adapter adapter.AdminAdapter
	logger  *logger.Logger
}

func newRootCmd(cfg *config.ClientConfig, newAdapter adapterFactory) *cobra.Command {
	c := &cli{cfg: cfg, newAdapter: newAdapter}

	root := &cobra.Command{
		Use:               "derma-admin",
		Short:             "Administer a derma-records server",
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log requests at debug level")
	flags.StringVar(&c.baseURL, "server", "", "records server base URL (overrides ADAPTER_BASE_URL)")
	flags.StringVar(&c.cfg.Adapter.Operator, "operator", c.cfg.Adapter.Operator, "operator written into the admin token")
	flags.DurationVar(&c.timeout, "timeout", 0, "request timeout (overrides ADAPTER_REQUEST_TIMEOUT)")

	root.AddCommand(
		c.listCmd(),
		c.byStatusCmd(),
		c.statsCmd(),
		c.expiringCmd(),
		c.purgeCmd(),
		c.requestDeletionCmd(),
		c.completeDeletionCmd(),
		c.deleteCmd(),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.baseURL != "" {
		c.cfg.Adapter.BaseURL = c.baseURL
	}
	if c.timeout > 0 {
		c.cfg.Adapter.RequestTimeout = c.timeout
	}
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.logger = logger.NewClientLogger("derma-records-admin", c.verbose)

	a, err := c.newAdapter(c.cfg.Adapter, c.logger)
	if err != nil {
		return fmt.Errorf("create admin adapter: %w", err)
	}

	token, err := utils.GenerateJWTToken(c.cfg.App.TokenIssuer, c.cfg.Adapter.Operator, c.cfg.App.TokenDuration, c.cfg.App.TokenSignKey)
	if err != nil {
		return fmt.Errorf("mint admin token: %w", err)
	}
	a.SetToken(token.SignedString)

	c.adapter = a
	c.logger.Debug().Str("server", c.cfg.Adapter.BaseURL).Str("operator", c.cfg.Adapter.Operator).Msg("admin adapter ready")

	return nil
}

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func (c *cli) listCmd() *cobra.Command {
	var (
		page      int
		limit     int
		riskLevel string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := models.ListQuery{Page: page, Limit: limit}
			if riskLevel != "" {
				level := models.RiskLevel(riskLevel)
				query.RiskLevel = &level
			}

			result, err := c.adapter.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&limit, "limit", 20, "records per page")
	cmd.Flags().StringVar(&riskLevel, "risk", "", "only records of this risk level (low, medium, high)")

	return cmd
}

func (c *cli) byStatusCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "by-status <status>",
		Short: "List records in a cloud analysis status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.adapter.ListByStatus(cmd.Context(), models.CloudStatus(args[0]), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of records")

	return cmd
}

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show record counts by risk level, status and capture method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.adapter.Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
}

func (c *cli) expiringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expiring",
		Short: "List records past their retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.adapter.Expiring(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
}

func (c *cli) purgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete every record past its retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			purged, err := c.adapter.Purge(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, models.PurgeResult{Purged: purged})
		},
	}
}

func (c *cli) requestDeletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request-deletion <analysis-id>",
		Short: "Open a deletion request for a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.adapter.RequestDeletion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, rec)
		},
	}
}

func (c *cli) completeDeletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete-deletion <analysis-id>",
		Short: "Mark the newest pending deletion request of a record completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.adapter.CompleteDeletion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, rec)
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <analysis-id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := c.adapter.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, models.DeleteResult{Deleted: deleted})
		},
	}
}
