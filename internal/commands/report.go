package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paycycle-dev/paycycle/internal/advisory"
	"github.com/paycycle-dev/paycycle/internal/analysis"
	"github.com/paycycle-dev/paycycle/internal/config"
	"github.com/paycycle-dev/paycycle/internal/importer"
	"github.com/paycycle-dev/paycycle/internal/logger"
	"github.com/paycycle-dev/paycycle/internal/report"
)

type reportOptions struct {
	now          string
	asJSON       bool
	advisoryPath string
	format       string
	encoding     string
}

func newReportCommand(opts *rootOptions) *cobra.Command {
	var ro reportOptions

	cmd := &cobra.Command{
		Use:   "report [export-file]",
		Short: "Analyze a bank export and print per-period statistics",
		Long: `Analyze a bank export and print per-period statistics.

Without an export file, the last export in the import/ directory next to the
config file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context()).With().Str("run_id", uuid.NewString()).Logger()

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			now := time.Now()
			if ro.now != "" {
				now, err = time.Parse("2006-01-02", ro.now)
				if err != nil {
					return fmt.Errorf("parsing --now: %w", err)
				}
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				files, err := importer.Scan(filepath.Dir(opts.configPath))
				if err != nil {
					return err
				}
				if len(files) == 0 {
					return fmt.Errorf("no export given and none found in %s", filepath.Join(filepath.Dir(opts.configPath), "import"))
				}
				path = files[len(files)-1].Path
			}

			format := cfg.Import.Format
			if ro.format != "" {
				format = ro.format
			}
			encoding := cfg.Import.Encoding
			if ro.encoding != "" {
				encoding = ro.encoding
			}

			log.Info().Str("file", path).Str("format", format).Msg("reading export")
			txns, err := importer.DefaultRegistry().ParseFile(path, format, encoding)
			if err != nil {
				return err
			}

			policies, err := cfg.PolicySet()
			if err != nil {
				return err
			}
			exceptions, err := cfg.ExceptionTable()
			if err != nil {
				return err
			}
			windows, err := cfg.Windows()
			if err != nil {
				return err
			}

			run, err := analysis.New(txns, analysis.Params{
				Windows:    windows,
				Policies:   policies,
				Exceptions: exceptions,
				Now:        now,
				Logger:     &log,
			})
			if err != nil {
				return err
			}

			if ro.advisoryPath != "" {
				prev, err := advisory.Read(ro.advisoryPath)
				if err != nil {
					return err
				}
				entries := advisory.FromTransactions(run.Unclassified.Transactions())
				fresh := advisory.Since(prev, entries)
				if err := advisory.Write(ro.advisoryPath, entries); err != nil {
					return err
				}
				log.Info().Str("file", ro.advisoryPath).Int("entries", len(entries)).Int("new", len(fresh)).Msg("wrote unclassified transactions")
				fmt.Fprintf(cmd.ErrOrStderr(), "%d unclassified transaction(s), %d new since last run\n", len(entries), len(fresh))
			}

			if ro.asJSON {
				return report.JSON(cmd.OutOrStdout(), run)
			}
			return report.Text(cmd.OutOrStdout(), run)
		},
	}

	cmd.Flags().StringVar(&ro.now, "now", "", "reference date (YYYY-MM-DD) for remaining-day figures, default today")
	cmd.Flags().BoolVar(&ro.asJSON, "json", false, "print the run as JSON")
	cmd.Flags().StringVar(&ro.advisoryPath, "advisory", "", "write unclassified transactions to this CSV file (e.g. "+advisory.DefaultPath+")")
	cmd.Flags().StringVar(&ro.format, "format", "", "export format, overrides the config")
	cmd.Flags().StringVar(&ro.encoding, "encoding", "", "export encoding (utf-8, euc-kr), overrides the config")

	return cmd
}
