package cmd

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/spf13/cobra"
)

var archiveReset bool

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive the current leaderboard under yesterday's date",
	Long: `Copies the current leaderboard into the archive collection under yesterday's
UTC date. Runs that find the day already archived or the leaderboard empty exit
cleanly. Suitable for a daily cron job.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		b, err := initBackends(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer b.Close()

		reset := cfg.ArchiveReset
		if cmd.Flags().Changed("reset") {
			reset = archiveReset
		}
		archiver, err := initArchiver(b, reset, debug)
		if err != nil {
			return err
		}

		archive, err := archiver.Archive(cmd.Context())
		if errors.Is(err, domain.ErrAlreadyArchived) || errors.Is(err, domain.ErrNothingToArchive) {
			appLogger.Info("Nothing archived", "reason", err)
			return nil
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "archived %d scores for %s\n", len(archive.Scores), archive.Day)
		return err
	},
}

func init() {
	archiveCmd.Flags().BoolVar(&archiveReset, "reset", false, "clear the leaderboard after archiving (default from ARCHIVE_RESET)")
}
