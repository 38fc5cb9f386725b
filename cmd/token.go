package cmd

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/admin"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/spf13/cobra"
)

var (
	tokenTTL     time.Duration
	tokenSubject string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an operator token for the /api/admin routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		tokenizer := token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
		signed, err := tokenizer.Generate(map[string]interface{}{
			"sub":           tokenSubject,
			admin.RoleClaim: admin.RoleAdmin,
		}, tokenTTL)
		if err != nil {
			return err
		}

		appLogger.Info("Operator token issued", "subject", tokenSubject, "ttl", tokenTTL)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
		return err
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "token subject")
}
