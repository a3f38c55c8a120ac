package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MRMRMR033/pos-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica las migraciones pendientes",
	Long: `Aplica en orden las migraciones embebidas que no estén registradas en schema_migrations.
Es idempotente: una segunda ejecución no aplica nada.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := postgres.Migrate(ctx, postgres.NewTxRunner(pool), pool)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(applied) == 0 {
			fmt.Fprintln(out, "sin migraciones pendientes")
			return nil
		}
		for _, name := range applied {
			fmt.Fprintf(out, "aplicada %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
