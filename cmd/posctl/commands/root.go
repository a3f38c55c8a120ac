package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/MRMRMR033/pos-api/internal/infrastructure/postgres"
	"github.com/MRMRMR033/pos-api/pkg/config"
)

// dbURL sobrescribe DATABASE_URL/DB_* de la configuración.
var dbURL string

var rootCmd = &cobra.Command{
	Use:   "posctl",
	Short: "Tareas de operación de la API del punto de venta",
	Long: `posctl prepara la base de datos de la API del punto de venta.

Comandos:
  migrate     aplica las migraciones SQL embebidas
  seed-admin  crea el primer usuario administrador`,
	SilenceUsage: true,
}

// Execute corre el comando raíz.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "URL de PostgreSQL (por defecto la de la configuración)")
}

// openPool carga la configuración y abre el pool; --db tiene prioridad.
func openPool(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if dbURL != "" {
		cfg.DB.DatabaseURL = dbURL
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return cfg, pool, nil
}
