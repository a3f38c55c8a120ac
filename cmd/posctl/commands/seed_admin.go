package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/application/usecase"
	"github.com/MRMRMR033/pos-api/internal/domain/access"
	"github.com/MRMRMR033/pos-api/internal/domain/entity"
	"github.com/MRMRMR033/pos-api/internal/infrastructure/postgres"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Crea un usuario con rol admin",
	Long: `Crea un usuario administrador con el password hasheado.

Ejemplo:
  posctl seed-admin --email admin@tienda.mx --password secreto123 --name "Administrador"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		uc := usecase.NewUserUseCase(
			postgres.NewUserRepository(pool),
			access.NewHasher(cfg.App.BcryptCost),
			validation.New(),
		)
		email := adminEmail
		u, err := uc.Create(ctx, dto.CreateUserRequest{
			FullName: adminName,
			Email:    &email,
			Password: adminPassword,
			Rol:      entity.RoleAdmin,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "admin creado: id=%d email=%s\n", u.ID, email)
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&adminName, "name", "Administrador", "Nombre completo")
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Email de acceso")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password en texto plano (mínimo 6)")
	_ = seedAdminCmd.MarkFlagRequired("email")
	_ = seedAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(seedAdminCmd)
}
