// Package user implements the `user` CLI command group for managing staff
// accounts. There is no self-service signup: accounts are created here.
package user

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	userdomain "fixmylab/internal/domain/user"
	"fixmylab/internal/infrastructure/auth"
	"fixmylab/internal/infrastructure/config"
	"fixmylab/internal/infrastructure/database"
	"fixmylab/internal/infrastructure/repository"
	"fixmylab/internal/shared/logger"
)

var (
	env   string
	email string
	role  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Staff account management",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a staff account",
		Long:  `Create a staff account. The password is read interactively, never from a flag.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&role, "role", userdomain.RoleStaff, "Account role (staff or admin)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := readPassword()
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	u, err := userdomain.NewUser(email, hash, role)
	if err != nil {
		return err
	}

	repo := repository.NewUserRepository(database.Get())

	ctx := context.Background()
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("account %s already exists", email)
	}

	if err := repo.Save(ctx, u); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "created %s account %s (id %d)\n", u.Role(), u.Email(), u.ID())
	return nil
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stdout, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimSpace(string(raw))
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}
	return password, nil
}
