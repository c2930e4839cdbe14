package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/vibast-solutions/ms-go-user/app/repository"
	"github.com/vibast-solutions/ms-go-user/app/service"
	"github.com/vibast-solutions/ms-go-user/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
)

var mkTokenCmd = &cobra.Command{
	Use:   "mktoken <user_id>",
	Short: "Mint a session token for an existing user",
	Long:  `Look up a user by id and print a signed session token, for exercising authenticated routes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		userID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := sql.Open("mysql", cfg.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		user, err := repository.NewUserRepository(db).FindByID(context.Background(), userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d not found", userID)
		}

		token, err := service.NewTokenCodec(cfg).Issue(user.ID, user.Type)
		if err != nil {
			return err
		}

		fmt.Printf("user_id: %d\n", user.ID)
		fmt.Printf("type: %s\n", user.Type)
		fmt.Printf("token: %s\n", token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkTokenCmd)
}
