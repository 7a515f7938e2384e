package command

import (
	"fmt"

	"libraryhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
	Long:  `Manage library members: register and list users`,
}

var addUserEmail string

var addUserCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a library member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		id, err := httpClient.CreateUser(client.CreateUserRequest{
			Name:  args[0],
			Email: addUserEmail,
		})
		if err != nil {
			return fmt.Errorf("failed to add user: %w", err)
		}
		fmt.Printf("User added with ID %d\n", id)
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		users, err := httpClient.GetAllUsers()
		if err != nil {
			return fmt.Errorf("failed to get user list: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("ID: %d  Name: %s  Email: %s\n", u.ID, u.Name, u.Email)
		}
		return nil
	},
}

func init() {
	addUserCmd.Flags().StringVar(&addUserEmail, "email", "", "email (required)")
	addUserCmd.MarkFlagRequired("email")

	userCmd.AddCommand(addUserCmd)
	userCmd.AddCommand(listUsersCmd)
}
