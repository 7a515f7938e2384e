package command

import (
	"fmt"
	"strconv"
	"strings"

	"libraryhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var borrowCmd = &cobra.Command{
	Use:   "borrow <user-id> <book-id>",
	Short: "Lend a book copy to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, bookID, err := parseIDs(args)
		if err != nil {
			return err
		}

		httpClient := client.NewHTTPClient(apiURL)
		resp, err := httpClient.BorrowBook(userID, bookID)
		if err != nil {
			return fmt.Errorf("borrow failed: %w", err)
		}
		fmt.Printf("Borrowed (borrow id %d), due %s\n", resp.BorrowID, resp.DueDate)
		return nil
	},
}

var returnCmd = &cobra.Command{
	Use:   "return <user-id> <book-id>",
	Short: "Take back a borrowed copy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, bookID, err := parseIDs(args)
		if err != nil {
			return err
		}

		httpClient := client.NewHTTPClient(apiURL)
		if err := httpClient.ReturnBook(userID, bookID); err != nil {
			return fmt.Errorf("return failed: %w", err)
		}
		fmt.Println("Book returned.")
		return nil
	},
}

var borrowedIncludeReturned bool

var borrowedCmd = &cobra.Command{
	Use:   "borrowed <user-id>",
	Short: "List a user's borrowings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		httpClient := client.NewHTTPClient(apiURL)
		list, err := httpClient.GetBorrowedBooks(userID)
		if err != nil {
			return fmt.Errorf("failed to get borrowings: %w", err)
		}
		if borrowedIncludeReturned {
			returned, err := httpClient.GetReturnedBooks(userID)
			if err != nil {
				return fmt.Errorf("failed to get returned borrowings: %w", err)
			}
			list = append(list, returned...)
		}

		if len(list) == 0 {
			fmt.Println("No borrowings found.")
			return nil
		}
		for _, b := range list {
			fmt.Printf("Borrow ID: %d\n", b.BorrowID)
			fmt.Printf("Book: %s by %s (id %d)\n", b.Title, b.Author, b.BookID)
			fmt.Printf("Borrowed: %s  Due: %s\n", b.BorrowDate, b.DueDate)
			if b.ReturnDate != "" {
				fmt.Printf("Returned: %s\n", b.ReturnDate)
			}
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

func parseIDs(args []string) (int64, int64, error) {
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user id %q", args[0])
	}
	bookID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid book id %q", args[1])
	}
	return userID, bookID, nil
}

func init() {
	borrowedCmd.Flags().BoolVar(&borrowedIncludeReturned, "all", false, "include returned borrowings")
}
