package command

import (
	"fmt"
	"strconv"
	"strings"

	"libraryhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book management commands",
	Long:  `Manage the catalog: list, view, add and search books`,
}

var listBooksCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		books, err := httpClient.GetAllBooks()
		if err != nil {
			return fmt.Errorf("failed to get book list: %w", err)
		}

		if len(books) == 0 {
			fmt.Println("No books found.")
			return nil
		}

		fmt.Printf("Found %d books:\n\n", len(books))
		for _, b := range books {
			printBook(b)
		}
		return nil
	},
}

var getBookCmd = &cobra.Command{
	Use:   "get <book-id>",
	Short: "Show one book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}

		httpClient := client.NewHTTPClient(apiURL)
		book, err := httpClient.GetBook(id)
		if err != nil {
			return fmt.Errorf("failed to get book: %w", err)
		}
		printBook(*book)
		return nil
	},
}

var (
	addBookISBN   string
	addBookAuthor string
	addBookGenre  string
	addBookCopies int
)

var addBookCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a book to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		book, err := httpClient.CreateBook(client.CreateBookRequest{
			ISBN:   addBookISBN,
			Title:  args[0],
			Author: addBookAuthor,
			Genre:  addBookGenre,
			Copies: addBookCopies,
		})
		if err != nil {
			return fmt.Errorf("failed to add book: %w", err)
		}
		fmt.Printf("Book added with ID %d\n", book.ID)
		return nil
	},
}

var searchBooksCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Search books by title substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		books, err := httpClient.SearchBooks(args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(books) == 0 {
			fmt.Println("No books matched.")
			return nil
		}
		for _, b := range books {
			printBook(b)
		}
		return nil
	},
}

func printBook(b client.BookResponse) {
	fmt.Printf("ID: %d\n", b.ID)
	fmt.Printf("ISBN: %s\n", b.ISBN)
	fmt.Printf("Title: %s\n", b.Title)
	fmt.Printf("Author: %s\n", b.Author)
	fmt.Printf("Genre: %s\n", b.Genre)
	fmt.Printf("Copies: %d (%d available)\n", b.Copies, b.AvailableCopies)
	fmt.Printf("Rating: %.2f\n", b.Rating)
	fmt.Printf("Times borrowed: %d\n", b.BorrowedCount)
	fmt.Println(strings.Repeat("-", 50))
}

func init() {
	addBookCmd.Flags().StringVar(&addBookISBN, "isbn", "", "ISBN (required)")
	addBookCmd.Flags().StringVar(&addBookAuthor, "author", "", "author (required)")
	addBookCmd.Flags().StringVar(&addBookGenre, "genre", "", "genre (required)")
	addBookCmd.Flags().IntVar(&addBookCopies, "copies", 1, "number of copies")
	addBookCmd.MarkFlagRequired("isbn")
	addBookCmd.MarkFlagRequired("author")
	addBookCmd.MarkFlagRequired("genre")

	bookCmd.AddCommand(listBooksCmd)
	bookCmd.AddCommand(getBookCmd)
	bookCmd.AddCommand(addBookCmd)
	bookCmd.AddCommand(searchBooksCmd)
}
