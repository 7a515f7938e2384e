package client

// http_client.go wraps the libraryhub HTTP API for the CLI commands.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Book-related request/response structures
type CreateBookRequest struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Copies int    `json:"copies"`
}

type BookResponse struct {
	ID              int64   `json:"id"`
	ISBN            string  `json:"isbn"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	Copies          int     `json:"copies"`
	AvailableCopies int     `json:"available_copies"`
	Rating          float64 `json:"rating"`
	BorrowedCount   int     `json:"borrowed_count"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BorrowRequest struct {
	UserID int64 `json:"user_id"`
	BookID int64 `json:"book_id"`
}

type BorrowResponse struct {
	Message  string `json:"message"`
	BorrowID int64  `json:"borrow_id"`
	DueDate  string `json:"due_date"`
}

type BorrowedBookResponse struct {
	BorrowID   int64  `json:"borrow_id"`
	BookID     int64  `json:"book_id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	BorrowDate string `json:"borrow_date"`
	DueDate    string `json:"due_date"`
	ReturnDate string `json:"return_date,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (HTTP %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) GetAllBooks() ([]BookResponse, error) {
	var books []BookResponse
	err := c.do(http.MethodGet, "/books", nil, &books)
	return books, err
}

func (c *HTTPClient) GetBook(id int64) (*BookResponse, error) {
	var book BookResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) CreateBook(req CreateBookRequest) (*BookResponse, error) {
	var resp struct {
		Message string       `json:"message"`
		Book    BookResponse `json:"book"`
	}
	if err := c.do(http.MethodPost, "/books", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Book, nil
}

func (c *HTTPClient) SearchBooks(title string) ([]BookResponse, error) {
	var books []BookResponse
	err := c.do(http.MethodGet, "/books/search?title="+url.QueryEscape(title), nil, &books)
	return books, err
}

func (c *HTTPClient) CreateUser(req CreateUserRequest) (int64, error) {
	var resp struct {
		Message string `json:"message"`
		UserID  int64  `json:"user_id"`
	}
	if err := c.do(http.MethodPost, "/users", req, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

func (c *HTTPClient) GetAllUsers() ([]UserResponse, error) {
	var users []UserResponse
	err := c.do(http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *HTTPClient) BorrowBook(userID, bookID int64) (*BorrowResponse, error) {
	var resp BorrowResponse
	if err := c.do(http.MethodPost, "/borrow", BorrowRequest{UserID: userID, BookID: bookID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ReturnBook(userID, bookID int64) error {
	return c.do(http.MethodPost, "/return", BorrowRequest{UserID: userID, BookID: bookID}, nil)
}

func (c *HTTPClient) GetBorrowedBooks(userID int64) ([]BorrowedBookResponse, error) {
	var list []BorrowedBookResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/borrowed-books/%d", userID), nil, &list)
	return list, err
}

func (c *HTTPClient) GetReturnedBooks(userID int64) ([]BorrowedBookResponse, error) {
	var list []BorrowedBookResponse
	err := c.do(http.MethodGet, fmt.Sprintf("/returned-books/%d", userID), nil, &list)
	return list, err
}
