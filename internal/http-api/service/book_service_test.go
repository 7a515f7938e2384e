package service

import (
	"context"
	"testing"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestBookService_Create_NegativeCopies(t *testing.T) {
	// validation fires before the repository is touched
	svc := NewBookService(nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateBookDTO{
		ISBN:   "111",
		Title:  "Dune",
		Author: "Frank Herbert",
		Genre:  "Sci-Fi",
		Copies: intPtr(-1),
	})
	require.Error(t, err)
	assert.True(t, shared.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "copies")
}
