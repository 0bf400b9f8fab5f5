package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"docchat-client/internal/domain"
)

func TestMatchLocalFile(t *testing.T) {
	files := []domain.LocalFile{
		{Name: "report.pdf", Bytes: []byte("first")},
		{Name: "notes.txt", Bytes: []byte("notes")},
		{Name: "report.pdf", Bytes: []byte("second")},
	}

	t.Run("exact match", func(t *testing.T) {
		f, ok := matchLocalFile(domain.PendingDocument{Filename: "notes.txt"}, files)
		require.True(t, ok)
		require.Equal(t, "notes.txt", f.Name)
	})

	t.Run("first match wins on duplicates", func(t *testing.T) {
		f, ok := matchLocalFile(domain.PendingDocument{Filename: "report.pdf"}, files)
		require.True(t, ok)
		require.Equal(t, []byte("first"), f.Bytes)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := matchLocalFile(domain.PendingDocument{Filename: "Report.pdf"}, files)
		require.False(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := matchLocalFile(domain.PendingDocument{Filename: "other.pdf"}, files)
		require.False(t, ok)
	})

	t.Run("no files", func(t *testing.T) {
		_, ok := matchLocalFile(domain.PendingDocument{Filename: "report.pdf"}, nil)
		require.False(t, ok)
	})
}
