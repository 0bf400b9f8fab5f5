package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferDocType_ByExtension(t *testing.T) {
	cases := []struct {
		name string
		want DocType
	}{
		{"report.pdf", DocTypePDF},
		{"Report.PDF", DocTypePDF},
		{"letter.doc", DocTypeDoc},
		{"letter.docx", DocTypeDoc},
		{"notes.txt", DocTypeDoc},
		{"readme.md", DocTypeDoc},
		{"sheet.xls", DocTypeXls},
		{"sheet.xlsx", DocTypeXls},
		{"data.csv", DocTypeXls},
		{"archive.zip", DocTypeUnknown},
		{"noextension", DocTypeUnknown},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, InferDocType(tc.name, nil), "name=%q", tc.name)
	}
}

func TestInferDocType_ByContent(t *testing.T) {
	pdf := []byte("%PDF-1.7\n%some pdf body")
	require.Equal(t, DocTypePDF, InferDocType("attachment.bin", pdf))

	text := []byte("plain text contents without a known extension")
	require.Equal(t, DocTypeDoc, InferDocType("attachment.bin", text))
}

func TestInferDocType_AlwaysReturnsAValue(t *testing.T) {
	require.Equal(t, DocTypeUnknown, InferDocType("", nil))
	require.Equal(t, DocTypeUnknown, InferDocType("x.unknownext", []byte{0x00, 0x01, 0x02, 0x03}))
}

func TestChatPendingDocuments(t *testing.T) {
	require.Nil(t, Chat{}.PendingDocuments())

	chat := Chat{Messages: Paginated[Message]{Items: []Message{
		{PendingDocuments: []PendingDocument{{ID: "d1"}}},
		{PendingDocuments: []PendingDocument{{ID: "d2"}}},
	}}}
	pending := chat.PendingDocuments()
	require.Len(t, pending, 1)
	require.Equal(t, "d1", pending[0].ID, "only the first message carries the upload slots")
}
