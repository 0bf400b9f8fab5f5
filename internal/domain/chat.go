package domain

// Chat is the immutable snapshot the backend returns when a chat is created.
// The client never mutates it; document availability is eventually consistent
// and surfaced by later reads, not by updates to this value.
type Chat struct {
	ID       string             `json:"id"`
	Slug     string             `json:"slug"`
	Title    *string            `json:"title"`
	Messages Paginated[Message] `json:"messages"`
}

// Paginated mirrors the backend's cursor-paginated list envelope.
type Paginated[T any] struct {
	Items  []T  `json:"items"`
	Cursor *int `json:"cursor"`
}

// Message is a single chat message. The first message of a freshly created
// chat carries the documents awaiting upload.
type Message struct {
	ID               string            `json:"id"`
	Role             string            `json:"role"`
	Content          string            `json:"content"`
	Documents        []Document        `json:"documents"`
	PendingDocuments []PendingDocument `json:"pending_documents"`
}

// PendingDocument is a server-declared attachment slot. The client owns the
// bytes; the server owns the identity and the single-use, time-limited upload
// destination.
type PendingDocument struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	PresignedURL string `json:"presigned_url"`
}

// Document is an attachment whose bytes have already landed server-side.
type Document struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

// PendingDocuments returns the upload slots declared on the first message.
// A chat with no messages, or a first message with none, yields nil.
func (c Chat) PendingDocuments() []PendingDocument {
	if len(c.Messages.Items) == 0 {
		return nil
	}
	return c.Messages.Items[0].PendingDocuments
}
