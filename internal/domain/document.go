package domain

// DocumentPayload describes one attachment in a chat-creation request.
type DocumentPayload struct {
	Filename string  `json:"filename"`
	DocType  DocType `json:"doc_type"`
}

// LocalFile is a client-owned file picked for upload. It exists only for the
// duration of the submission and is matched to a PendingDocument by filename.
type LocalFile struct {
	Name  string
	Bytes []byte
}
