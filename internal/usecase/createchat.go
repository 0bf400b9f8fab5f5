package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"docchat-client/internal/domain"
)

type ChatCreator interface {
	CreateChat(ctx context.Context, message *string, documents []domain.DocumentPayload) (domain.Chat, error)
}

type FileTransmitter interface {
	Transmit(ctx context.Context, file domain.LocalFile, destination string) error
}

type UploadConfirmer interface {
	MarkUploaded(ctx context.Context, documentID string) error
}

// DocTypeFunc classifies a local file. Implementations must be total: every
// file maps to some DocType.
type DocTypeFunc func(name string, data []byte) domain.DocType

// ChatService creates a chat and fans out the attachment uploads the server
// declared for it.
type ChatService struct {
	api      ChatCreator
	transmit FileTransmitter
	confirm  UploadConfirmer
	docType  DocTypeFunc
	logger   *slog.Logger

	uploads errgroup.Group
}

type CreateChatInput struct {
	Message       string
	AttachedFiles []domain.LocalFile
}

type CreateChatOutput struct {
	Chat domain.Chat
}

func NewChatService(api ChatCreator, transmit FileTransmitter, confirm UploadConfirmer, docType DocTypeFunc, logger *slog.Logger) (*ChatService, error) {
	if api == nil {
		return nil, errors.New("usecase: chat creator must not be nil")
	}
	if transmit == nil {
		return nil, errors.New("usecase: file transmitter must not be nil")
	}
	if confirm == nil {
		return nil, errors.New("usecase: upload confirmer must not be nil")
	}
	if docType == nil {
		docType = domain.InferDocType
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		api:      api,
		transmit: transmit,
		confirm:  confirm,
		docType:  docType,
		logger:   logger,
	}, nil
}

// CreateChat issues the chat-creation call and starts one upload per pending
// document the server declared. It returns as soon as the chat exists and the
// uploads are launched; it does not wait for them. Only a failed creation
// call crosses this boundary as an error. Per-file transmission and
// confirmation failures are isolated from each other, logged, and swallowed;
// they never invalidate the created chat.
func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (CreateChatOutput, error) {
	documents := make([]domain.DocumentPayload, 0, len(in.AttachedFiles))
	for _, f := range in.AttachedFiles {
		documents = append(documents, domain.DocumentPayload{
			Filename: f.Name,
			DocType:  s.docType(f.Name, f.Bytes),
		})
	}

	chat, err := s.api.CreateChat(ctx, messageOrAbsent(in.Message), documents)
	if err != nil {
		return CreateChatOutput{}, newError(ErrorChatCreation, "create_chat_failed", err)
	}

	// Uploads outlive the submission: once initiated they run to completion
	// or failure even if the caller cancels after navigating away. Detach
	// from the caller's cancellation but keep its values.
	uploadCtx := context.WithoutCancel(ctx)
	for _, pending := range chat.PendingDocuments() {
		file, ok := matchLocalFile(pending, in.AttachedFiles)
		if !ok {
			// The server declared a document we hold no bytes for. Skip it.
			s.logger.Warn("no local file for pending document",
				"document_id", pending.ID, "filename", pending.Filename)
			continue
		}
		pending := pending
		s.uploads.Go(func() error {
			return s.uploadDocument(uploadCtx, pending, file)
		})
	}

	return CreateChatOutput{Chat: chat}, nil
}

// Wait blocks until every upload launched so far has finished and reports the
// first failure. CreateChat never calls it; callers that need upload
// completion (tests, CLI exit) do.
func (s *ChatService) Wait() error {
	return s.uploads.Wait()
}

func (s *ChatService) uploadDocument(ctx context.Context, pending domain.PendingDocument, file domain.LocalFile) error {
	if err := s.transmit.Transmit(ctx, file, pending.PresignedURL); err != nil {
		s.logger.Warn("attachment transmission failed",
			"document_id", pending.ID, "filename", pending.Filename, "err", err)
		return err
	}
	if err := s.confirm.MarkUploaded(ctx, pending.ID); err != nil {
		// The bytes landed but the server was never told; the document stays
		// pending on its side. No compensation is attempted.
		s.logger.Warn("upload confirmation failed",
			"document_id", pending.ID, "err", err)
		return err
	}
	return nil
}

// messageOrAbsent trims the user's message and encodes blank as an explicit
// absence so the server can tell "no message" from "empty message".
func messageOrAbsent(message string) *string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
