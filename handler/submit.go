package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docchat-client/internal/domain"
	"docchat-client/internal/usecase"
)

// ChatUseCase is the slice of the orchestrator the submission handler needs.
type ChatUseCase interface {
	CreateChat(ctx context.Context, in usecase.CreateChatInput) (usecase.CreateChatOutput, error)
}

// Submission is one user action from the compose form: a message plus zero or
// more picked files.
type Submission struct {
	Message string
	Files   []domain.LocalFile
}

// Result tells the UI where to go after a successful submission.
type Result struct {
	ChatSlug string
	Route    string
}

type Handler struct {
	uc          ChatUseCase
	maxFileSize int64
}

func NewHandler(uc ChatUseCase, maxFileSize int64) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: usecase must not be nil")
	}
	if maxFileSize <= 0 {
		return nil, errors.New("handler: max file size must be positive")
	}
	return &Handler{uc: uc, maxFileSize: maxFileSize}, nil
}

// Submit applies the compose form's own validation and hands the submission
// to the orchestrator. A blank message with no files is rejected here, before
// any network call, as is any file over the size limit.
func (h *Handler) Submit(ctx context.Context, sub Submission) (Result, error) {
	if strings.TrimSpace(sub.Message) == "" && len(sub.Files) == 0 {
		return Result{}, errors.New("handler: nothing to send")
	}
	for _, f := range sub.Files {
		if int64(len(f.Bytes)) > h.maxFileSize {
			return Result{}, fmt.Errorf("handler: file %s exceeds the %d byte limit", f.Name, h.maxFileSize)
		}
	}

	out, err := h.uc.CreateChat(ctx, usecase.CreateChatInput{
		Message:       sub.Message,
		AttachedFiles: sub.Files,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		ChatSlug: out.Chat.Slug,
		Route:    chatRoute(out.Chat.Slug),
	}, nil
}

func chatRoute(slug string) string {
	return "/chats/" + slug
}
