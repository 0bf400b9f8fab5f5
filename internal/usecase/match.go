package usecase

import "docchat-client/internal/domain"

// matchLocalFile resolves a server-declared pending document to one of the
// caller's local files by exact, case-sensitive filename equality. The first
// match wins when names collide. No match is not an error: the document is
// skipped and never uploaded.
func matchLocalFile(pending domain.PendingDocument, files []domain.LocalFile) (domain.LocalFile, bool) {
	for _, f := range files {
		if f.Name == pending.Filename {
			return f, true
		}
	}
	return domain.LocalFile{}, false
}
