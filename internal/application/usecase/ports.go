package usecase

import (
	"context"

	"github.com/bvanacker/bestelportaal-api/internal/domain/repository"
)

// UpdateRequestTxRunner executes fn against a transactional update-request
// repository. The replace of a pending request (delete then insert) must
// not be observable half-done.
type UpdateRequestTxRunner interface {
	RunUpdateRequest(ctx context.Context, fn func(reqRepo repository.UpdateRequestRepository) error) error
}

// Notifier pushes a freshly stored notification to the connected client
// of its recipient, if any. Implementations must not block.
type Notifier interface {
	NotifyUser(userID int64, text string)
}

// NopNotifier is used where no live channel is wired, such as in tests.
type NopNotifier struct{}

func (NopNotifier) NotifyUser(int64, string) {}
