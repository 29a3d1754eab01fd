package interfaces

import "context"

// IPushNotifier abstracts the push-notification fan-out collaborator. It is
// fire-and-forget: callers never block a payment flow on its outcome.
type IPushNotifier interface {
	Notify(ctx context.Context, recipients []string, excluding []string, payload map[string]any) error
}
