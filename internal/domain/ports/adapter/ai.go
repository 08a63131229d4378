package adapter

import "context"

// ToastAdapter generates a short toast for the given occasion.
type ToastAdapter interface {
	GenerateToast(ctx context.Context, reason string) (string, error)
}
