package player

import "context"

// Repository lists the full player index, active and historical.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
}
