package player

import "context"

// Repository reads the player database.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
}
