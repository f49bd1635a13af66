// README: Flight entity shared by pooling requests.
package flight

import (
	"time"

	"flanvo/internal/types"
)

// Flight identifies one real-world arrival. The natural key is
// (Number, Date, ArrivalCode); the store's unique index keeps concurrent
// find-or-create callers from inserting duplicates.
type Flight struct {
	ID          types.ID
	Number      string
	Date        string // yyyy-mm-dd
	ArrivalCode string
	OriginCode  *string
	CreatedAt   time.Time
}
