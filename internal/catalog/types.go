package catalog

import "time"

// #region entity
// Entity is one resolvable item in the catalog. Kind partitions the
// namespace ("fund", "investor"); PayloadJSON carries the domain record.
type Entity struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	PayloadJSON string    `json:"payload_json,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
// #endregion entity
