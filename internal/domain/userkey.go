package domain

import "fmt"

// UserKey is the composite identity (group scope, user id) used for quota and
// inventory accounting. There is no cross-key aggregation.
type UserKey struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
}

// String renders the key in the persisted "group-user" form.
func (k UserKey) String() string {
	return fmt.Sprintf("%s-%s", k.GroupID, k.UserID)
}
