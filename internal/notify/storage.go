package notify

import "encoding/json"

// StorageChange is the payload of a storage event: which list changed and,
// when known, which record.
type StorageChange struct {
	Key     string `json:"key"`
	LeaveID string `json:"leave_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Action  string `json:"action"`
}

func NewStorageEvent(change StorageChange) Event {
	data, _ := json.Marshal(change)
	return Event{EventType: EventStorage, Data: string(data)}
}
