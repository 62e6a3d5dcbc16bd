package store

import (
	"encoding/json"
	"fmt"
)

// Storage key layout. One key for the session, one key per user and concern.
const sessionKey = "session"

func notesKey(userID int64) string { return fmt.Sprintf("notes_%d", userID) }

func trashKey(userID int64) string { return fmt.Sprintf("trash_notes_%d", userID) }

func remindersKey(userID int64) string { return fmt.Sprintf("reminders_%d", userID) }

// getJSON decodes the value under key into out. Returns false when the key is
// absent, leaving out untouched.
func getJSON[T any](kv KeyValue, key string, out *T) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode value under %q: %w", key, err)
	}
	return true, nil
}

func setJSON(kv KeyValue, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value under %q: %w", key, err)
	}
	return kv.Set(key, raw)
}
