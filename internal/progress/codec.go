package progress

import (
	"encoding/json"
	"fmt"

	"github.com/focusnest/crafternoon/internal/catalog"
)

// Encode renders the persisted layout: a JSON object mapping each completed id to true.
func Encode(s Set) ([]byte, error) {
	doc := make(map[string]bool, len(s))
	for id := range s {
		doc[id] = true
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return data, nil
}

// Decode parses the persisted layout. Entries that are not true or that name an id
// outside the catalog are treated as incomplete. Any parse failure rejects the whole
// document; there is no partial recovery.
func Decode(data []byte) (Set, error) {
	var doc map[string]bool
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	s := make(Set, len(doc))
	for id, done := range doc {
		if done && catalog.Known(id) {
			s[id] = struct{}{}
		}
	}
	return s, nil
}
