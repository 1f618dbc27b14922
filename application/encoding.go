// Defines functions to decode tree entries files. An entries file is
// a JSON array of records to append into a tree at startup.

package application

import (
	"encoding/json"
	"fmt"
	"os"
)

// An Entry is one record of a tree entries file. The slot it occupies
// is either the explicit Prefix, or, when Prefix is empty, the prefix
// derived from the digest of Key truncated to the tree height. Exactly
// one of the two must be set.
type Entry struct {
	Prefix string `json:"prefix,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value"`
}

// ReadEntriesFile parses the JSON-encoded entries file at path.
func ReadEntriesFile(path string) ([]Entry, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read entries file: %v", err)
	}
	var entries []Entry
	if err := json.Unmarshal(buf, &entries); err != nil {
		return nil, fmt.Errorf("Cannot parse entries file: %v", err)
	}
	for i, e := range entries {
		if (e.Prefix == "") == (e.Key == "") {
			return nil, fmt.Errorf("Entry %d must set exactly one of prefix and key", i)
		}
	}
	return entries, nil
}
