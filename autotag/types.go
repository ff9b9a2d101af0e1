// Package autotag implements the tagging pipeline: build a prompt from a
// batch of record metadata, call the selected LLM provider, normalize the
// returned suggestions, let the user edit them, and apply the result to the
// record store.
package autotag

// RecordMetadata is a read-only snapshot of one bibliographic record, taken
// at the moment a run is invoked. It is immutable for the duration of the
// run; the record store remains the sole owner of the persistent record.
type RecordMetadata struct {
	Key         string
	ItemType    string
	Title       string
	Creators    []string
	Publication string
	Date        string
	Tags        []string
	Abstract    string
}

// TagSuggestion is a provider's proposed tag list for one record. After
// normalization the tags contain no empty strings and no case-insensitive
// duplicates.
type TagSuggestion struct {
	RecordKey string
	Tags      []string
}
