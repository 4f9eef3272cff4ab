package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UntitledLabel is shown for results whose title is missing
const UntitledLabel = "(untitled)"

// ItemID identifies a result. The endpoint may send it as a string or a number.
type ItemID string

// UnmarshalJSON accepts both JSON strings and numbers
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ItemID(n.String())
	return nil
}

// ResultItem is a single search result as returned by the remote endpoint
type ResultItem struct {
	ID          ItemID `json:"id,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"` // HTML fragment, never rendered as markup
}

// resultItemFields avoids recursion in UnmarshalJSON
type resultItemFields ResultItem

// UnmarshalJSON decodes an object, or a bare string as a title-only item.
// Older history entries were stored as plain strings.
func (r *ResultItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var title string
		if err := json.Unmarshal(data, &title); err != nil {
			return err
		}
		*r = ResultItem{Title: title}
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("result item must be an object, got %q", preview(data))
	}
	var f resultItemFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = ResultItem(f)
	return nil
}

// DisplayTitle returns the title, or a placeholder when it is empty
func (r ResultItem) DisplayTitle() string {
	if r.Title == "" {
		return UntitledLabel
	}
	return r.Title
}

// DecodeResults decodes a JSON array of results. Entries that are not objects
// are skipped and counted in dropped. The array itself must be well formed.
func DecodeResults(data []byte) (items []ResultItem, dropped int, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("response is not a JSON array: %w", err)
	}

	items = make([]ResultItem, 0, len(raw))
	for _, entry := range raw {
		trimmed := bytes.TrimSpace(entry)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			dropped++
			continue
		}
		var item ResultItem
		if err := json.Unmarshal(trimmed, &item); err != nil {
			dropped++
			continue
		}
		items = append(items, item)
	}
	return items, dropped, nil
}

// Titles returns the titles of items in order
func Titles(items []ResultItem) []string {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return titles
}

func preview(data []byte) string {
	if len(data) > 32 {
		return string(data[:32]) + "..."
	}
	return string(data)
}
