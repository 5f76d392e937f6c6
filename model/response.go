package model

import (
	"encoding/json"
	"fmt"
)

const (
	keyFile      = "file"
	keyCommitURL = "commit_url"
	keyError     = "error"
)

// Response is the JSON document returned by the corrections endpoint.
type Response struct {
	// File is the server assigned path of the stored corrections.
	File string `json:"file,omitempty"`
	// CommitURL links to the reviewable change, when the server made one.
	CommitURL string `json:"commit_url,omitempty"`
	// Error carries the server message on rejection.
	Error string `json:"error,omitempty"`

	StatusCode int             `json:"-"`
	Raw        json.RawMessage `json:"-"`
}

// HasCommitURL reports whether the response offers a reviewable link.
func (r *Response) HasCommitURL() bool {
	return r != nil && r.CommitURL != ""
}

// DecodeResponse parses an endpoint body. Any valid JSON document is accepted:
// a non-object body yields an empty response, and non-string file or error
// values are kept as their JSON text. A commit_url that is not a string is
// ignored since it cannot be opened.
func DecodeResponse(data []byte) (*Response, error) {
	var document interface{}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}
	ret := &Response{Raw: data}
	fields, ok := document.(map[string]interface{})
	if !ok {
		return ret, nil
	}
	ret.File = text(fields[keyFile])
	ret.Error = text(fields[keyError])
	if link, ok := fields[keyCommitURL].(string); ok {
		ret.CommitURL = link
	}
	return ret, nil
}

func text(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}
