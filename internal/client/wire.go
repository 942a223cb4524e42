package client

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hireplan/hireplan/internal/schemas"
	"github.com/hireplan/hireplan/internal/types"
)

// marshalPayload serializes a posting into the wire payload and checks it
// against the embedded wire schema. A schema failure here means the model
// and the schema have drifted apart or the posting bypassed validation; the
// request is never issued.
func marshalPayload(posting *types.JobPosting) ([]byte, error) {
	if posting == nil {
		return nil, &Error{Message: "posting is required"}
	}

	payload, err := json.Marshal(posting)
	if err != nil {
		return nil, &Error{Message: "failed to serialize posting", Cause: err}
	}

	if err := schemas.ValidatePayload(payload); err != nil {
		return nil, fmt.Errorf("posting rejected by wire schema: %w", err)
	}

	return payload, nil
}

// decodeJob parses a posting record from an API response. The record decodes
// through the same value types used for authoring, so a fetched posting
// round-trips field-for-field.
func decodeJob(resp *http.Response) (*types.JobPosting, error) {
	var posting types.JobPosting
	if err := json.NewDecoder(resp.Body).Decode(&posting); err != nil {
		return nil, &Error{URL: resp.Request.URL.String(), Message: "failed to decode job record", Cause: err}
	}
	return &posting, nil
}

// decodePage parses a job listing page from an API response.
func decodePage(resp *http.Response) (*JobPage, error) {
	var page JobPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, &Error{URL: resp.Request.URL.String(), Message: "failed to decode job listing", Cause: err}
	}
	return &page, nil
}
