package http

import (
	"encoding/json"

	"github.com/ptero-io/ptero/pkg/ptero"
)

// ErrorClassifier inspects a failed response and may produce a specific
// error. Returning nil declines classification and leaves the response to
// the generic status translation.
type ErrorClassifier interface {
	Classify(resp *Response) error
}

// APIErrorClassifier recognizes the panel's structured error envelope
// ({"errors":[{code,status,detail}]}). Operations with rich validation
// errors pass it per call; everything else keeps the declining default.
type APIErrorClassifier struct{}

// Classify returns a *ptero.ResponseError when the body parses as the
// error envelope with at least one entry, and declines otherwise.
func (APIErrorClassifier) Classify(resp *Response) error {
	var respErr ptero.ResponseError
	if err := json.Unmarshal(resp.Body, &respErr); err != nil {
		return nil
	}

	if len(respErr.Errors) == 0 {
		return nil
	}

	return &respErr
}
