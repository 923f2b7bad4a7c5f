package fetch

import (
	"fmt"
	"io/ioutil"
	"net/http"
)

func errorFromResponse(res http.Response) error {
	defer res.Body.Close()
	if b, err := ioutil.ReadAll(res.Body); err == nil {
		return newStatusError("request failed", res, b)
	}
	return newStatusError("request failed", res, nil)
}

func newStatusError(description string, res http.Response, body []byte) error {
	return &StatusError{
		Description: description,
		StatusCode:  res.StatusCode,
		Status:      res.Status,
		Message:     string(body),
	}
}

// StatusError represents a non-success response from a server.
type StatusError struct {
	Description string
	StatusCode  int
	Status      string
	Message     string
}

func (e *StatusError) Error() string {
	if len(e.Message) > 0 {
		return fmt.Sprintf("%s: status code %d\n%s", e.Description, e.StatusCode, e.Message)
	}
	if len(e.Status) > 0 {
		return fmt.Sprintf("%s: %s", e.Description, e.Status)
	}
	return fmt.Sprintf("%s: status code %d", e.Description, e.StatusCode)
}
