package strapi

import "fmt"

// StatusError reports a response status outside the accepted range.
type StatusError struct {
	Status int
	Url    string
}

func (self StatusError) Error() string {
	return fmt.Sprintf("Unexpected status %d from %s", self.Status, self.Url)
}

// RetriesExceededError reports that every attempt to fetch a url
// failed. Url carries the request url without its query string.
type RetriesExceededError struct {
	Url string
	Err error
}

func (self RetriesExceededError) Error() string {
	return fmt.Sprintf("Exceeded retries for %s (last error: %s)", self.Url, self.Err)
}

func (self RetriesExceededError) Unwrap() error {
	return self.Err
}
