package clients

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/mercadolibre/golang-restclient/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client performs raw calls against the build platform api.
// It never retries: a repeated workflow dispatch is a visible side effect.
type Client interface {
	Get(url string) Response
	Post(url string, body interface{}) Response
	Put(url string, body interface{}) Response
	Delete(url string) Response
}

// Response exposes the raw status and body of a call
type Response interface {
	Err() error
	StatusCode() int
	Status() string
	Bytes() []byte
	String() string
}

type client struct {
	RestClient *rest.RequestBuilder
}

func (c *client) Get(url string) Response {
	return &response{c.RestClient.Get(url)}
}

func (c *client) Post(url string, body interface{}) Response {
	b, err := encodeBody(body)
	if err != nil {
		return &response{&rest.Response{Err: err}}
	}
	return &response{c.RestClient.Post(url, b)}
}

func (c *client) Put(url string, body interface{}) Response {
	b, err := encodeBody(body)
	if err != nil {
		return &response{&rest.Response{Err: err}}
	}
	return &response{c.RestClient.Put(url, b)}
}

// encodeBody marshals the request body here since the rest client runs in BYTES mode.
// In JSON mode it overwrites the Accept header with application/json.
func encodeBody(body interface{}) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

func (c *client) Delete(url string) Response {
	return &response{c.RestClient.Delete(url)}
}

type response struct {
	restResponse *rest.Response
}

func (r *response) Err() error {
	if r.restResponse == nil {
		return nil
	}
	return r.restResponse.Err
}

func (r *response) StatusCode() int {
	if r.restResponse == nil || r.restResponse.Response == nil {
		return 0
	}
	return r.restResponse.StatusCode
}

// Status returns the status text of the response, e.g. "Not Found"
func (r *response) Status() string {
	return http.StatusText(r.StatusCode())
}

func (r *response) Bytes() []byte {
	if r.restResponse == nil || r.restResponse.Response == nil {
		return nil
	}
	return r.restResponse.Bytes()
}

func (r *response) String() string {
	return string(r.Bytes())
}
