package clouddatabases

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/schema"
	"github.com/juju/errors"
)

const (
	headerAccept      = "Accept"
	headerContentType = "Content-Type"
	mimeJSON          = "application/json"
)

// traceHeaders are checked in order for an id to put into ServiceError.
var traceHeaders = []string{"X-Request-Id", "X-Correlation-Id", "X-Debug-Trace-Id"}

var queryEncoder = schema.NewEncoder()

// DetailedResponse is returned by every operation next to its typed result.
type DetailedResponse struct {
	StatusCode int
	Headers    http.Header
	// Result is the typed result of the operation, or the decoded JSON body
	// when the operation has no typed result.
	Result    interface{}
	RawResult []byte
}

// GetResultAsMap decodes the raw body into a generic mapping.
func (r *DetailedResponse) GetResultAsMap() (map[string]interface{}, bool) {
	if r == nil || len(r.RawResult) == 0 {
		return nil, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(r.RawResult, &m); err != nil {
		return nil, false
	}
	return m, true
}

// apiRequest describes one HTTP request before it is handed to resty.
type apiRequest struct {
	operationID  string
	method       string
	pathTemplate string
	pathParams   map[string]string
	query        url.Values
	header       http.Header
	body         interface{}
}

func newAPIRequest(operationID, method, pathTemplate string, pathParams map[string]string) *apiRequest {
	return &apiRequest{
		operationID:  operationID,
		method:       method,
		pathTemplate: pathTemplate,
		pathParams:   pathParams,
		query:        url.Values{},
		header:       http.Header{},
	}
}

// withQuery encodes the non-empty fields of a schema-tagged struct.
func (r *apiRequest) withQuery(q interface{}) (*apiRequest, error) {
	if err := queryEncoder.Encode(q, r.query); err != nil {
		return nil, errors.Annotatef(err, "encoding query of %s", r.operationID)
	}
	return r, nil
}

func (r *apiRequest) withBody(body interface{}) *apiRequest {
	r.body = body
	return r
}

// withHeaders merges headers on top of what is already set.
func (r *apiRequest) withHeaders(headers map[string]string) *apiRequest {
	for k, v := range headers {
		r.header.Set(k, v)
	}
	return r
}

// resolvePath substitutes every {name} in template with the escaped value of
// the matching path parameter. An empty or missing value is an ArgumentError.
func resolvePath(template string, params map[string]string) (string, error) {
	var b strings.Builder
	rest := template
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", errors.NotValidf("path template %q", template)
		}
		name := rest[start+1 : start+end]
		value := params[name]
		if value == "" {
			return "", &ArgumentError{Name: name}
		}
		b.WriteString(rest[:start])
		b.WriteString(url.PathEscape(value))
		rest = rest[start+end+1:]
	}
}

// build resolves the full URL and the final header set of the request.
func (r *apiRequest) build(serviceURL string, defaultHeaders http.Header) (string, http.Header, []byte, error) {
	path, err := resolvePath(r.pathTemplate, r.pathParams)
	if err != nil {
		return "", nil, nil, err
	}
	fullURL := strings.TrimSuffix(serviceURL, "/") + path
	if len(r.query) > 0 {
		fullURL += "?" + r.query.Encode()
	}

	header := http.Header{}
	for k, v := range GetSdkHeaders(ServiceName, ServiceVersion, r.operationID) {
		header.Set(k, v)
	}
	header.Set(headerAccept, mimeJSON)

	var payload []byte
	if r.body != nil {
		payload, err = json.Marshal(r.body)
		if err != nil {
			return "", nil, nil, errors.Annotatef(err, "encoding body of %s", r.operationID)
		}
		header.Set(headerContentType, mimeJSON)
	}
	for k, vs := range defaultHeaders {
		header[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	for k, vs := range r.header {
		header[k] = append([]string(nil), vs...)
	}
	return fullURL, header, payload, nil
}

// doRequest sends req and, on a 2xx response, decodes the body into result
// when result is not nil. Non-2xx responses are returned as *ServiceError.
func (c *CloudDatabasesV5) doRequest(ctx context.Context, req *apiRequest, result interface{}) (*DetailedResponse, error) {
	fullURL, header, payload, err := req.build(c.serviceURL, c.defaultHeaders)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	request := c.client.R().SetContext(ctx)
	request.Header = header

	// if payload is not nil, we'll put it on body
	if payload != nil {
		request.SetBody(payload)
	}

	// execute the request
	resp, err := request.Execute(req.method, fullURL)
	if c.debug {
		c.logger.Debugf("payload: %s", payload)
		c.logger.Debugf("Request: method %s, url %s, response %s", req.method, fullURL, resp)
	}
	if err != nil {
		return nil, errors.Trace(err)
	}

	detailed := &DetailedResponse{
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
		RawResult:  resp.Body(),
	}

	// if the request return a non-2xx response, wrap it with error
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		if m, ok := detailed.GetResultAsMap(); ok {
			detailed.Result = m
		}
		return detailed, newServiceError(req.method, resp, detailed)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return detailed, nil
	}
	if result == nil {
		var generic interface{}
		if err := json.Unmarshal(body, &generic); err == nil {
			detailed.Result = generic
		}
		return detailed, nil
	}
	if err := jsonUnmarshal(body, result); err != nil {
		return detailed, err
	}
	detailed.Result = result
	return detailed, nil
}

func newServiceError(method string, resp *resty.Response, detailed *DetailedResponse) *ServiceError {
	serviceErr := &ServiceError{
		StatusCode: resp.StatusCode(),
		Method:     method,
		Body:       resp.Body(),
		Response:   detailed,
	}
	if resp.Request != nil && resp.Request.RawRequest != nil {
		serviceErr.Path = resp.Request.RawRequest.URL.Path
	}
	for _, h := range traceHeaders {
		if id := resp.Header().Get(h); id != "" {
			serviceErr.TraceID = id
			break
		}
	}
	return serviceErr
}

// NewTransportWithAgent returns a new http.RoundTripper that sets the
// User-Agent header on every request.
func NewTransportWithAgent(inner http.RoundTripper, userAgent string) http.RoundTripper {
	return &UserAgentTransport{
		inner: inner,
		Agent: userAgent,
	}
}

type UserAgentTransport struct {
	inner http.RoundTripper
	Agent string
}

func (ug *UserAgentTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r.Header.Set("User-Agent", ug.Agent)
	return ug.inner.RoundTrip(r)
}
