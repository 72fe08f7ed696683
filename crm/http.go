package crm

import (
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
)

// requestTimeout bounds every outbound CRM call so a slow provider cannot
// stall the intake request indefinitely.
const requestTimeout = 10 * time.Second

var httpClient = &fasthttp.Client{
	ReadTimeout:  requestTimeout,
	WriteTimeout: requestTimeout,
}

// postJSON sends a single JSON POST and reports the response status code.
// Transport failures surface as err; adapters convert both paths into their
// boolean delivery outcome.
func postJSON(url, authorization string, payload interface{}) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", authorization)
	req.SetBody(body)

	if err := httpClient.DoTimeout(req, resp, requestTimeout); err != nil {
		return 0, err
	}
	return resp.StatusCode(), nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
