// Package status — проверка доступности сайта для /status.
package status

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// Prober проверяет, отвечает ли сайт.
type Prober interface {
	Probe(ctx context.Context) (bool, error)
}

// maxRedirects — сколько переходов по Location допускается за одну проверку.
const maxRedirects = 5

// HTTPProber делает GET-запрос к сайту и идёт по редиректам.
// Доступен = итоговый ответ 2xx.
type HTTPProber struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
}

// NewHTTPProber создаёт проверку для url с ограничением по времени.
func NewHTTPProber(url string, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		client: &fasthttp.Client{
			Name:                "movik-bot",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		url:     url,
		timeout: timeout,
	}
}

func (p *HTTPProber) Probe(ctx context.Context) (bool, error) {
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return false, context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(timeout)
	for i := 0; i <= maxRedirects; i++ {
		if err := p.client.DoDeadline(req, resp, deadline); err != nil {
			return false, fmt.Errorf("probe %s: %w", p.url, err)
		}

		code := resp.StatusCode()
		if !fasthttp.StatusCodeIsRedirect(code) {
			return code >= fasthttp.StatusOK && code < fasthttp.StatusMultipleChoices, nil
		}

		location := resp.Header.Peek(fasthttp.HeaderLocation)
		if len(location) == 0 {
			return false, nil
		}
		// относительный Location разрешается от текущего адреса
		req.URI().UpdateBytes(location)
		resp.Reset()
	}
	return false, fmt.Errorf("probe %s: %w", p.url, fasthttp.ErrTooManyRedirects)
}
