package status

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"movik.bot/telegram-bot/internal/bot/reply/replytest"
	"movik.bot/telegram-bot/internal/metrics"
)

type fakeProber struct {
	up    bool
	err   error
	calls int
}

func (f *fakeProber) Probe(context.Context) (bool, error) {
	f.calls++
	return f.up, f.err
}

type fakeOverride bool

func (o fakeOverride) SiteOn() bool { return bool(o) }

func TestCheck_OverrideOffSkipsProbe(t *testing.T) {
	p := &fakeProber{up: true}
	svc := NewService(p, fakeOverride(false))

	assert.False(t, svc.Check(context.Background()))
	assert.Zero(t, p.calls)
}

func TestCheck_UsesProbe(t *testing.T) {
	p := &fakeProber{up: true}
	svc := NewService(p, fakeOverride(true))
	assert.True(t, svc.Check(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SiteReachable))

	p.up, p.err = false, errors.New("timeout")
	assert.False(t, svc.Check(context.Background()))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.SiteReachable))
}

func TestHandleStatus(t *testing.T) {
	sender := replytest.New()
	h := NewHandler(NewService(&fakeProber{up: true}, fakeOverride(true)), sender)
	h.HandleStatus(context.Background(), 5)
	assert.Equal(t, upText, sender.Last().Text)

	h = NewHandler(NewService(&fakeProber{up: true}, fakeOverride(false)), sender)
	h.HandleStatus(context.Background(), 5)
	assert.Equal(t, downText, sender.Last().Text)
}

func serveInmemory(t *testing.T, code int) *HTTPProber {
	return serveHandler(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(code)
	})
}

func serveHandler(t *testing.T, handler fasthttp.RequestHandler) *HTTPProber {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		_ = fasthttp.Serve(ln, handler)
	}()

	p := NewHTTPProber("http://site.test/", time.Second)
	p.client.Dial = func(string) (net.Conn, error) { return ln.Dial() }
	return p
}

func TestHTTPProber(t *testing.T) {
	ok, err := serveInmemory(t, fasthttp.StatusOK).Probe(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = serveInmemory(t, fasthttp.StatusServiceUnavailable).Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPProber_FollowsRedirect(t *testing.T) {
	p := serveHandler(t, func(ctx *fasthttp.RequestCtx) {
		if string(ctx.Path()) == "/home" {
			ctx.SetStatusCode(fasthttp.StatusOK)
			return
		}
		ctx.Redirect("/home", fasthttp.StatusMovedPermanently)
	})

	ok, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHTTPProber_RedirectLoop(t *testing.T) {
	p := serveHandler(t, func(ctx *fasthttp.RequestCtx) {
		ctx.Redirect("/", fasthttp.StatusFound)
	})

	ok, err := p.Probe(context.Background())
	assert.False(t, ok)
	assert.ErrorIs(t, err, fasthttp.ErrTooManyRedirects)
}

func TestHTTPProber_ExpiredContext(t *testing.T) {
	p := NewHTTPProber("http://site.test/", time.Second)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	ok, err := p.Probe(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
