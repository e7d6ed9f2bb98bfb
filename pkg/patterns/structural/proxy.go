package structural

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// server handles requests; the proxy and the real application share it
type server interface {
	HandleRequest(w io.Writer, path string) int
}

// application is the real subject
type application struct{}

func (a *application) HandleRequest(w io.Writer, path string) int {
	fmt.Fprintf(w, "application serves %s\n", path)
	return 200
}

// rateLimitProxy fronts the application and caps requests per path
type rateLimitProxy struct {
	app      server
	maxHits  int
	hitCount map[string]int
}

func newRateLimitProxy(maxHits int) *rateLimitProxy {
	return &rateLimitProxy{
		app:      &application{},
		maxHits:  maxHits,
		hitCount: make(map[string]int),
	}
}

func (p *rateLimitProxy) HandleRequest(w io.Writer, path string) int {
	p.hitCount[path]++
	if p.hitCount[path] > p.maxHits {
		fmt.Fprintf(w, "proxy rejects %s: rate limit exceeded\n", path)
		return 403
	}
	return p.app.HandleRequest(w, path)
}

// NewProxyDemo creates the proxy demo
func NewProxyDemo() catalog.Demo {
	return catalog.New(
		"proxy",
		catalog.GroupStructural,
		"Puts a rate-limiting proxy in front of the real application server",
		func(w io.Writer) {
			var srv server = newRateLimitProxy(2)

			for i := 0; i < 3; i++ {
				status := srv.HandleRequest(w, "/app/status")
				fmt.Fprintf(w, "status: %d\n", status)
			}
		},
	)
}
