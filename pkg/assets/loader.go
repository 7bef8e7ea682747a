package assets

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/golangdaddy/crossing/pkg/log"
	"github.com/golangdaddy/crossing/pkg/world"
)

// DecodeFunc reads the model stored at path.
type DecodeFunc func(path string) (world.Model, error)

// Result is the outcome of one request.
type Result struct {
	Request world.Request
	Model   world.Model
	Err     error
}

// Loader fetches decorations in the background. Results are queued until
// the update loop drains them, so the scene is only touched from one
// goroutine.
type Loader struct {
	dir     string
	decode  DecodeFunc
	results chan Result
	wg      sync.WaitGroup
}

func NewLoader(dir string, decode DecodeFunc) *Loader {
	return &Loader{
		dir:     dir,
		decode:  decode,
		results: make(chan Result, 32),
	}
}

// Load starts one goroutine per request. Cancelling ctx abandons results
// that have not been queued yet.
func (l *Loader) Load(ctx context.Context, reqs []world.Request) {
	for _, r := range reqs {
		l.wg.Add(1)
		go func(r world.Request) {
			defer l.wg.Done()
			res := Result{Request: r}
			path := filepath.Join(l.dir, r.Decoration.Asset)
			res.Model, res.Err = l.decode(path)
			if res.Err != nil {
				res.Err = fmt.Errorf("decoration %s: %w", r.Decoration.Name, res.Err)
			}
			select {
			case l.results <- res:
			case <-ctx.Done():
				log.Logger.Debug("decoration load abandoned", zap.String("asset", path))
			}
		}(r)
	}
}

// Drain passes every queued result to fn without blocking and returns how
// many were handled.
func (l *Loader) Drain(fn func(Result)) int {
	n := 0
	for {
		select {
		case r := <-l.results:
			fn(r)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every started load has queued its result or been
// abandoned.
func (l *Loader) Wait() {
	l.wg.Wait()
}
