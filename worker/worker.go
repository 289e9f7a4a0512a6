// Package worker implements spec.md §5's concurrency model: a single
// logical task processed sequentially in FIFO order, one queue per task
// class, with same-class requests coalesced so only the latest superseded
// request of a class is ever dispatched. Modeled on revid.Revid's
// goroutine-plus-channel shape: a processing routine owned by a
// sync.WaitGroup, fed and drained over channels, errors surfaced on a
// dedicated channel.
package worker

import (
	"sync"

	"github.com/keithcw-dot/press/config"
	"github.com/keithcw-dot/press/logging"
	"github.com/keithcw-dot/press/pipeline"
	"github.com/keithcw-dot/press/raster"
)

// TaskClass is one of the three classes spec.md §5 names: a subsequent
// request in the same class supersedes the prior unsent request.
type TaskClass string

const (
	ClassPreview TaskClass = "preview"
	ClassLoupe   TaskClass = "loupe"
	ClassExport  TaskClass = "export"
)

// Request is one pipeline run request, keyed by TaskId so a Response can be
// matched back to the request that produced it (spec.md §6's "Ordering
// guarantee").
type Request struct {
	TaskID string
	Class  TaskClass
	Source raster.Image
	Active config.ActiveSet
	Config config.Config
	Options pipeline.Options
}

// Response carries either a finished raster or the error that aborted the
// run, tagged with the TaskId of the request that produced it.
type Response struct {
	TaskID string
	Result raster.Image
	Err    error
}

// Worker processes Requests sequentially in FIFO order on a single
// goroutine, per spec.md §5: "there is no preemption and no cancellation
// mid-run." Submissions queue in a mutex-guarded pending map with a FIFO
// list of classes; Submit coalesces same-class requests itself (a class's
// prior un-started request is dropped in favor of the newest one, which
// keeps the class's place in the queue).
type Worker struct {
	logger logging.Logger

	mu      sync.Mutex
	pending map[TaskClass]*Request // requests not yet picked up by the run loop
	order   []TaskClass            // FIFO order of distinct pending classes

	reqCh  chan struct{} // signals the run loop that pending has new work
	respCh chan Response
	stop   chan struct{}
	wg     sync.WaitGroup
}

// New builds a Worker. Call Start to begin processing and Stop to shut
// down; Responses arrive on the channel returned by Responses.
func New(logger logging.Logger) *Worker {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Worker{
		logger:  logger,
		pending: make(map[TaskClass]*Request),
		reqCh:   make(chan struct{}, 1),
		respCh:  make(chan Response),
	}
}

// Responses returns the channel on which finished runs are delivered, in
// the order they complete.
func (w *Worker) Responses() <-chan Response { return w.respCh }

// Start launches the run loop.
func (w *Worker) Start() {
	w.stop = make(chan struct{})
	w.wg.Add(1)
	go w.run()
}

// Stop signals the run loop to finish after its current task (if any) and
// waits for it to exit.
func (w *Worker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// Submit enqueues a request. If a request of the same class is already
// queued and not yet picked up, it is replaced (debounce/coalescing per
// spec.md §5); a request already in flight is never interrupted.
func (w *Worker) Submit(req Request) {
	w.mu.Lock()
	if _, exists := w.pending[req.Class]; !exists {
		w.order = append(w.order, req.Class)
	}
	w.pending[req.Class] = &req
	w.mu.Unlock()

	select {
	case w.reqCh <- struct{}{}:
	default:
	}
}

func (w *Worker) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stop:
			return
		case <-w.reqCh:
			for {
				req, ok := w.next()
				if !ok {
					break
				}
				w.logger.Debug("pipeline run starting", "taskId", req.TaskID, "class", string(req.Class))
				result, err := pipeline.Run(req.Source, req.Active, req.Config, req.Options)
				if err != nil {
					w.logger.Error("pipeline run failed", "taskId", req.TaskID, "error", err.Error())
				} else {
					w.logger.Info("pipeline run complete", "taskId", req.TaskID)
				}
				select {
				case w.respCh <- Response{TaskID: req.TaskID, Result: result, Err: err}:
				case <-w.stop:
					return
				}
			}
		}
	}
}

// next pops the oldest pending class's request, or reports false if the
// queue is empty.
func (w *Worker) next() (Request, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.order) > 0 {
		class := w.order[0]
		w.order = w.order[1:]
		req, ok := w.pending[class]
		if !ok {
			continue
		}
		delete(w.pending, class)
		return *req, true
	}
	return Request{}, false
}
