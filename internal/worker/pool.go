package worker

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// Job is one fire-and-forget unit of background work
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pool runs jobs from a buffered queue on a fixed set of workers. Jobs are
// best-effort: a failure is logged and the job is gone, nothing is retried
// here. Enqueue never blocks the caller.
type Pool struct {
	queue    chan Job
	size     int
	log      *logrus.Logger
	wg       conc.WaitGroup
	stopOnce sync.Once
}

func NewPool(size, queueSize int, log *logrus.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		queue: make(chan Job, queueSize),
		size:  size,
		log:   log,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.size; i++ {
		p.wg.Go(p.worker)
	}
	p.log.Infof("Worker pool started with %d workers", p.size)
}

// Enqueue hands a job to the pool. A full queue drops the job with an
// error log rather than stalling the webhook request.
func (p *Pool) Enqueue(job Job) {
	select {
	case p.queue <- job:
	default:
		p.log.Errorf("Job queue full, dropping %s", job.Name)
	}
}

// Stop drains the queue and waits for workers to finish. Enqueue must not
// be called after Stop.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
	p.log.Info("Worker pool stopped")
}

func (p *Pool) worker() {
	for job := range p.queue {
		p.run(job)
	}
}

func (p *Pool) run(job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Errorf("Job %s panicked: %v", job.Name, r)
		}
	}()

	if err := job.Run(context.Background()); err != nil {
		p.log.Errorf("Job %s failed: %v", job.Name, err)
	}
}
