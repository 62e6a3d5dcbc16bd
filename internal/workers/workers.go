package workers

type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers. Run starts them in
// the order given.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
