package worker_test

import (
	"testing"

	"github.com/gproatechnology/GProA-Capacitacion-Bancos-Aseguradoras/internal/worker"
)

func TestPool_RunsAllJobs(t *testing.T) {
	pool := worker.NewPool[int](3, 10)

	for i := 0; i < 10; i++ {
		n := i
		pool.Submit("job", func() int { return n * 2 })
	}
	pool.Close()

	sum := 0
	count := 0
	for r := range pool.Results() {
		sum += r.Output
		count++
	}
	if count != 10 {
		t.Errorf("expected 10 results, got %d", count)
	}
	if sum != 90 { // 2*(0+1+...+9)
		t.Errorf("expected sum 90, got %d", sum)
	}
}

func TestPool_ResultsCarryJobID(t *testing.T) {
	pool := worker.NewPool[string](1, 1)
	pool.Submit("alpha", func() string { return "done" })
	pool.Close()

	r := <-pool.Results()
	if r.JobID != "alpha" || r.Output != "done" {
		t.Errorf("unexpected result: %+v", r)
	}
}
