package systems

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum particle count to use the worker pool.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// solvePhase identifies which phase of the solver a chunk belongs to.
type solvePhase uint8

const (
	phaseReset solvePhase = iota
	phasePairwise
	phaseGrow
)

// rowRange is a chunk of particle indices (reset/grow) or pairwise rows.
// idx selects the scatter buffer during the pairwise phase; the buffer is
// tied to the chunk, not the worker, so results do not depend on which
// worker ran which chunk.
type rowRange struct {
	idx        int
	start, end int
}

// solveChunk is one unit of work dispatched to the pool.
type solveChunk struct {
	phase solvePhase
	rows  rowRange
}

// workerPool runs solver phases across persistent worker goroutines.
type workerPool struct {
	solver     *FieldSolver
	numWorkers int

	workChan chan solveChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

func newWorkerPool(s *FieldSolver) *workerPool {
	return &workerPool{
		solver:     s,
		numWorkers: runtime.GOMAXPROCS(0),
	}
}

// start launches the persistent worker goroutines.
func (p *workerPool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan solveChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *workerPool) stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker processes chunks until stopped.
func (p *workerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.runChunk(chunk)
			p.doneChan <- struct{}{}
		}
	}
}

func (p *workerPool) runChunk(chunk solveChunk) {
	s := p.solver
	switch chunk.phase {
	case phaseReset:
		s.resetRange(chunk.rows.start, chunk.rows.end)
	case phasePairwise:
		s.accumulatePairs(chunk.rows.start, chunk.rows.end, s.deltas[chunk.rows.idx])
	case phaseGrow:
		s.growRange(chunk.rows.start, chunk.rows.end)
	}
}

// runPhase dispatches the chunks of one phase and blocks until every
// chunk has completed. The return is the barrier between solver phases.
func (p *workerPool) runPhase(phase solvePhase, chunks []rowRange) {
	if !p.running {
		p.start()
	}

	dispatched := 0
	for _, rows := range chunks {
		if rows.start >= rows.end {
			continue
		}
		p.workChan <- solveChunk{phase: phase, rows: rows}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}
}

// evenChunks splits [0, n) into up to k equal ranges.
func evenChunks(n, k int) []rowRange {
	chunkSize := (n + k - 1) / k
	chunks := make([]rowRange, 0, k)
	for w := 0; w < k; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		chunks = append(chunks, rowRange{idx: len(chunks), start: start, end: end})
	}
	return chunks
}

// pairChunks splits pairwise rows [0, n) into up to k ranges holding
// roughly equal pair counts. Row i owns pairs (i, j) for j > i, so early
// rows are far more expensive than late ones; equal row counts would
// leave the first worker with most of the work.
func pairChunks(n, k int, chunks []rowRange) []rowRange {
	totalPairs := n * (n - 1) / 2
	perChunk := (totalPairs + k - 1) / k

	start := 0
	pairs := 0
	for i := 0; i < n; i++ {
		pairs += n - 1 - i
		if pairs >= perChunk || i == n-1 {
			chunks = append(chunks, rowRange{idx: len(chunks), start: start, end: i + 1})
			start = i + 1
			pairs = 0
		}
	}
	return chunks
}
