// Implements the ReadyQueue, which holds processes waiting for the CPU.
// Processes are enqueued on admission and re-enqueued after an expired quantum.

package sim

import "fmt"

// ReadyQueue is a FIFO queue of processes waiting for their next turn on the CPU.
type ReadyQueue struct {
	queue []*Process // FIFO queue of processes
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	rq.queue = append(rq.queue, p)
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return p
}

// IDs returns the queued process IDs front to back.
func (rq *ReadyQueue) IDs() []string {
	ids := make([]string, len(rq.queue))
	for i, p := range rq.queue {
		ids[i] = p.ID
	}
	return ids
}

// admitter releases processes into a ReadyQueue in arrival order.
// procs must already be sorted by (ArrivalTime, ID).
type admitter struct {
	procs []*Process
	next  int
}

// admit enqueues every unadmitted process with ArrivalTime <= clock.
func (a *admitter) admit(rq *ReadyQueue, clock int64) int {
	n := 0
	for a.next < len(a.procs) && a.procs[a.next].ArrivalTime <= clock {
		rq.Enqueue(a.procs[a.next])
		a.next++
		n++
	}
	return n
}

// pending reports whether unadmitted processes remain.
func (a *admitter) pending() bool {
	return a.next < len(a.procs)
}

// nextArrival returns the arrival time of the next unadmitted process.
func (a *admitter) nextArrival() int64 {
	if !a.pending() {
		panic(fmt.Sprintf("nextArrival: all %d processes admitted", len(a.procs)))
	}
	return a.procs[a.next].ArrivalTime
}
