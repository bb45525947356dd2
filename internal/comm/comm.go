// Package comm provides the collective message-passing primitives used by
// the distributed search: point-to-point send/receive between ranked
// workers, broadcast from a root, and a global maximum reduction.
//
// A Pool wires a fixed set of workers together before any computation
// starts; workers are identified by rank in [0, Size). There is no dynamic
// membership and no failure handling: a collective either completes or the
// whole computation is abandoned.
package comm

import "sync"

// Pool connects a fixed number of workers with buffered point-to-point
// mailboxes. One mailbox exists per ordered (sender, receiver) pair, so a
// receiver can wait for a message from a specific peer.
type Pool struct {
	size      int
	mailboxes [][]chan any // mailboxes[receiver][sender]
}

// NewPool creates a pool for the given number of workers.
func NewPool(size int) *Pool {
	if size < 1 {
		panic("comm: pool size must be at least 1")
	}
	boxes := make([][]chan any, size)
	for to := range boxes {
		boxes[to] = make([]chan any, size)
		for from := range boxes[to] {
			boxes[to][from] = make(chan any, 1)
		}
	}
	return &Pool{size: size, mailboxes: boxes}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Run executes body once per worker, each on its own goroutine, and blocks
// until every worker has returned. Each invocation receives the Comm handle
// for its rank.
func (p *Pool) Run(body func(c *Comm)) {
	var wg sync.WaitGroup
	for rank := 0; rank < p.size; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			body(&Comm{rank: rank, pool: p})
		}(rank)
	}
	wg.Wait()
}

// Comm is one worker's handle into the pool.
type Comm struct {
	rank int
	pool *Pool
}

// Rank returns this worker's index in [0, Size).
func (c *Comm) Rank() int {
	return c.rank
}

// Size returns the number of workers in the pool.
func (c *Comm) Size() int {
	return c.pool.size
}

// Send delivers msg to the worker with the given rank. It blocks only when
// a previous message to the same peer has not been received yet.
func (c *Comm) Send(to int, msg any) {
	c.pool.mailboxes[to][c.rank] <- msg
}

// Recv blocks until a message from the given rank arrives and returns it.
func (c *Comm) Recv(from int) any {
	return <-c.pool.mailboxes[c.rank][from]
}

// Broadcast distributes a value from root to every worker. The root passes
// the value to share; other workers' msg argument is ignored. Every caller
// returns the root's value.
func (c *Comm) Broadcast(root int, msg any) any {
	if c.rank == root {
		for peer := 0; peer < c.pool.size; peer++ {
			if peer != root {
				c.Send(peer, msg)
			}
		}
		return msg
	}
	return c.Recv(root)
}

// ReduceMax combines every worker's value with a maximum reduction at root.
// Every worker must call it; the result is meaningful only at the root,
// other workers get their own contribution back.
func (c *Comm) ReduceMax(root int, v float64) float64 {
	if c.rank != root {
		c.Send(root, v)
		return v
	}
	result := v
	for peer := 0; peer < c.pool.size; peer++ {
		if peer == root {
			continue
		}
		if pv := c.Recv(peer).(float64); pv > result {
			result = pv
		}
	}
	return result
}
