// Package script runs entity behavior as coroutine-style tasks. A task is a
// plain Go function that blocks on ctx.Wait(frames); the runner advances
// every task exactly once per tick, in start order. Tasks live and die with
// their entity: destroying the entity terminates its tasks in the same call.
//
// The handshake is strictly sequential. The runner resumes a task and then
// blocks until the task either yields or returns, so only one goroutine
// ever touches the world at a time and ticks stay deterministic.
package script

import (
	"errors"

	"go.uber.org/zap"
)

// errKilled unwinds a task body when its runner terminates it. It must
// never be recovered inside a task.
var errKilled = errors.New("script task killed")

type task struct {
	name    string
	resume  chan struct{}
	yielded chan int
	done    chan struct{}
	kill    chan struct{}

	// frames to skip before the next resume
	wait   int
	dead   bool
	killed bool
}

// Runner owns the tasks of one entity. It implements ecs.Terminator so the
// world can stop everything on destroy.
type Runner struct {
	tasks   []*task
	current *task
	log     *zap.Logger
}

// NewRunner creates an empty task runner.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Start launches fn as a new task. The body does not run yet; it first
// executes on the next Tick. Tasks started by a running task join the end
// of the order and are first resumed on the following tick.
func (r *Runner) Start(name string, ctx *Context, fn func(*Context)) {
	if r == nil || fn == nil {
		return
	}
	t := &task{
		name:    name,
		resume:  make(chan struct{}),
		yielded: make(chan int, 1),
		done:    make(chan struct{}),
		kill:    make(chan struct{}),
	}
	if ctx != nil {
		ctx = ctx.withTask(t)
	}
	r.tasks = append(r.tasks, t)

	go func() {
		defer close(t.done)
		defer func() {
			rec := recover()
			if rec == nil || rec == errKilled { //nolint:errorlint
				return
			}
			r.log.Error("script task panicked",
				zap.String("task", t.name),
				zap.Any("panic", rec))
		}()
		select {
		case <-t.resume:
		case <-t.kill:
			panic(errKilled)
		}
		fn(ctx)
	}()
}

// Tick advances every live task by one frame. A task whose wait has not
// expired just counts down; otherwise it runs until its next yield or until
// it returns. New tasks started during the tick are not advanced until the
// next one.
func (r *Runner) Tick() {
	if r == nil {
		return
	}
	n := len(r.tasks)
	for i := 0; i < n; i++ {
		t := r.tasks[i]
		if t.dead {
			continue
		}
		if t.wait > 0 {
			t.wait--
			continue
		}

		r.current = t
		select {
		case t.resume <- struct{}{}:
		case <-t.done:
			t.dead = true
			r.current = nil
			continue
		}
		select {
		case frames := <-t.yielded:
			t.wait = frames
		case <-t.done:
			t.dead = true
		}
		r.current = nil
	}
	r.compact()
}

func (r *Runner) compact() {
	live := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.dead {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(r.tasks); i++ {
		r.tasks[i] = nil
	}
	r.tasks = live
}

// TerminateAll kills every task. Parked tasks are unwound synchronously; a
// task that is terminating its own runner keeps running until its next
// Wait, which then unwinds it.
func (r *Runner) TerminateAll() {
	if r == nil {
		return
	}
	for _, t := range r.tasks {
		if t.dead || t.killed {
			continue
		}
		t.killed = true
		close(t.kill)
		if t == r.current {
			continue
		}
		<-t.done
		t.dead = true
	}
}

// Active reports how many tasks have not finished.
func (r *Runner) Active() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, t := range r.tasks {
		if !t.dead {
			count++
		}
	}
	return count
}
