package linq

import (
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/golinq/logger"
)

// TraceLoggerName is the registry name Trace resolves when given no logger.
const TraceLoggerName = "linq"

// Trace logs the start and end of every traversal of r at debug level.
// Each traversal is tagged with a fresh traversal ID and stage, and the
// end event carries the number of elements read and the elapsed time.
// A nil log uses the logger registered under TraceLoggerName, falling back
// to the global logger.
//
// The end event is written when the cursor is closed, so consumers that
// never close their cursor never produce it.
func (r Range[T]) Trace(log *logger.Logger, stage string) Range[T] {
	t := &traceRange[T]{source: r, log: log, stage: stage}
	return Range[T]{open: t.open}
}

type traceRange[T any] struct {
	source Range[T]
	log    *logger.Logger
	stage  string
}

func (t *traceRange[T]) resolveLogger() *logger.Logger {
	if t.log != nil {
		return t.log
	}
	return logger.Get(TraceLoggerName)
}

func (t *traceRange[T]) open() Cursor[T] {
	log := t.resolveLogger()
	c := &traceCursor[T]{
		log:     log,
		stage:   t.stage,
		id:      uuid.NewString(),
		started: time.Now(),
	}
	if log.DebugEnabled() {
		log.Debug("traversal started", logger.Fields(
			logger.FieldStage, c.stage,
			logger.FieldTraversalID, c.id,
		))
	}
	c.prev = t.source.Cursor()
	return c
}

type traceCursor[T any] struct {
	prev    Cursor[T]
	log     *logger.Logger
	stage   string
	id      string
	started time.Time
	yielded int
	closed  bool
}

func (c *traceCursor[T]) Valid() bool { return c.prev.Valid() }
func (c *traceCursor[T]) Value() T    { return c.prev.Value() }

func (c *traceCursor[T]) Next() {
	if !c.prev.Valid() {
		return
	}
	c.yielded++
	c.prev.Next()
}

func (c *traceCursor[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	// The element under the cursor at close time was read too.
	if c.prev.Valid() {
		c.yielded++
	}
	c.prev.Close()
	if c.log.DebugEnabled() {
		c.log.Debug("traversal finished", logger.MergeWithDuration(logger.Fields(
			logger.FieldStage, c.stage,
			logger.FieldTraversalID, c.id,
			logger.FieldYielded, c.yielded,
		), time.Since(c.started)))
	}
}
