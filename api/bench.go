// Package api defines the bench that drives stimulus through the unit under
// test and ships the captured responses to a checker.
package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/palu/alu"
	"github.com/sarchlab/palu/core"
	"github.com/sarchlab/palu/stimulus"
)

// Edge offsets within one test case. The drive tasklet waits two edges
// before putting the stimulus on the lines, and the watch tasklet samples
// the outputs four edges later, after both pipeline latencies have elapsed.
const (
	driveEdge  = 2
	sampleEdge = 6
)

// Bench runs test cases against one unit.
type Bench interface {
	sim.Component

	// RegisterUnit hands the bench the unit under test. The bench owns the
	// unit's clock and reset from then on.
	RegisterUnit(unit *core.Core)

	// ConnectChecker tells the bench where to ship captured responses.
	ConnectChecker(dst sim.RemotePort)

	// Feed queues test cases drawn from the given sequence. Queued feeds
	// run strictly in order.
	Feed(seq *stimulus.Sequence, cases int)

	// OutPort returns the port responses leave through.
	OutPort() sim.Port

	// Run resets the unit, runs all queued cases, and returns the first
	// harness fault. Test failures are not faults; the checker tallies
	// them.
	Run() error
}

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

type benchImpl struct {
	*sim.TickingComponent

	unit        *core.Core
	portFactory portFactory
	toChecker   sim.Port
	checkerDst  sim.RemotePort

	feedTasks []*feedTask
	drive     *driveTask
	watch     *watchTask
	pending   *alu.ResponseRecord

	caseID          int
	awaitingVerdict bool
	runErr          error
}

type feedTask struct {
	seq       *stimulus.Sequence
	remaining int
}

func (t *feedTask) isFinished() bool {
	return t.remaining == 0
}

type driveTask struct {
	rec     alu.StimulusRecord
	elapsed int
	driven  bool
}

func (t *driveTask) isFinished() bool {
	return t.driven
}

type watchTask struct {
	rec      alu.StimulusRecord
	elapsed  int
	captured bool
}

func (t *watchTask) isFinished() bool {
	return t.captured
}

// Tick runs the bench for one cycle.
func (b *benchImpl) Tick() (madeProgress bool) {
	madeProgress = b.collectVerdicts() || madeProgress
	madeProgress = b.startCase() || madeProgress
	madeProgress = b.advanceCase() || madeProgress
	madeProgress = b.shipResponse() || madeProgress

	return madeProgress
}

func (b *benchImpl) collectVerdicts() bool {
	madeProgress := false

	for {
		item := b.toChecker.PeekIncoming()
		if item == nil {
			break
		}

		verdict := item.(*alu.VerdictMsg)
		b.toChecker.RetrieveIncoming()
		b.awaitingVerdict = false
		madeProgress = true

		core.Trace("verdict collected",
			"case", verdict.Case, "passed", verdict.Passed)
	}

	return madeProgress
}

// startCase fetches the next stimulus once the previous case has fully
// completed, including the verdict round trip. One fetch per case, ever.
func (b *benchImpl) startCase() bool {
	if b.watch != nil || b.pending != nil || b.awaitingVerdict {
		return false
	}

	if b.runErr != nil || len(b.feedTasks) == 0 {
		return false
	}

	task := b.feedTasks[0]

	rec, err := task.seq.Next()
	if err != nil {
		b.runErr = fmt.Errorf("case %d: %w", b.caseID+1, err)
		b.feedTasks = nil

		return false
	}

	task.remaining--
	b.removeFinishedFeedTasks()

	b.caseID++
	b.drive = &driveTask{rec: rec}
	b.watch = &watchTask{rec: rec}

	core.Trace("case started", "case", b.caseID)

	return true
}

func (b *benchImpl) removeFinishedFeedTasks() {
	for i := len(b.feedTasks) - 1; i >= 0; i-- {
		if b.feedTasks[i].isFinished() {
			b.feedTasks = append(
				b.feedTasks[:i], b.feedTasks[i+1:]...)
		}
	}
}

// advanceCase moves the active case forward by one clock edge. The drive
// tasklet runs before the edge and the watch tasklet after it, so a sample
// at edge N sees every register update up to and including edge N.
func (b *benchImpl) advanceCase() bool {
	if b.watch == nil {
		return false
	}

	if b.drive != nil {
		if b.drive.elapsed == driveEdge {
			b.unit.Drive(b.drive.rec.Lines())
			b.drive.driven = true
		}
		b.drive.elapsed++

		if b.drive.isFinished() {
			b.drive = nil
		}
	}

	b.unit.Step()

	if b.watch.elapsed == sampleEdge {
		b.pending = &alu.ResponseRecord{
			Stimulus: b.watch.rec,
			Result:   b.unit.Output(),
		}
		b.watch.captured = true
	}
	b.watch.elapsed++

	if b.watch.isFinished() {
		b.watch = nil
	}

	return true
}

func (b *benchImpl) shipResponse() bool {
	if b.pending == nil {
		return false
	}

	if !b.toChecker.CanSend() {
		return false
	}

	msg := alu.ResponseMsgBuilder{}.
		WithSrc(b.toChecker.AsRemote()).
		WithDst(b.checkerDst).
		WithCase(b.caseID).
		WithResponse(*b.pending).
		Build()

	err := b.toChecker.Send(msg)
	if err != nil {
		panic("checker cannot handle the response rate")
	}

	b.pending = nil
	b.awaitingVerdict = true

	return true
}

// RegisterUnit hands the bench the unit under test.
func (b *benchImpl) RegisterUnit(unit *core.Core) {
	b.unit = unit
}

// ConnectChecker tells the bench where to ship captured responses.
func (b *benchImpl) ConnectChecker(dst sim.RemotePort) {
	b.checkerDst = dst
}

// Feed queues test cases drawn from seq.
func (b *benchImpl) Feed(seq *stimulus.Sequence, cases int) {
	b.feedTasks = append(b.feedTasks, &feedTask{
		seq:       seq,
		remaining: cases,
	})
}

// OutPort returns the port responses leave through.
func (b *benchImpl) OutPort() sim.Port {
	return b.toChecker
}

// Run applies one reset edge to the unit, runs all queued cases, and
// returns the first harness fault.
func (b *benchImpl) Run() error {
	if b.unit == nil {
		panic("no unit registered")
	}
	if b.checkerDst == "" {
		panic("bench is not connected to a checker")
	}

	b.unit.SetReset(true)
	b.unit.Step()
	b.unit.SetReset(false)

	b.TickNow()

	if err := b.Engine.Run(); err != nil {
		return err
	}

	return b.runErr
}
