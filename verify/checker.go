package verify

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/palu/alu"
	"github.com/sarchlab/palu/core"
)

// HookPosVerdict marks when the checker scores one case.
var HookPosVerdict = &sim.HookPos{Name: "Checker Verdict"}

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

// Checker receives captured responses, scores them, and answers each one
// with a verdict. The verdict reply is what paces the bench; the bench does
// not start the next case until the reply arrives.
type Checker struct {
	*sim.TickingComponent

	judge       Judge
	portFactory portFactory
	fromUnit    sim.Port

	verdicts []Verdict
}

// Tick runs the checker for one cycle.
func (c *Checker) Tick() (madeProgress bool) {
	for {
		item := c.fromUnit.PeekIncoming()
		if item == nil {
			break
		}

		if !c.fromUnit.CanSend() {
			break
		}

		resp := c.fromUnit.RetrieveIncoming().(*alu.ResponseMsg)
		verdict := c.judge.Score(resp.Case, resp.Response)
		c.verdicts = append(c.verdicts, verdict)

		core.Trace("case scored",
			"case", verdict.Case,
			"feature", verdict.Feature,
			"passed", verdict.Passed)

		hookCtx := sim.HookCtx{
			Domain: c,
			Pos:    HookPosVerdict,
			Item:   &verdict,
		}
		c.InvokeHook(hookCtx)

		reply := alu.VerdictMsgBuilder{}.
			WithSrc(c.fromUnit.AsRemote()).
			WithDst(resp.Meta().Src).
			WithCase(verdict.Case).
			WithPassed(verdict.Passed).
			Build()

		err := c.fromUnit.Send(reply)
		if err != nil {
			panic("bench cannot handle the verdict rate")
		}

		madeProgress = true
	}

	return madeProgress
}

// InPort returns the port responses arrive on.
func (c *Checker) InPort() sim.Port {
	return c.fromUnit
}

// Verdicts returns the scored cases in arrival order.
func (c *Checker) Verdicts() []Verdict {
	return c.verdicts
}

// Tally summarizes the scored cases.
func (c *Checker) Tally() Tally {
	t := Tally{Total: len(c.verdicts)}

	for _, v := range c.verdicts {
		if v.Passed {
			t.Passed++
		} else {
			t.Failed++
		}
	}

	return t
}
