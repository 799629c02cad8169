package alu

import "github.com/sarchlab/akita/v4/sim"

// ResponseMsg carries one captured response from the bench to the checker.
type ResponseMsg struct {
	sim.MsgMeta

	Case     int
	Response ResponseRecord
}

// Meta returns the meta data of the msg.
func (m *ResponseMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *ResponseMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// ResponseMsgBuilder is a factory for ResponseMsg.
type ResponseMsgBuilder struct {
	src, dst sim.RemotePort
	caseID   int
	response ResponseRecord
}

// WithSrc sets the source port of the msg.
func (b ResponseMsgBuilder) WithSrc(src sim.RemotePort) ResponseMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ResponseMsgBuilder) WithDst(dst sim.RemotePort) ResponseMsgBuilder {
	b.dst = dst
	return b
}

// WithCase sets the test-case index the response belongs to.
func (b ResponseMsgBuilder) WithCase(caseID int) ResponseMsgBuilder {
	b.caseID = caseID
	return b
}

// WithResponse sets the captured response.
func (b ResponseMsgBuilder) WithResponse(r ResponseRecord) ResponseMsgBuilder {
	b.response = r
	return b
}

// Build creates a ResponseMsg.
func (b ResponseMsgBuilder) Build() *ResponseMsg {
	return &ResponseMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Case:     b.caseID,
		Response: b.response,
	}
}

// VerdictMsg carries the checker's verdict for one case back to the bench.
type VerdictMsg struct {
	sim.MsgMeta

	Case   int
	Passed bool
}

// Meta returns the meta data of the msg.
func (m *VerdictMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *VerdictMsg) Clone() sim.Msg {
	cloneMsg := *m
	cloneMsg.ID = sim.GetIDGenerator().Generate()

	return &cloneMsg
}

// VerdictMsgBuilder is a factory for VerdictMsg.
type VerdictMsgBuilder struct {
	src, dst sim.RemotePort
	caseID   int
	passed   bool
}

// WithSrc sets the source port of the msg.
func (b VerdictMsgBuilder) WithSrc(src sim.RemotePort) VerdictMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b VerdictMsgBuilder) WithDst(dst sim.RemotePort) VerdictMsgBuilder {
	b.dst = dst
	return b
}

// WithCase sets the test-case index the verdict belongs to.
func (b VerdictMsgBuilder) WithCase(caseID int) VerdictMsgBuilder {
	b.caseID = caseID
	return b
}

// WithPassed sets the verdict.
func (b VerdictMsgBuilder) WithPassed(passed bool) VerdictMsgBuilder {
	b.passed = passed
	return b
}

// Build creates a VerdictMsg.
func (b VerdictMsgBuilder) Build() *VerdictMsg {
	return &VerdictMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Case:   b.caseID,
		Passed: b.passed,
	}
}
