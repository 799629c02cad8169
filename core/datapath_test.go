package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/palu/alu"
	"github.com/sarchlab/palu/core"
)

var _ = Describe("Datapath", func() {
	var (
		spec  alu.Spec
		table alu.OpcodeTable
	)

	BeforeEach(func() {
		spec = alu.DefaultSpec()
		table = alu.DefaultTable()
	})

	arith := func(
		v alu.Validity,
		cmd, a, b uint64,
		cin bool,
	) alu.ResultRecord {
		return core.Evaluate(spec, table, alu.Lines{
			Validity:    v,
			OperandA:    a,
			OperandB:    b,
			Command:     cmd,
			CarryIn:     cin,
			ClockEnable: true,
			Mode:        alu.ModeArith,
		})
	}

	logic := func(v alu.Validity, cmd, a, b uint64) alu.ResultRecord {
		return core.Evaluate(spec, table, alu.Lines{
			Validity:    v,
			OperandA:    a,
			OperandB:    b,
			Command:     cmd,
			ClockEnable: true,
			Mode:        alu.ModeLogic,
		})
	}

	It("should add with the carry inside the wide result", func() {
		Expect(arith(alu.ValidityBoth, 0b0000, 1, 2, false)).
			To(Equal(alu.ResultRecord{Result: 3}))
		Expect(arith(alu.ValidityBoth, 0b0000, 0xFF, 0x02, false)).
			To(Equal(alu.ResultRecord{Result: 0x101, CarryOut: true}))

		By("ignoring carry-in outside the carry ops")
		Expect(arith(alu.ValidityBoth, 0b0000, 1, 2, true)).
			To(Equal(alu.ResultRecord{Result: 3}))

		By("folding carry-in into ADD_CIN")
		Expect(arith(alu.ValidityBoth, 0b0010, 0xFE, 1, true)).
			To(Equal(alu.ResultRecord{Result: 0x100, CarryOut: true}))
		Expect(arith(alu.ValidityBoth, 0b0010, 0xFE, 1, false)).
			To(Equal(alu.ResultRecord{Result: 0xFF}))
	})

	It("should subtract with the borrow on the overflow flag", func() {
		Expect(arith(alu.ValidityBoth, 0b0001, 5, 3, false)).
			To(Equal(alu.ResultRecord{Result: 2}))
		Expect(arith(alu.ValidityBoth, 0b0001, 3, 5, false)).
			To(Equal(alu.ResultRecord{Result: 0xFFFE, Overflow: true}))

		By("folding carry-in into SUB_CIN as a borrow")
		Expect(arith(alu.ValidityBoth, 0b0011, 3, 2, true)).
			To(Equal(alu.ResultRecord{Result: 0}))
		Expect(arith(alu.ValidityBoth, 0b0011, 3, 3, true)).
			To(Equal(alu.ResultRecord{Result: 0xFFFF, Overflow: true}))
	})

	It("should increment and decrement single operands", func() {
		Expect(arith(alu.ValidityA, 0b0100, 0xFF, 0, false)).
			To(Equal(alu.ResultRecord{Result: 0x100, CarryOut: true}))
		Expect(arith(alu.ValidityA, 0b0101, 0, 0, false)).
			To(Equal(alu.ResultRecord{Result: 0xFFFF, Overflow: true}))
		Expect(arith(alu.ValidityB, 0b0110, 0, 7, false)).
			To(Equal(alu.ResultRecord{Result: 8}))
		Expect(arith(alu.ValidityB, 0b0111, 0, 7, false)).
			To(Equal(alu.ResultRecord{Result: 6}))
	})

	It("should compare unsigned", func() {
		Expect(arith(alu.ValidityBoth, 0b1000, 9, 3, false)).
			To(Equal(alu.ResultRecord{Greater: true}))
		Expect(arith(alu.ValidityBoth, 0b1000, 7, 7, false)).
			To(Equal(alu.ResultRecord{Equal: true}))
		Expect(arith(alu.ValidityBoth, 0b1000, 3, 9, false)).
			To(Equal(alu.ResultRecord{Less: true}))
	})

	It("should truncate multiply results to the double width", func() {
		Expect(arith(alu.ValidityBoth, 0b1001, 9, 9, false)).
			To(Equal(alu.ResultRecord{Result: 100}))
		Expect(arith(alu.ValidityBoth, 0b1010, 0x80, 2, false)).
			To(Equal(alu.ResultRecord{Result: 0x200}))

		By("wrapping silently at the top of the range")
		Expect(arith(alu.ValidityBoth, 0b1001, 0xFF, 0xFF, false)).
			To(Equal(alu.ResultRecord{Result: 0}))
	})

	It("should sign extend the signed ops", func() {
		Expect(arith(alu.ValidityBoth, 0b1011, 0xFF, 0xFF, false)).
			To(Equal(alu.ResultRecord{Result: 0xFFFE, Equal: true}))
		Expect(arith(alu.ValidityBoth, 0b1011, 127, 1, false)).
			To(Equal(alu.ResultRecord{
				Result: 0x80, Overflow: true, Greater: true,
			}))
		Expect(arith(alu.ValidityBoth, 0b1011, 0x80, 0x80, false)).
			To(Equal(alu.ResultRecord{
				Result: 0xFF00, Overflow: true, Equal: true,
			}))

		Expect(arith(alu.ValidityBoth, 0b1100, 5, 3, false)).
			To(Equal(alu.ResultRecord{Result: 2, Greater: true}))
		Expect(arith(alu.ValidityBoth, 0b1100, 0x80, 1, false)).
			To(Equal(alu.ResultRecord{
				Result: 0xFF7F, Overflow: true, Less: true,
			}))
	})

	It("should evaluate the bitwise pairs", func() {
		a, b := uint64(0xF0), uint64(0xCC)

		Expect(logic(alu.ValidityBoth, 0b0000, a, b).Result).
			To(Equal(uint64(0xC0)))
		Expect(logic(alu.ValidityBoth, 0b0001, a, b).Result).
			To(Equal(uint64(0x3F)))
		Expect(logic(alu.ValidityBoth, 0b0010, a, b).Result).
			To(Equal(uint64(0xFC)))
		Expect(logic(alu.ValidityBoth, 0b0011, a, b).Result).
			To(Equal(uint64(0x03)))
		Expect(logic(alu.ValidityBoth, 0b0100, a, b).Result).
			To(Equal(uint64(0x3C)))
		Expect(logic(alu.ValidityBoth, 0b0101, a, b).Result).
			To(Equal(uint64(0xC3)))
	})

	It("should complement single operands", func() {
		Expect(logic(alu.ValidityA, 0b0110, 0x55, 0)).
			To(Equal(alu.ResultRecord{Result: 0xAA}))
		Expect(logic(alu.ValidityB, 0b0111, 0, 0x0F)).
			To(Equal(alu.ResultRecord{Result: 0xF0}))
	})

	It("should shift single operands by one", func() {
		Expect(logic(alu.ValidityA, 0b1000, 0x81, 0).Result).
			To(Equal(uint64(0x40)))
		Expect(logic(alu.ValidityA, 0b1001, 0x81, 0).Result).
			To(Equal(uint64(0x02)))
		Expect(logic(alu.ValidityB, 0b1010, 0, 0x81).Result).
			To(Equal(uint64(0x40)))
		Expect(logic(alu.ValidityB, 0b1011, 0, 0x81).Result).
			To(Equal(uint64(0x02)))
	})

	It("should rotate by the low bits of operand B", func() {
		Expect(logic(alu.ValidityBoth, 0b1100, 0x81, 1)).
			To(Equal(alu.ResultRecord{Result: 0x03}))
		Expect(logic(alu.ValidityBoth, 0b1100, 0x81, 7)).
			To(Equal(alu.ResultRecord{Result: 0xC0}))
		Expect(logic(alu.ValidityBoth, 0b1100, 0xA5, 0)).
			To(Equal(alu.ResultRecord{Result: 0xA5}))
		Expect(logic(alu.ValidityBoth, 0b1101, 0x03, 1)).
			To(Equal(alu.ResultRecord{Result: 0x81}))

		By("matching left and right rotations of complementary amounts")
		Expect(logic(alu.ValidityBoth, 0b1100, 0xA5, 3)).
			To(Equal(logic(alu.ValidityBoth, 0b1101, 0xA5, 5)))
		Expect(logic(alu.ValidityBoth, 0b1100, 0xA5, 3).Result).
			To(Equal(uint64(0x2D)))
	})

	It("should flag rotate amounts beyond the rotate width", func() {
		Expect(logic(alu.ValidityBoth, 0b1100, 0x81, 8)).
			To(Equal(alu.ResultRecord{Err: true}))
		Expect(logic(alu.ValidityBoth, 0b1101, 0x81, 0xFF)).
			To(Equal(alu.ResultRecord{Err: true}))
	})

	It("should flag undefined triples", func() {
		Expect(arith(alu.ValidityBoth, 0b1111, 1, 2, false)).
			To(Equal(alu.ResultRecord{Err: true}))

		By("keeping single-operand commands out of the both selector")
		Expect(arith(alu.ValidityBoth, 0b0100, 1, 2, false)).
			To(Equal(alu.ResultRecord{Err: true}))
		Expect(logic(alu.ValidityB, 0b0110, 0, 0x55)).
			To(Equal(alu.ResultRecord{Err: true}))
	})

	It("should flag missing validity", func() {
		Expect(arith(alu.ValidityNone, 0b0000, 1, 2, false)).
			To(Equal(alu.ResultRecord{Err: true}))
		Expect(logic(alu.ValidityNone, 0b0000, 1, 2)).
			To(Equal(alu.ResultRecord{Err: true}))
	})

	It("should mask wide inputs before evaluating", func() {
		Expect(arith(alu.ValidityBoth, 0b0000, 0x1FF, 1, false)).
			To(Equal(alu.ResultRecord{Result: 0x100, CarryOut: true}))
		Expect(arith(alu.ValidityBoth, 0b10000, 1, 2, false)).
			To(Equal(alu.ResultRecord{Result: 3}))
	})

	It("should follow the configured operand width", func() {
		spec = alu.Spec{OperandWidth: 16, CommandWidth: 4}

		Expect(arith(alu.ValidityBoth, 0b0000, 0xFFFF, 1, false)).
			To(Equal(alu.ResultRecord{Result: 0x10000, CarryOut: true}))
		Expect(logic(alu.ValidityBoth, 0b1100, 0x8001, 1)).
			To(Equal(alu.ResultRecord{Result: 0x0003}))
		Expect(logic(alu.ValidityBoth, 0b1100, 0x8001, 16)).
			To(Equal(alu.ResultRecord{Err: true}))
	})
})
