package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lc3vm/vm"
)

var _ = Describe("Decode", func() {
	It("extracts the opcode from bits 15..12", func() {
		inst := vm.Decode(0b0001_000_000_0_00000)
		Expect(inst.Op).To(Equal(vm.OpADD))
	})

	It("decodes ADD in register mode", func() {
		// ADD R0, R0, R2
		inst := vm.Decode(0b0001_000_000_0_00_010)
		Expect(inst.DR).To(Equal(vm.R0))
		Expect(inst.SR1).To(Equal(vm.R0))
		Expect(inst.SR2).To(Equal(vm.R2))
		Expect(inst.ImmMode).To(BeFalse())
	})

	It("decodes ADD in immediate mode with a negative imm5", func() {
		// ADD R1, R1, #-1 (imm5 = 11111)
		inst := vm.Decode(0b0001_001_001_1_11111)
		Expect(inst.ImmMode).To(BeTrue())
		Expect(inst.Imm5).To(Equal(uint16(0xFFFF)))
	})

	It("leaves positive immediates unchanged", func() {
		inst := vm.Decode(0b0001_000_000_1_00111)
		Expect(inst.Imm5).To(Equal(uint16(7)))
	})

	It("sign-extends offset9 (BR)", func() {
		// BR with offset9 = 111111111 (-1)
		inst := vm.Decode(0b0000_111_111111111)
		Expect(inst.Offset9).To(Equal(uint16(0xFFFF)))
	})

	It("sign-extends offset6 (LDR) positive", func() {
		inst := vm.Decode(0b0110_000_000_000001)
		Expect(inst.Offset6).To(Equal(uint16(1)))
	})

	It("sign-extends offset11 (JSR)", func() {
		// JSR with offset11 = 11111111111 (-1), jsr-mode bit set
		inst := vm.Decode(0b0100_1_11111111111)
		Expect(inst.JSRMode).To(BeTrue())
		Expect(inst.Offset11).To(Equal(uint16(0xFFFF)))
	})

	It("decodes JSRR (jsr-mode bit clear) with BaseR", func() {
		inst := vm.Decode(0b0100_0_00_010_000000)
		Expect(inst.JSRMode).To(BeFalse())
		Expect(inst.SR1).To(Equal(vm.R2))
	})

	It("decodes the BR condition mask", func() {
		inst := vm.Decode(0b0000_111_000001001)
		Expect(inst.CondMask).To(Equal(uint16(0b111)))
		Expect(inst.Offset9).To(Equal(uint16(9)))
	})

	It("decodes the TRAP vector", func() {
		inst := vm.Decode(0b1111_0000_0010_0101)
		Expect(inst.Op).To(Equal(vm.OpTRAP))
		Expect(inst.TrapVect).To(Equal(vm.TrapHALT))
	})
})
