package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lc3vm/host"
	"github.com/sarchlab/lc3vm/vm"
)

var _ = Describe("Memory and MMIO", func() {
	var (
		m    *vm.Machine
		fake *host.Fake
	)

	BeforeEach(func() {
		fake = host.NewFake()
		m = vm.New(vm.WithHost(fake))
	})

	It("reads and writes plain RAM purely", func() {
		m.Write(0x4000, 0xBEEF)
		Expect(m.Read(0x4000)).To(Equal(uint16(0xBEEF)))
	})

	It("reads and writes the first and last addresses independently", func() {
		m.Write(0xFFFF, 1)
		m.Write(0x0000, 2)
		Expect(m.Read(0xFFFF)).To(Equal(uint16(1)))
		Expect(m.Read(0x0000)).To(Equal(uint16(2)))
	})

	It("publishes a ready key into KBSR/KBDR on read when one is queued", func() {
		fake.Feed('A')
		status := m.Read(vm.KBSR)
		Expect(status).To(Equal(uint16(0x8000)))
		Expect(m.Read(vm.KBDR)).To(Equal(uint16('A')))
	})

	It("reports KBSR=0 when no key is ready", func() {
		Expect(m.Read(vm.KBSR)).To(Equal(uint16(0)))
	})

	It("does not mutate KBSR on a KBDR read", func() {
		m.Write(vm.KBSR, 0x8000)
		m.Write(vm.KBDR, uint16('z'))
		_ = m.Read(vm.KBDR)
		Expect(m.Mem[vm.KBSR]).To(Equal(uint16(0x8000)))
		Expect(m.Read(vm.KBDR)).To(Equal(uint16('z')))
	})
})
