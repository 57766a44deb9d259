package rtkernel

// ContextSwitcher is the kernel's abstraction of the hardware context-switch
// primitive: the act of handing the CPU from one task to another. On the
// 8-bit target this spec originates from, that means saving and restoring
// a register file and stack pointer; here, where each task is a goroutine
// blocked on its own resume channel, "switching" reduces to waking the
// target goroutine and letting the outgoing one park. Switch is called
// purely as an observation point — goroutineSwitcher's default
// implementation does no work of its own, the handoff mechanics live in
// Kernel.dispatch and Kernel.park — but a caller-supplied ContextSwitcher
// can use it to hook tracing, CPU-time accounting, or a simulated
// instruction-cycle budget onto every switch.
type ContextSwitcher interface {
	Switch(from, to TaskID)
}

// goroutineSwitcher is the default, no-op ContextSwitcher.
type goroutineSwitcher struct{}

func (goroutineSwitcher) Switch(TaskID, TaskID) {}
