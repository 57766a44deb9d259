package rtkernel

func (k *Kernel) logTaskSwitch(from, to TaskID) {
	k.log.Trace().Field(`from`, from).Field(`to`, to).Log(`task switch`)
}

func (k *Kernel) logTick(clock Tick) {
	k.log.Trace().Field(`clock`, uint32(clock)).Log(`tick`)
}

func (k *Kernel) logMutexHandoff(idx int, from, to TaskID) {
	k.log.Notice().Field(`mutex`, idx).Field(`from`, from).Field(`to`, to).Log(`mutex handoff`)
}

func (k *Kernel) logSemaphoreBlock(idx int, waiter TaskID) {
	k.log.Notice().Field(`semaphore`, idx).Field(`waiter`, waiter).Log(`semaphore wait blocked`)
}

func (k *Kernel) logOverrun(id TaskID, count uint32) {
	k.log.Warning().Field(`task`, id).Field(`overrunCount`, count).Log(`absolute timer overrun`)
}

func (k *Kernel) logReadyListFull(priority int) {
	k.log.Warning().Field(`priority`, priority).Log(`ready list at capacity`)
}

func (k *Kernel) logExternalISR(index int) {
	name := k.cfg.ExternalISRNames[index]
	if name == `` {
		name = `unnamed`
	}
	k.log.Debug().Field(`line`, index).Field(`name`, name).Log(`external isr`)
}
