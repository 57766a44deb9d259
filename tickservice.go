package rtkernel

// Tick advances the system clock by one unit and is the kernel's
// realization of the periodic timer interrupt (spec §4.6). It must be
// driven by a goroutine distinct from any configured task — typically a
// dedicated timer goroutine, or a test's driver goroutine — since nothing
// in Go lets Tick forcibly suspend a task goroutine that is actually
// running. Tick:
//
//  1. advances the clock;
//  2. scans the suspended set for tasks whose absolute-timer or delay due
//     tick has arrived, setting the corresponding bit and releasing any
//     task whose wait condition that newly satisfies (reusing the same
//     release machinery as Post, per spec §4.5 steps 2-3);
//  3. decrements the active task's round-robin time slice, if
//     Config.RoundRobin is set (spec §4.6 step 4, §4.7);
//  4. if the currently active task is idle, re-evaluates the scheduling
//     decision exactly as Post does for its own caller. A real,
//     currently-running task is never forcibly switched away by Tick: the
//     newly-ready task waits in its ready class, and an active task whose
//     slice has run out keeps running, until the running task's own next
//     Wait or Post call reaches Kernel.reschedule, which is where both a
//     higher-priority preemption and a same-priority round-robin rotation
//     actually take effect (see package doc and reschedule's doc comment).
func (k *Kernel) Tick() {
	token := k.cs.Enter()

	k.clock = k.clock.add(1, k.width)
	k.logTick(k.clock)

	for i := 0; i < k.suspended.Len(); {
		id := k.suspended.At(i)
		t := k.task(id)
		if !t.hasTimeout || !k.clock.atOrAfter(t.timeoutAt, k.width) {
			i++
			continue
		}
		if t.waitMask.Has(DelayEvent) {
			t.posted |= DelayEvent
		} else if t.waitMask.Has(AbsTimerEvent) {
			t.posted |= AbsTimerEvent
		}
		if checkSatisfied(t.posted, t.waitMask, t.waitAll) {
			k.suspended.RemoveAt(i)
			k.release(t)
			continue
		}
		i++
	}

	active := k.task(k.activeID)
	if k.cfg.RoundRobin && active.id != k.idleID && active.sliceLeft > 0 {
		active.sliceLeft--
	}

	var switched bool
	var next TaskID
	if active.id == k.idleID {
		if switched = k.reschedule(active); switched {
			next = k.activeID
		}
	}

	k.cs.Leave(token)

	if switched {
		k.dispatch(active.id, next)
	}
}
