package rtkernel

// Delay suspends caller unconditionally for timeout ticks: a convenience
// wrapper around Wait for the common "sleep" case (original_source
// RTuinOS's rtos_delay), equivalent to
// Wait(caller, DelayEvent, true, timeout) but without requiring the
// caller to name the timer event bit itself. It returns the same event
// mask Wait would (spec.md § 6: "delay ... returns the delay-event bit").
func (k *Kernel) Delay(caller TaskID, timeout Tick) EventMask {
	return k.Wait(caller, DelayEvent, true, timeout)
}
