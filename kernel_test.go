package rtkernel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idleHookShortSleep(*Kernel) { time.Sleep(time.Millisecond) }

func driveTicks(k *Kernel, every time.Duration) (stop func()) {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				k.Tick()
			}
		}
	}()
	return func() { close(stopCh) }
}

func TestNewKernel_RejectsBadConfig(t *testing.T) {
	_, err := NewKernel(Config{NumTasks: 0, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16})
	assert.ErrorIs(t, err, ErrTaskCountOutOfRange)

	_, err = NewKernel(Config{NumTasks: 2, NumPriorityClasses: 3, MaxTasksPerClass: 1, TickWidth: 16})
	assert.ErrorIs(t, err, ErrPriorityClassOutOfRange)

	_, err = NewKernel(Config{NumTasks: 2, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 7})
	assert.ErrorIs(t, err, ErrTickWidthInvalid)

	_, err = NewKernel(Config{NumTasks: 2, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16,
		NumMutexEvents: 8, NumSemaphoreEvents: 8})
	assert.ErrorIs(t, err, ErrEventBitsExhausted)
}

func TestNewKernel_DebugPanicsOnBadConfig(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = NewKernel(Config{NumTasks: 0, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16, Debug: true})
	})
}

func TestTwoPeriodicTasksDifferentPriorities(t *testing.T) {
	cfg := Config{
		NumTasks: 2, NumPriorityClasses: 2, MaxTasksPerClass: 2, TickWidth: 16,
		IdleHook: idleHookShortSleep,
	}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	var lowCount, highCount int64
	var lowID, highID TaskID

	lowID, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), Entry: func(EventMask) {
		for {
			atomic.AddInt64(&lowCount, 1)
			k.Delay(lowID, 2)
		}
	}})
	require.NoError(t, err)

	highID, err = k.InitTask(TaskConfig{Priority: 1, Stack: NewStack(64), Entry: func(EventMask) {
		for {
			atomic.AddInt64(&highCount, 1)
			k.Delay(highID, 5)
		}
	}})
	require.NoError(t, err)

	require.NoError(t, k.Start())

	stop := driveTicks(k, time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	stop()

	lc := atomic.LoadInt64(&lowCount)
	hc := atomic.LoadInt64(&highCount)
	assert.Greater(t, lc, int64(0))
	assert.Greater(t, hc, int64(0))
	assert.Greater(t, lc, hc)
}

func TestProducerConsumerViaSemaphore(t *testing.T) {
	cfg := Config{
		NumTasks: 2, NumPriorityClasses: 1, MaxTasksPerClass: 2, TickWidth: 16,
		NumSemaphoreEvents: 1,
		IdleHook:           idleHookShortSleep,
	}
	k, err := NewKernel(cfg)
	require.NoError(t, err)
	semBit := semaphoreBit(0, 0)

	var produced, consumed int64
	var prodID, consID TaskID

	prodID, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), Entry: func(EventMask) {
		for {
			k.Post(prodID, semBit)
			atomic.AddInt64(&produced, 1)
			k.Delay(prodID, 3)
		}
	}})
	require.NoError(t, err)

	consID, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), Entry: func(EventMask) {
		for {
			got := k.Wait(consID, semBit, false, 0)
			if got == semBit {
				atomic.AddInt64(&consumed, 1)
			}
		}
	}})
	require.NoError(t, err)

	require.NoError(t, k.Start())

	stop := driveTicks(k, time.Millisecond)
	time.Sleep(120 * time.Millisecond)
	stop()

	p := atomic.LoadInt64(&produced)
	c := atomic.LoadInt64(&consumed)
	assert.Greater(t, c, int64(0))
	assert.LessOrEqual(t, c, p+1)
}

func TestMutexHandoffAmongThreeEqualPriorityTasks(t *testing.T) {
	cfg := Config{
		NumTasks: 3, NumPriorityClasses: 1, MaxTasksPerClass: 3, TickWidth: 16,
		NumMutexEvents: 1,
		IdleHook:       idleHookShortSleep,
	}
	k, err := NewKernel(cfg)
	require.NoError(t, err)
	mbit := mutexBit(0)

	var acquisitions int64
	ids := make([]TaskID, 3)

	for i := 0; i < 3; i++ {
		idx := i
		id, err := k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), Entry: func(EventMask) {
			for {
				got := k.Wait(ids[idx], mbit, true, 0)
				if got == mbit {
					atomic.AddInt64(&acquisitions, 1)
				}
				k.Post(ids[idx], mbit)
				k.Delay(ids[idx], 1)
			}
		}})
		require.NoError(t, err)
		ids[i] = id
	}

	require.NoError(t, k.Start())

	stop := driveTicks(k, time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	stop()

	assert.Greater(t, atomic.LoadInt64(&acquisitions), int64(3))
}

func TestRoundRobinRotatesAtEqualPriority(t *testing.T) {
	cfg := Config{
		NumTasks: 2, NumPriorityClasses: 1, MaxTasksPerClass: 2, TickWidth: 16,
		RoundRobin: true,
		IdleHook:   idleHookShortSleep,
	}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	var count1, count2 int64
	var id1, id2 TaskID

	id1, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), TimeSlice: 1, Entry: func(EventMask) {
		for {
			atomic.AddInt64(&count1, 1)
			k.Post(id1, 0)
		}
	}})
	require.NoError(t, err)

	id2, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), TimeSlice: 1, Entry: func(EventMask) {
		for {
			atomic.AddInt64(&count2, 1)
			k.Post(id2, 0)
		}
	}})
	require.NoError(t, err)

	require.NoError(t, k.Start())

	stop := driveTicks(k, time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	stop()

	// Without round-robin rotation, id1 (dispatched first) would run
	// forever and id2 would never get the CPU at equal priority.
	assert.Greater(t, atomic.LoadInt64(&count1), int64(0))
	assert.Greater(t, atomic.LoadInt64(&count2), int64(0))
}

func TestWaitTimeoutReturnsOnlyDelayEvent(t *testing.T) {
	cfg := Config{NumTasks: 1, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16, NumMutexEvents: 1}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	result := make(chan EventMask, 1)
	var id TaskID
	id, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), Entry: func(EventMask) {
		got := k.Wait(id, mutexBit(0)|DelayEvent, true, 5)
		result <- got
		select {}
	}})
	require.NoError(t, err)
	require.NoError(t, k.Start())

	stop := driveTicks(k, time.Millisecond)
	defer stop()

	select {
	case got := <-result:
		assert.Equal(t, DelayEvent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for task to time out")
	}
}

func TestPostPreemptsLowerPriorityPoster(t *testing.T) {
	cfg := Config{NumTasks: 2, NumPriorityClasses: 2, MaxTasksPerClass: 2, TickWidth: 16}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	const wakeBit EventMask = 1 << 0
	highRan := make(chan struct{}, 1)
	preemptedCh := make(chan bool, 1)
	var lowID, highID TaskID

	highID, err = k.InitTask(TaskConfig{Priority: 1, Stack: NewStack(64), InitialEventMask: wakeBit, Entry: func(EventMask) {
		highRan <- struct{}{}
		select {}
	}})
	require.NoError(t, err)

	lowID, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), Entry: func(EventMask) {
		preemptedCh <- k.Post(lowID, wakeBit)
		select {}
	}})
	require.NoError(t, err)

	require.NoError(t, k.Start())

	select {
	case <-highRan:
	case <-time.After(2 * time.Second):
		t.Fatal("high priority task never ran after being woken by post")
	}

	select {
	case preempted := <-preemptedCh:
		assert.True(t, preempted)
	case <-time.After(2 * time.Second):
		t.Fatal("low priority task never resumed after posting")
	}
}

func TestIdleMustNotWait(t *testing.T) {
	cfg := Config{NumTasks: 1, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	_, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), InitialEventMask: 1, Entry: func(EventMask) {
		select {}
	}})
	require.NoError(t, err)
	require.NoError(t, k.Start())

	got := k.Wait(k.IdleTaskID(), 1, false, 0)
	assert.Zero(t, got)
}

func TestIdleMustNotWait_PanicsInDebug(t *testing.T) {
	cfg := Config{NumTasks: 1, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16, Debug: true}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	_, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(64), InitialEventMask: 1, Entry: func(EventMask) {
		select {}
	}})
	require.NoError(t, err)
	require.NoError(t, k.Start())

	assert.Panics(t, func() { k.Wait(k.IdleTaskID(), 1, false, 0) })
}

func TestInitTask_ValidatesPriorityAndEntry(t *testing.T) {
	cfg := Config{NumTasks: 2, NumPriorityClasses: 1, MaxTasksPerClass: 1, TickWidth: 16}
	k, err := NewKernel(cfg)
	require.NoError(t, err)

	_, err = k.InitTask(TaskConfig{Priority: 5, Stack: NewStack(8), Entry: func(EventMask) {}})
	assert.ErrorIs(t, err, ErrPriorityClassOutOfRange)

	_, err = k.InitTask(TaskConfig{Priority: 0, Stack: NewStack(8), Entry: nil})
	assert.ErrorIs(t, err, ErrNilEntry)

	_, err = k.InitTask(TaskConfig{Priority: 0, Stack: nil, Entry: func(EventMask) {}})
	assert.ErrorIs(t, err, ErrNilStack)
}
