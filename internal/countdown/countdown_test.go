package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiresOnceAtZero(t *testing.T) {
	var calls atomic.Int32
	c := Start(3, time.Millisecond, func() { calls.Add(1) })

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 0, c.Remaining())
	assert.False(t, c.Stop())

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestStopPreventsFiring(t *testing.T) {
	var calls atomic.Int32
	c := Start(300, time.Hour, func() { calls.Add(1) })

	assert.Equal(t, 300, c.Remaining())
	assert.True(t, c.Stop())
	assert.False(t, c.Stop())

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestNonPositiveFiresImmediately(t *testing.T) {
	var calls atomic.Int32
	Start(0, time.Hour, func() { calls.Add(1) })

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
}

func TestRemainingDecrements(t *testing.T) {
	c := Start(1000, 2*time.Millisecond, nil)
	defer c.Stop()

	assert.Eventually(t, func() bool { return c.Remaining() < 1000 }, time.Second, time.Millisecond)
}

func TestFormat(t *testing.T) {
	cases := map[int]string{
		300: "05:00",
		299: "04:59",
		5:   "00:05",
		0:   "00:00",
		-4:  "00:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, Format(in))
	}
}
