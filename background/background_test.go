// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/background"
)

type ticker struct {
	ticks    uint64
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(uint64)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddUint64(&state.ticks, step)
		time.Sleep(time.Millisecond)
	}
	state.finished = true
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, uint64(3))
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.finished, "first process did not finish")
	assert.True(t, proc2.finished, "second process did not finish")
	assert.NotEqual(t, uint64(0), atomic.LoadUint64(&proc1.ticks), "first process did not run")
	assert.Equal(t, uint64(0), atomic.LoadUint64(&proc2.ticks)%3, "wrong step")

	// a second stop must not block or panic
	p.Stop()
}
