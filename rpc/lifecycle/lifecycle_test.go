// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lifecycle_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/registryd/account"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	statemachine "github.com/bitmark-inc/registryd/lifecycle"
	"github.com/bitmark-inc/registryd/record"
	"github.com/bitmark-inc/registryd/rpc/lifecycle"
	"github.com/bitmark-inc/registryd/rpc/mocks"
)

func TestLifecycleWorkflow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	lc := lifecycle.New(logger.New(fixtures.LogCategory), e)

	prefix, _ := record.NewPrefix(1, record.Unique)
	id := prefix.Instance(1)

	gomock.InOrder(
		e.EXPECT().Apply(fixtures.Alice, id, fixtures.Evaluator).Return(nil),
		e.EXPECT().DocsSubmitted(fixtures.Evaluator, id).Return(nil),
		e.EXPECT().UserQualified(fixtures.Evaluator, id).Return(nil),
		e.EXPECT().Finalize(fixtures.Evaluator, id).Return(nil),
	)

	var reply lifecycle.EmptyReply
	err := lc.Apply(&lifecycle.ApplyArguments{Caller: fixtures.Alice, ID: id, Evaluator: fixtures.Evaluator}, &reply)
	assert.Nil(t, err, "wrong Apply")

	err = lc.DocsSubmitted(&lifecycle.RecordArguments{Caller: fixtures.Evaluator, ID: id}, &reply)
	assert.Nil(t, err, "wrong DocsSubmitted")

	err = lc.UserQualified(&lifecycle.RecordArguments{Caller: fixtures.Evaluator, ID: id}, &reply)
	assert.Nil(t, err, "wrong UserQualified")

	err = lc.Finalize(&lifecycle.FinalizeArguments{Caller: fixtures.Evaluator, IDs: []record.Identifier{id}}, &reply)
	assert.Nil(t, err, "wrong Finalize")
}

func TestLifecycleErrorsPassThrough(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	lc := lifecycle.New(logger.New(fixtures.LogCategory), e)

	prefix, _ := record.NewPrefix(1, record.Unique)
	id := prefix.Instance(1)

	e.EXPECT().UserRejected(fixtures.Bob, id).Return(fault.Unauthorized).Times(1)
	e.EXPECT().Remove(fixtures.Bob, id).Return(fault.Forbidden).Times(1)

	var reply lifecycle.EmptyReply
	err := lc.UserRejected(&lifecycle.RecordArguments{Caller: fixtures.Bob, ID: id}, &reply)
	assert.Equal(t, fault.Unauthorized, err, "wrong UserRejected error")

	err = lc.Remove(&lifecycle.RecordArguments{Caller: fixtures.Bob, ID: id}, &reply)
	assert.Equal(t, fault.Forbidden, err, "wrong Remove error")
}

func TestLifecycleFinalizeBatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	lc := lifecycle.New(logger.New(fixtures.LogCategory), e)

	prefix, _ := record.NewPrefix(1, record.Unique)
	ids := []record.Identifier{prefix.Instance(1), prefix.Instance(2), prefix.Instance(3)}

	e.EXPECT().FinalizeBatch(fixtures.Evaluator, ids).Return(nil).Times(1)

	var reply lifecycle.EmptyReply
	err := lc.Finalize(&lifecycle.FinalizeArguments{Caller: fixtures.Evaluator, IDs: ids}, &reply)
	assert.Nil(t, err, "wrong Finalize")

	err = lc.Finalize(&lifecycle.FinalizeArguments{Caller: fixtures.Evaluator}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "empty batch accepted")
}

func TestLifecycleState(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	e := mocks.NewMockEngine(ctl)
	lc := lifecycle.New(logger.New(fixtures.LogCategory), e)

	prefix, _ := record.NewPrefix(1, record.Unique)
	id := prefix.Instance(1)
	other := prefix.Instance(2)

	e.EXPECT().Binding(id).Return(statemachine.Processing, fixtures.Evaluator).Times(1)
	e.EXPECT().State(id).Return(statemachine.Processing).Times(1)
	e.EXPECT().Binding(other).Return(statemachine.Available, account.Null).Times(1)
	e.EXPECT().State(other).Return(statemachine.Optioned).Times(1)

	var reply lifecycle.StateReply
	err := lc.State(&lifecycle.StateArguments{ID: id}, &reply)
	assert.Nil(t, err, "wrong State")
	assert.Equal(t, statemachine.Processing, reply.State, "wrong state")
	assert.Equal(t, fixtures.Evaluator, reply.Evaluator, "wrong evaluator")

	err = lc.State(&lifecycle.StateArguments{ID: other}, &reply)
	assert.Nil(t, err, "wrong State")
	assert.Equal(t, statemachine.Optioned, reply.State, "sale overlay not reported")
	assert.True(t, reply.Evaluator.IsNull(), "unexpected evaluator")
}
