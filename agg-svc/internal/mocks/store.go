package mocks

import (
	"context"

	"foodapp/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordOrder(ctx context.Context, event domain.OrderEvent) (bool, error) {
	ret := _m.Called(ctx, event)
	return ret.Bool(0), ret.Error(1)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type MessageReader struct {
	mock.Mock
}

func (_m *MessageReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	var r0 kafka.Message
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(kafka.Message)
	}
	return r0, ret.Error(1)
}

func (_m *MessageReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	ret := _m.Called(ctx, msgs)
	return ret.Error(0)
}

func NewMessageReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
