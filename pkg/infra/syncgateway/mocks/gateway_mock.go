package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ufobeep/quarantine/pkg/domain/quarantine"
)

type Gateway struct {
	mock.Mock
}

func NewGateway(t *testing.T) *Gateway {
	m := &Gateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Gateway) SyncQuarantine(ctx context.Context, alertID uuid.UUID, action quarantine.Action, reasons []quarantine.Reason, customReason string) error {
	args := m.Called(ctx, alertID, action, reasons, customReason)
	return args.Error(0)
}

func (m *Gateway) SyncApproval(ctx context.Context, alertID uuid.UUID, moderatorID, moderatorName string) error {
	args := m.Called(ctx, alertID, moderatorID, moderatorName)
	return args.Error(0)
}
