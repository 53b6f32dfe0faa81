// Package dxl provides an abstraction layer for querying the dynamixel tool binary.
package dxl

import (
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client for testing.
// It uses testify/mock to provide flexible behavior configuration and
// method call tracking for assertions.
//
// Example usage:
//
//	mockClient := new(MockClient)
//	mockClient.On("ListModels", false).Return([]string{"AX-12A", "AX-18A"}, nil)
//
//	models, err := mockClient.ListModels(false)
//	assert.NoError(t, err)
//	assert.Equal(t, "AX-12A", models[0])
//
//	// Assert that the method was called
//	mockClient.AssertCalled(t, "ListModels", false)
type MockClient struct {
	mock.Mock
}

// ListModels returns a mocked model identifier list.
// Configure the return value using:
//
//	mock.On("ListModels", false).Return([]string{"AX-12A"}, nil)
func (m *MockClient) ListModels(proto2 bool) ([]string, error) {
	args := m.Called(proto2)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ListRegisters returns a mocked register name list for a model.
// Configure the return value using:
//
//	mock.On("ListRegisters", false, "AX-12A").Return([]string{"torque_enable"}, nil)
func (m *MockClient) ListRegisters(proto2 bool, model string) ([]string, error) {
	args := m.Called(proto2, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Run returns mocked stdout, stderr, and error for a tool invocation.
// Configure the return value using:
//
//	mock.On("Run", []string{"list-models"}).Return("AX-12A\nAX-18A\n", "", nil)
func (m *MockClient) Run(args ...string) (string, string, error) {
	callArgs := m.Called(args)
	return callArgs.String(0), callArgs.String(1), callArgs.Error(2)
}
