package rule2hook

import "github.com/stretchr/testify/mock"

// MockObserver is a mock implementation of Observer for testing.
type MockObserver struct {
	mock.Mock
}

// Info is a mock implementation of Observer.Info.
func (m *MockObserver) Info(message string) {
	m.Called(message)
}

// Warning is a mock implementation of Observer.Warning.
func (m *MockObserver) Warning(message string) {
	m.Called(message)
}

// Progress is a mock implementation of Observer.Progress.
func (m *MockObserver) Progress(current, total int, message string) {
	m.Called(current, total, message)
}
