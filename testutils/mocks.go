package testutils

import "github.com/stretchr/testify/mock"

// RemoveOn drops every expectation for method so a test can replace it
func RemoveOn(m *mock.Mock, method string) {
	ec := m.ExpectedCalls
	rc := make([]*mock.Call, 0)

	for _, c := range ec {
		if c.Method != method {
			rc = append(rc, c)
		}
	}

	m.ExpectedCalls = rc
}

// GetCalls returns the recorded calls to method in the order they were made
func GetCalls(m *mock.Mock, method string) []mock.Call {
	rc := make([]mock.Call, 0)
	for _, c := range m.Calls {
		if c.Method == method {
			rc = append(rc, c)
		}
	}

	return rc
}

// CallArg returns argument n of call i to method cast to T, it panics when
// the call was not made so that a missing provider request fails the test
func CallArg[T any](m *mock.Mock, method string, i, n int) T {
	calls := GetCalls(m, method)
	if i >= len(calls) {
		panic("expected call " + method + " was not made")
	}

	return calls[i].Arguments.Get(n).(T)
}
