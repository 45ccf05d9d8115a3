package types

// Notification is how controllers push content into the terminal view
// without depending on the rendering component directly.
type Notification interface {
	AddOutput(items ...OutputItem)
	AddErrorMessage(string)
	ClearOutput()
}

type MockNotification struct {
	Items         []OutputItem
	ErrorMessages []string
	ClearCount    int
}

func (m *MockNotification) AddOutput(items ...OutputItem) {
	m.Items = append(m.Items, items...)
}
func (m *MockNotification) AddErrorMessage(msg string) {
	m.ErrorMessages = append(m.ErrorMessages, msg)
	m.Items = append(m.Items, Error(msg))
}
func (m *MockNotification) ClearOutput() {
	m.ClearCount++
	m.Items = nil
}
