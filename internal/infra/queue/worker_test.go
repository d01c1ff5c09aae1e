package queue

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendAssignment(to, name, recordName, table string) error {
	args := m.Called(to, name, recordName, table)
	return args.Error(0)
}

// ============ TESTES DO QUEUE WORKER ============

// TestAssignmentPayloadMarshalling - Teste que o payload serializa em snake_case
func TestAssignmentPayloadMarshalling(t *testing.T) {
	payload := AssignmentPayload{
		EventID:       "ev-1",
		Table:         "leads",
		Op:            "INSERT",
		RecordID:      "l1",
		RecordName:    "Acme Co",
		AssigneeID:    "u1",
		AssigneeName:  "Ana",
		AssigneeEmail: "ana@example.com",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"event_id":"ev-1"`)
	assert.Contains(t, string(body), `"record_name":"Acme Co"`)
	assert.Contains(t, string(body), `"assignee_email":"ana@example.com"`)

	var decoded AssignmentPayload
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, payload, decoded)
}

// TestProcessLeadAssignment - Atribuição de lead vira email pro responsável
func TestProcessLeadAssignment(t *testing.T) {
	sender := new(MockSender)
	w := NewWorker(nil, sender)

	sender.On("SendAssignment", "ana@example.com", "Ana", "Acme Co", "leads").
		Return(nil).Once()

	err := w.process(AssignmentPayload{
		Table:         "leads",
		RecordName:    "Acme Co",
		AssigneeName:  "Ana",
		AssigneeEmail: "ana@example.com",
	})

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

// TestProcessUnknownTableIsAcked - Tabela sem notificação não é erro
func TestProcessUnknownTableIsAcked(t *testing.T) {
	sender := new(MockSender)
	w := NewWorker(nil, sender)

	err := w.process(AssignmentPayload{Table: "partners"})

	assert.NoError(t, err)
	sender.AssertNotCalled(t, "SendAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestProcessSenderFailurePropagates - Falha de envio sobe pro loop nackar
func TestProcessSenderFailurePropagates(t *testing.T) {
	sender := new(MockSender)
	w := NewWorker(nil, sender)

	sender.On("SendAssignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).Once()

	err := w.process(AssignmentPayload{Table: "leads", AssigneeEmail: "x@example.com"})
	assert.Error(t, err)
}
