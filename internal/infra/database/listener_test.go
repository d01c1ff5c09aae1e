package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/growthdesk/crm-backend/internal/store"
)

func newTestListener() *ChangeListener {
	return &ChangeListener{subs: make(map[string][]func(store.Event))}
}

// ============ TESTES DO CHANGE LISTENER ============

// Evento vai só pros inscritos da tabela dele
func TestDispatchRoutesByTable(t *testing.T) {
	c := newTestListener()

	var leadEvents, partnerEvents []store.Event
	assert.NoError(t, c.Subscribe(context.Background(), "leads", func(ev store.Event) {
		leadEvents = append(leadEvents, ev)
	}))
	assert.NoError(t, c.Subscribe(context.Background(), "partners", func(ev store.Event) {
		partnerEvents = append(partnerEvents, ev)
	}))

	c.dispatch(store.Event{Table: "leads", Op: "INSERT"})
	c.dispatch(store.Event{Table: "leads", Op: "DELETE"})

	assert.Len(t, leadEvents, 2)
	assert.Empty(t, partnerEvents)
	assert.Equal(t, "DELETE", leadEvents[1].Op)
}

// O hook OnEvent vê toda notificação, antes dos callbacks
func TestDispatchCallsOnEventHook(t *testing.T) {
	c := newTestListener()

	var seen []string
	c.OnEvent = func(table string) { seen = append(seen, table) }

	c.dispatch(store.Event{Table: "clients", Op: "UPDATE"})
	c.dispatch(store.Event{Table: "leads", Op: "INSERT"})

	assert.Equal(t, []string{"clients", "leads"}, seen)
}

// Reconexão: todo inscrito recebe um RESYNC da própria tabela
func TestDispatchAllEmitsResync(t *testing.T) {
	c := newTestListener()

	got := make(map[string]store.Event)
	for _, table := range []string{"leads", "partners", "clients", "interactions"} {
		table := table
		assert.NoError(t, c.Subscribe(context.Background(), table, func(ev store.Event) {
			got[table] = ev
		}))
	}

	c.dispatchAll()

	assert.Len(t, got, 4)
	for table, ev := range got {
		assert.Equal(t, table, ev.Table)
		assert.Equal(t, "RESYNC", ev.Op)
	}
}

// Tabela sem inscrito: evento é descartado sem pânico
func TestDispatchUnknownTableIsNoOp(t *testing.T) {
	c := newTestListener()
	assert.NotPanics(t, func() {
		c.dispatch(store.Event{Table: "daily_activities", Op: "INSERT"})
	})
}
