package database

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/growthdesk/crm-backend/internal/store"
)

const notifyChannel = "crm_changes"

// ChangeListener escuta o canal crm_changes (NOTIFY disparado pelos
// triggers de 00002) e repassa eventos pros stores inscritos. Reconexão
// é a do pq.Listener; se ele desistir de vez, o feed simplesmente para
// de atualizar — sem fallback de polling.
type ChangeListener struct {
	listener *pq.Listener

	// OnEvent, se setado, é chamado a cada notificação recebida (métricas).
	OnEvent func(table string)

	mu   sync.Mutex
	subs map[string][]func(store.Event)
}

func NewChangeListener(connString string) *ChangeListener {
	l := pq.NewListener(connString, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("⚠️ [FEED] listener: %v", err)
		}
	})

	return &ChangeListener{
		listener: l,
		subs:     make(map[string][]func(store.Event)),
	}
}

// Subscribe registra o callback da tabela. Implementa store.ChangeFeed.
func (c *ChangeListener) Subscribe(ctx context.Context, table string, fn func(store.Event)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs[table] = append(c.subs[table], fn)
	return nil
}

// Start abre o LISTEN e fica despachando notificações até o ctx fechar.
func (c *ChangeListener) Start(ctx context.Context) error {
	if err := c.listener.Listen(notifyChannel); err != nil {
		return err
	}

	go c.run(ctx)
	return nil
}

func (c *ChangeListener) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.listener.Close()
			return

		case n := <-c.listener.Notify:
			if n == nil {
				// Reconexão do pq.Listener. Notificações podem ter se
				// perdido no intervalo; recarrega todo mundo.
				log.Printf("📡 [FEED] reconectado, reload geral")
				c.dispatchAll()
				continue
			}

			var ev store.Event
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				log.Printf("⚠️ [FEED] payload inválido: %q", n.Extra)
				continue
			}
			c.dispatch(ev)
		}
	}
}

func (c *ChangeListener) dispatch(ev store.Event) {
	if c.OnEvent != nil {
		c.OnEvent(ev.Table)
	}

	c.mu.Lock()
	fns := append([]func(store.Event){}, c.subs[ev.Table]...)
	c.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (c *ChangeListener) dispatchAll() {
	c.mu.Lock()
	tables := make(map[string][]func(store.Event), len(c.subs))
	for t, fns := range c.subs {
		tables[t] = append([]func(store.Event){}, fns...)
	}
	c.mu.Unlock()

	for t, fns := range tables {
		for _, fn := range fns {
			fn(store.Event{Table: t, Op: "RESYNC"})
		}
	}
}
