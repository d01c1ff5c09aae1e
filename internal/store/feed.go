package store

import (
	"context"
	"log"
)

// Event sinaliza que alguma linha da tabela mudou. Sem payload além de
// tabela e operação; quem recebe sempre recarrega tudo.
type Event struct {
	Table string `json:"table"`
	Op    string `json:"op"` // INSERT, UPDATE, DELETE
}

// ChangeFeed é o transporte de notificação de mudança. A implementação
// (pq.Listener, stub de teste) fica atrás desta interface pra não vazar
// no Store.
type ChangeFeed interface {
	Subscribe(ctx context.Context, table string, fn func(Event)) error
}

// Watch liga o feed ao Load: qualquer evento da tabela dispara reload
// completo. Sem diff, sem patch parcial. Erro de reload é logado e
// engolido; a próxima notificação tenta de novo.
func (s *Store[E, P]) Watch(ctx context.Context, feed ChangeFeed) error {
	return feed.Subscribe(ctx, s.table, func(ev Event) {
		log.Printf("📡 [STORE:%s] mudança remota (%s), recarregando", s.table, ev.Op)
		if err := s.Load(ctx); err != nil {
			log.Printf("⚠️ [STORE:%s] reload pós-evento falhou: %v", s.table, err)
		}
	})
}
