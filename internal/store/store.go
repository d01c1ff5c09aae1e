// Package store mantém coleções em memória sincronizadas com o banco:
// fetch inicial, mutação confirmada pelo remoto, e reload disparado pelo
// change feed. Uma instância por tabela (leads, partners, clients,
// interactions).
package store

import (
	"context"
	"log"
	"strings"
	"sync"
)

// Entity é qualquer registro identificado pelo id atribuído no insert.
type Entity interface {
	EntityID() string
}

// Repository é o lado remoto do Store. E é a entidade completa,
// P o patch parcial da edição.
type Repository[E Entity, P any] interface {
	// SelectAll retorna todas as linhas ordenadas por created_at DESC,
	// já mapeadas para o formato interno.
	SelectAll(ctx context.Context) ([]E, error)

	// Insert grava o draft e devolve a linha criada (id e timestamps
	// vêm do banco).
	Insert(ctx context.Context, draft E) (E, error)

	// Update aplica só os campos presentes no patch à linha do id.
	Update(ctx context.Context, id string, patch P) error

	Delete(ctx context.Context, id string) error
}

type Store[E Entity, P any] struct {
	table      string
	repo       Repository[E, P]
	merge      func(E, P) E
	searchText func(E) []string

	mu      sync.RWMutex
	list    []E
	loading bool
	lastErr string
}

func New[E Entity, P any](table string, repo Repository[E, P], merge func(E, P) E, searchText func(E) []string) *Store[E, P] {
	return &Store[E, P]{
		table:      table,
		repo:       repo,
		merge:      merge,
		searchText: searchText,
	}
}

func (s *Store[E, P]) Table() string { return s.table }

// Load busca tudo e substitui a lista inteira de uma vez. Em caso de erro
// a lista anterior fica intacta (stale-but-available). Loads concorrentes
// não se excluem: vence o último a terminar.
func (s *Store[E, P]) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	rows, err := s.repo.SelectAll(ctx)
	if err != nil {
		s.fail("load", err)
		return err
	}

	s.mu.Lock()
	s.list = rows
	s.mu.Unlock()
	return nil
}

// Refresh é o reload manual exposto pra UI.
func (s *Store[E, P]) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Create insere no remoto e, só depois do ack, põe a entidade criada no
// topo da lista (ordenação created-desc preservada). Falha = nenhuma
// mutação local.
func (s *Store[E, P]) Create(ctx context.Context, draft E) (E, error) {
	created, err := s.repo.Insert(ctx, draft)
	if err != nil {
		s.fail("create", err)
		var zero E
		return zero, err
	}

	s.mu.Lock()
	s.list = append([]E{created}, s.list...)
	s.mu.Unlock()
	return created, nil
}

// Update grava o patch no remoto e, no sucesso, aplica o mesmo patch por
// shallow merge na entidade local, sem refetch da linha. O bool indica se
// o id estava na lista; quando não estava, o remoto foi atualizado mesmo
// assim e o reload do feed reconcilia depois.
func (s *Store[E, P]) Update(ctx context.Context, id string, patch P) (E, bool, error) {
	var zero E

	if err := s.repo.Update(ctx, id, patch); err != nil {
		s.fail("update", err)
		return zero, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.list {
		if e.EntityID() == id {
			s.list[i] = s.merge(e, patch)
			return s.list[i], true, nil
		}
	}
	return zero, false, nil
}

// Delete remove no remoto e, no sucesso, tira a entidade da lista.
// Id ausente da lista é no-op local (a chamada remota acontece igual).
func (s *Store[E, P]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.fail("delete", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.list {
		if e.EntityID() == id {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			break
		}
	}
	return nil
}

// Get é lookup síncrono na lista atual; ausência não é erro.
func (s *Store[E, P]) Get(id string) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.list {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// List devolve uma cópia da lista na ordem atual.
func (s *Store[E, P]) List() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, len(s.list))
	copy(out, s.list)
	return out
}

// Search faz substring match case-insensitive sobre o conjunto fixo de
// campos da entidade. Não toca no remoto.
func (s *Store[E, P]) Search(query string) []E {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []E
	for _, e := range s.list {
		for _, field := range s.searchText(e) {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Filter devolve as entidades que satisfazem o predicado, na ordem atual.
func (s *Store[E, P]) Filter(pred func(E) bool) []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []E
	for _, e := range s.list {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store[E, P]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError guarda a mensagem da falha remota mais recente, pra exibição
// passiva na UI. Sucesso não limpa; só uma falha mais nova sobrescreve.
func (s *Store[E, P]) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store[E, P]) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store[E, P]) fail(op string, err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	log.Printf("❌ [STORE:%s] %s falhou: %v", s.table, op, err)
}
