package game

import "sync"

// Registry maps session ids to live sessions. It is the only structure
// shared across sessions; everything inside a session is owned by that
// session's run loop.
type Registry struct {
	locker   sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Add(s *Session) {
	r.locker.Lock()
	r.sessions[s.id] = s
	r.locker.Unlock()
}

func (r *Registry) Get(id string) (*Session, error) {
	r.locker.RLock()
	s, ok := r.sessions[id]
	r.locker.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) {
	r.locker.Lock()
	delete(r.sessions, id)
	r.locker.Unlock()
}

func (r *Registry) Len() int {
	r.locker.RLock()
	defer r.locker.RUnlock()
	return len(r.sessions)
}
