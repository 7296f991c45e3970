package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/xtrillion/minerva-site/apimodels"
)

// session holds the widget's two per-session slots: the last query asked
// and the response that answered it. Each new query overwrites both.
type session struct {
	LastQuery    string
	LastResponse *apimodels.DemoResponse
}

// sessionStore keeps sessions in memory only. Nothing is persisted; an
// unknown or absent ID just mints a fresh session.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

// record stores the response for the session and returns the session ID,
// minting one when the caller had none.
func (s *sessionStore) record(id, query string, resp *apimodels.DemoResponse) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	sess.LastQuery = query
	sess.LastResponse = resp
	return id
}

// last returns the most recent response for a session, if any.
func (s *sessionStore) last(id string) (string, *apimodels.DemoResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.LastResponse == nil {
		return "", nil, false
	}
	return sess.LastQuery, sess.LastResponse, true
}
