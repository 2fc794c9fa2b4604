package store

import (
	"strings"
	"sync"

	"janseva/internal/portal/models"
	"janseva/pkg/platform/sentinel"
)

// MemoryStore keeps every record in process memory. Copies go in and out;
// callers never share slices with the store.
type MemoryStore struct {
	mu            sync.RWMutex
	usersByID     map[string]User
	usersByName   map[string]string
	families      map[string]models.FamilyProfile
	schemes       map[string][]models.SchemeEligibility
	notifications map[string][]models.Notification
	documents     map[string][]models.StoredDocument
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByID:     make(map[string]User),
		usersByName:   make(map[string]string),
		families:      make(map[string]models.FamilyProfile),
		schemes:       make(map[string][]models.SchemeEligibility),
		notifications: make(map[string][]models.Notification),
		documents:     make(map[string][]models.StoredDocument),
	}
}

func (s *MemoryStore) CreateUser(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Username)
	if _, exists := s.usersByName[key]; exists {
		return sentinel.ErrConflict
	}
	s.usersByID[user.ID] = user
	s.usersByName[key] = user.ID
	return nil
}

func (s *MemoryStore) UserByUsername(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usersByName[strings.ToLower(username)]
	if !ok {
		return User{}, sentinel.ErrNotFound
	}
	return s.usersByID[id], nil
}

func (s *MemoryStore) UserByID(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByID[id]
	if !ok {
		return User{}, sentinel.ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) CreateFamily(userID string, family models.FamilyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.families[userID]; exists {
		return sentinel.ErrConflict
	}
	s.families[userID] = family
	return nil
}

func (s *MemoryStore) FamilyByUser(userID string) (models.FamilyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	family, ok := s.families[userID]
	if !ok {
		return models.FamilyProfile{}, sentinel.ErrNotFound
	}
	return family, nil
}

func (s *MemoryStore) ReplaceSchemes(userID string, schemes []models.SchemeEligibility) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemes[userID] = append([]models.SchemeEligibility(nil), schemes...)
	return nil
}

func (s *MemoryStore) SchemesByUser(userID string) ([]models.SchemeEligibility, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SchemeEligibility(nil), s.schemes[userID]...), nil
}

// UpdateSchemeStatus moves one scheme to the given status. Only a scheme
// currently marked Eligible may move to Applied.
func (s *MemoryStore) UpdateSchemeStatus(userID, schemeName string, status models.SchemeStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schemes := s.schemes[userID]
	for i, scheme := range schemes {
		if scheme.SchemeName != schemeName {
			continue
		}
		if status == models.StatusApplied && scheme.Status != models.StatusEligible {
			return sentinel.ErrInvalidState
		}
		schemes[i].Status = status
		return nil
	}
	return sentinel.ErrNotFound
}

// AddNotification prepends so the newest notification is always first.
func (s *MemoryStore) AddNotification(userID string, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[userID] = append([]models.Notification{n}, s.notifications[userID]...)
	return nil
}

func (s *MemoryStore) NotificationsByUser(userID string) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications[userID]...), nil
}

func (s *MemoryStore) MarkNotificationRead(userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notifications[userID] {
		if n.ID == notificationID {
			s.notifications[userID][i].Read = true
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *MemoryStore) AddDocument(userID string, doc models.StoredDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[userID] = append(s.documents[userID], doc)
	return nil
}

func (s *MemoryStore) DocumentsByUser(userID string) ([]models.StoredDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StoredDocument(nil), s.documents[userID]...), nil
}
