package tickets

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/metrics"
)

// Service — журнал обращений.
// id — миллисекунды времени создания, строго возрастающие внутри журнала.
type Service struct {
	repo *Repository
	loc  *time.Location
	now  func() time.Time

	mu     sync.Mutex
	list   []Ticket
	lastID int64
}

// NewService создаёт журнал. Время обращений пишется в loc.
func NewService(repo *Repository, loc *time.Location) *Service {
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
		list: []Ticket{},
	}
}

// Load подтягивает обращения из хранилища.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = s.repo.Load(ctx)
	s.lastID = 0
	for _, t := range s.list {
		if id, err := strconv.ParseInt(t.ID, 10, 64); err == nil && id > s.lastID {
			s.lastID = id
		}
	}
	s.observe()
	log.WithField("count", len(s.list)).Info("Тикеты загружены")
}

// Create добавляет новое открытое обращение.
func (s *Service) Create(ctx context.Context, r Requester, cat Category, text string) (Ticket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Ticket{}, common.ErrEmptyInput
	}
	if _, err := ParseCategory(string(cat)); err != nil {
		return Ticket{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	t := Ticket{
		ID:        strconv.FormatInt(id, 10),
		UserID:    r.ID,
		UserLink:  r.Link(),
		Category:  cat,
		Message:   text,
		Timestamp: common.FormatTimestamp(now, s.loc),
	}
	s.list = append(s.list, t)
	s.repo.Save(ctx, s.list)
	s.observe()

	log.WithFields(log.Fields{
		"ticket_id": t.ID,
		"user_id":   r.ID,
		"category":  cat,
	}).Info("Создан тикет")
	return t, nil
}

// Close закрывает первое открытое обращение с данным id и возвращает его автора.
func (s *Service) Close(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id && !s.list[i].Closed {
			s.list[i].Closed = true
			s.repo.Save(ctx, s.list)
			s.observe()
			log.WithField("ticket_id", id).Info("Тикет закрыт")
			return s.list[i].UserID, nil
		}
	}
	return 0, common.ErrTicketNotFound
}

// PurgeClosed удаляет закрытые обращения, открытые остаются в прежнем порядке.
func (s *Service) PurgeClosed(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	open := make([]Ticket, 0, len(s.list))
	for _, t := range s.list {
		if !t.Closed {
			open = append(open, t)
		}
	}
	removed := len(s.list) - len(open)
	s.list = open
	s.repo.Save(ctx, s.list)

	log.WithField("removed", removed).Info("Закрытые тикеты удалены")
	return removed
}

// List возвращает копию журнала.
func (s *Service) List() []Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Ticket(nil), s.list...)
}

// CountOpen — число открытых обращений.
func (s *Service) CountOpen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countOpen()
}

// Requesters — ссылки на авторов в порядке первого обращения, без повторов.
func (s *Service) Requesters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{})
	var links []string
	for _, t := range s.list {
		if _, ok := seen[t.UserID]; ok {
			continue
		}
		seen[t.UserID] = struct{}{}
		links = append(links, t.UserLink)
	}
	return links
}

func (s *Service) countOpen() int {
	n := 0
	for _, t := range s.list {
		if !t.Closed {
			n++
		}
	}
	return n
}

func (s *Service) observe() {
	metrics.OpenTickets.Set(float64(s.countOpen()))
}
