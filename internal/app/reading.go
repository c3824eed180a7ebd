package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/henryperkins/Tarot-Master/internal/catalog"
	"github.com/henryperkins/Tarot-Master/internal/domain"
	"github.com/henryperkins/Tarot-Master/internal/entitlement"
	"github.com/henryperkins/Tarot-Master/internal/ports"
)

// StartRequest is the application-level input for a new reading.
type StartRequest struct {
	SpreadID string
	Question string
	Tier     entitlement.Tier
}

// Session is one in-progress reading. A session reaches the journal
// only once every position has been revealed.
type Session struct {
	ID        string
	Tier      entitlement.Tier
	Draw      *domain.Draw
	CreatedAt time.Time
	persisted bool
}

// ReadingService orchestrates draw creation, progressive reveal,
// journal persistence and narrative generation.
type ReadingService struct {
	catalog  *catalog.Catalog
	journal  ports.JournalStore
	narrator ports.Narrator
	rng      domain.RNG
	drawOpts []domain.DrawOption
	logger   *slog.Logger

	// Guards sessions and all draw mutation. The draw engine itself is
	// not thread-safe; serializing access is this layer's job.
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewReadingService(cat *catalog.Catalog, journal ports.JournalStore, narrator ports.Narrator, rng domain.RNG, logger *slog.Logger, drawOpts ...domain.DrawOption) *ReadingService {
	return &ReadingService{
		catalog:  cat,
		journal:  journal,
		narrator: narrator,
		rng:      rng,
		drawOpts: drawOpts,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// StartReading gates the spread against the caller's tier, then draws.
// An unknown spread id falls back to the default spread.
func (s *ReadingService) StartReading(ctx context.Context, req StartRequest) (*Session, error) {
	spread, ok := s.catalog.SpreadByID(req.SpreadID)
	if !ok {
		spread = s.catalog.DefaultSpread()
		s.logger.WarnContext(ctx, "unknown spread, using default",
			"requested", req.SpreadID, "spread", spread.ID)
	}

	tier := entitlement.Lookup(req.Tier)
	if !tier.CanUseSpread(spread.ID) {
		return nil, fmt.Errorf("spread %s: %w", spread.ID, domain.ErrSpreadNotAllowed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draw, err := domain.NewDraw(spread, s.catalog.Cards(), req.Question, s.rng, s.drawOpts...)
	if err != nil {
		return nil, fmt.Errorf("new draw: %w", err)
	}

	session := &Session{
		ID:        uuid.NewString(),
		Tier:      tier.Tier,
		Draw:      draw,
		CreatedAt: time.Now().UTC(),
	}
	s.sessions[session.ID] = session

	s.logger.InfoContext(ctx, "reading started",
		"reading_id", session.ID, "spread", spread.ID, "tier", tier.Tier)
	return session, nil
}

// Session returns the in-progress reading with the given id.
func (s *ReadingService) Session(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrReadingNotFound
	}
	return session, nil
}

// Reveal flips one position face up. Completing the last position
// persists the reading to the journal.
func (s *ReadingService) Reveal(ctx context.Context, id string, positionID int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrReadingNotFound
	}
	if err := session.Draw.Reveal(positionID); err != nil {
		return nil, err
	}
	if err := s.persistIfComplete(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RevealAll flips every position face up and persists the reading.
func (s *ReadingService) RevealAll(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrReadingNotFound
	}
	session.Draw.RevealAll()
	if err := s.persistIfComplete(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// persistIfComplete saves the session to the journal the first time the
// draw completes. Reveal is idempotent, so the flag keeps repeat calls
// from writing twice. Caller holds s.mu.
func (s *ReadingService) persistIfComplete(ctx context.Context, session *Session) error {
	if session.persisted || !session.Draw.IsComplete() {
		return nil
	}
	rec := toRecord(session)
	if err := s.journal.SaveReading(ctx, rec); err != nil {
		return fmt.Errorf("save reading: %w", err)
	}
	session.persisted = true
	s.logger.InfoContext(ctx, "reading complete",
		"reading_id", session.ID, "spread", session.Draw.Spread.ID)
	return nil
}

// Narrative generates and attaches the LLM narrative for a completed
// reading. A reading gets exactly one narrative.
func (s *ReadingService) Narrative(ctx context.Context, id string) (string, error) {
	rec, err := s.journal.GetReading(ctx, id)
	if err != nil {
		// An in-memory session that has not completed yet is a clearer
		// failure than not-found.
		if _, serr := s.Session(id); serr == nil {
			return "", domain.ErrReadingIncomplete
		}
		return "", err
	}
	if rec.Narrative != "" {
		return "", domain.ErrNarrativeExists
	}

	spreadName := rec.SpreadID
	if spread, ok := s.catalog.SpreadByID(rec.SpreadID); ok {
		spreadName = spread.Name
	}

	start := time.Now()
	narrative, err := s.narrator.Narrate(ctx, ports.NarrateInput{
		SpreadName: spreadName,
		Question:   rec.Question,
		Cards:      rec.Cards,
	})
	if err != nil {
		return "", fmt.Errorf("narrate: %w", err)
	}

	if err := s.journal.AttachNarrative(ctx, id, narrative); err != nil {
		return "", fmt.Errorf("attach narrative: %w", err)
	}

	s.logger.InfoContext(ctx, "narrative attached",
		"reading_id", id, "latency_ms", time.Since(start).Milliseconds())
	return narrative, nil
}

// Journal returns stored readings, newest first.
func (s *ReadingService) Journal(ctx context.Context, f ports.ListFilter) ([]ports.ReadingRecord, error) {
	return s.journal.ListReadings(ctx, f)
}

// JournalEntry returns one stored reading.
func (s *ReadingService) JournalEntry(ctx context.Context, id string) (ports.ReadingRecord, error) {
	return s.journal.GetReading(ctx, id)
}

// UpdateEntry edits the notes or favorite flag of a stored reading.
func (s *ReadingService) UpdateEntry(ctx context.Context, id string, upd ports.EntryUpdate) (ports.ReadingRecord, error) {
	return s.journal.UpdateEntry(ctx, id, upd)
}

// DeleteEntry removes a reading from the journal and drops any
// lingering session state.
func (s *ReadingService) DeleteEntry(ctx context.Context, id string) error {
	if err := s.journal.DeleteReading(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func toRecord(session *Session) ports.ReadingRecord {
	draw := session.Draw
	cards := make([]ports.CardRecord, len(draw.Cards))
	for i, dc := range draw.Cards {
		name := ""
		if pos, ok := draw.Spread.Position(dc.PositionID); ok {
			name = pos.Name
		}
		cards[i] = ports.CardRecord{
			CardID:       dc.Card.ID,
			CardName:     dc.Card.Name,
			PositionID:   dc.PositionID,
			PositionName: name,
			Reversed:     dc.Reversed,
			Meaning:      dc.Card.Meaning(dc.Reversed),
		}
	}
	now := time.Now().UTC()
	return ports.ReadingRecord{
		ID:        session.ID,
		SpreadID:  draw.Spread.ID,
		Question:  draw.Question,
		Cards:     cards,
		CreatedAt: session.CreatedAt,
		UpdatedAt: now,
	}
}
