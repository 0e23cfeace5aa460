package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"rik-restaurant/restaurant-svc/internal/domain"
)

const MinMessageLength = 10

type MessageService struct {
	repo      InquiryRepository
	publisher EventPublisher
}

func NewMessageService(repo InquiryRepository, publisher EventPublisher) *MessageService {
	return &MessageService{repo: repo, publisher: publisher}
}

func validateInquiry(draft domain.InquiryDraft) error {
	if blank(draft.Name) {
		return invalid("name", "is required")
	}
	if blank(draft.Email) {
		return invalid("email", "is required")
	}
	if !validEmail(draft.Email) {
		return invalid("email", "please enter a valid email")
	}
	if blank(draft.Subject) {
		return invalid("subject", "is required")
	}
	if blank(draft.Message) {
		return invalid("message", "is required")
	}
	if utf8.RuneCountInString(draft.Message) < MinMessageLength {
		return invalid("message", fmt.Sprintf("must be at least %d characters", MinMessageLength))
	}
	return nil
}

func (s *MessageService) Submit(ctx context.Context, identity string, draft domain.InquiryDraft) (domain.Inquiry, error) {
	if err := validateInquiry(draft); err != nil {
		return domain.Inquiry{}, err
	}
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		return domain.Inquiry{}, err
	}

	inquiry := domain.Inquiry{
		ID:        newID(),
		Name:      strings.TrimSpace(draft.Name),
		Email:     strings.TrimSpace(draft.Email),
		Subject:   strings.TrimSpace(draft.Subject),
		Message:   draft.Message,
		Date:      time.Now().UTC(),
		Status:    domain.InquiryUnread,
		UserEmail: domain.IdentityOf(identity),
	}
	if err := s.repo.SaveInquiries(ctx, append(inquiries, inquiry)); err != nil {
		return domain.Inquiry{}, fmt.Errorf("save inquiries: %w", err)
	}

	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventInquirySubmitted,
		Identity: inquiry.UserEmail,
		EntityID: inquiry.ID,
		Summary:  inquiry.Subject,
	})
	return inquiry, nil
}

// update applies fn to the inquiry with the given id and persists only when
// something matched.
func (s *MessageService) update(ctx context.Context, id string, fn func(*domain.Inquiry)) (*domain.Inquiry, error) {
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		return nil, err
	}
	var hit *domain.Inquiry
	for i := range inquiries {
		if inquiries[i].ID == id {
			fn(&inquiries[i])
			hit = &inquiries[i]
		}
	}
	if hit == nil {
		return nil, nil
	}
	if err := s.repo.SaveInquiries(ctx, inquiries); err != nil {
		return nil, fmt.Errorf("save inquiries: %w", err)
	}
	return hit, nil
}

func (s *MessageService) MarkRead(ctx context.Context, id string) error {
	_, err := s.update(ctx, id, func(i *domain.Inquiry) { i.Status = domain.InquiryRead })
	return err
}

func (s *MessageService) MarkAllRead(ctx context.Context) error {
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		return err
	}
	for i := range inquiries {
		inquiries[i].Status = domain.InquiryRead
	}
	return s.repo.SaveInquiries(ctx, inquiries)
}

// Reply stores the answer and forces the inquiry to read.
func (s *MessageService) Reply(ctx context.Context, id, text string) error {
	if blank(text) {
		return invalid("reply", "please enter a reply message")
	}
	replied, err := s.update(ctx, id, func(i *domain.Inquiry) {
		i.Reply = &domain.InquiryReply{Text: text, Date: time.Now().UTC()}
		i.Status = domain.InquiryRead
	})
	if err != nil || replied == nil {
		return err
	}
	notify(ctx, s.publisher, domain.Event{
		Type:     domain.EventInquiryReplied,
		Identity: replied.UserEmail,
		EntityID: replied.ID,
		Summary:  replied.Subject,
	})
	return nil
}

func (s *MessageService) Remove(ctx context.Context, id string) error {
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Inquiry, 0, len(inquiries))
	for _, i := range inquiries {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	return s.repo.SaveInquiries(ctx, kept)
}

func (s *MessageService) ListForUser(ctx context.Context, identity string) ([]domain.Inquiry, error) {
	identity = domain.IdentityOf(identity)
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	mine := []domain.Inquiry{}
	for _, i := range all {
		if i.UserEmail == identity {
			mine = append(mine, i)
		}
	}
	return mine, nil
}

// ListAll returns every inquiry, newest first.
func (s *MessageService) ListAll(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.repo.ListInquiries(ctx)
	if err != nil {
		return nil, err
	}
	sorted := make([]domain.Inquiry, len(inquiries))
	copy(sorted, inquiries)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Date.After(sorted[b].Date) })
	return sorted, nil
}

// HasUnseenReply reports whether any of the inquiries has been answered.
func HasUnseenReply(inquiries []domain.Inquiry) bool {
	for _, i := range inquiries {
		if i.Replied() {
			return true
		}
	}
	return false
}
