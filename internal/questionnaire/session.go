// Package questionnaire holds the wizard state machine that collects a
// RawResponse section by section.
package questionnaire

import (
	"errors"

	"soulprint/internal/scoring"
)

// Status of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
)

var (
	ErrSessionSubmitted  = errors.New("questionnaire already submitted")
	ErrNoNextSection     = errors.New("already at the last section")
	ErrNoPreviousSection = errors.New("already at the first section")
	ErrNotAtLastSection  = errors.New("submit is only allowed from the last section")
	ErrNoSections        = errors.New("questionnaire has no sections")
)

// Session is the wizard state: a section index while in progress, and a
// frozen answer snapshot once submitted.
type Session struct {
	RespondentID string
	sections     []scoring.Section
	current      int
	status       Status
	answers      scoring.RawResponse
}

// NewSession starts at the first section.
func NewSession(respondentID string, sections []scoring.Section) (*Session, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	return &Session{
		RespondentID: respondentID,
		sections:     sections,
		status:       StatusInProgress,
		answers:      scoring.RawResponse{},
	}, nil
}

// Restore rebuilds a session from persisted state. An out-of-range index is
// clamped to the section list.
func Restore(respondentID string, sections []scoring.Section, current int, status Status, answers scoring.RawResponse) (*Session, error) {
	s, err := NewSession(respondentID, sections)
	if err != nil {
		return nil, err
	}
	if current < 0 {
		current = 0
	}
	if current >= len(sections) {
		current = len(sections) - 1
	}
	s.current = current
	if status == StatusSubmitted {
		s.status = StatusSubmitted
	}
	if answers != nil {
		s.answers = answers.Clone()
	}
	return s, nil
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) CurrentIndex() int {
	return s.current
}

func (s *Session) CurrentSection() scoring.Section {
	return s.sections[s.current]
}

func (s *Session) SectionCount() int {
	return len(s.sections)
}

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() scoring.RawResponse {
	return s.answers.Clone()
}

// Record merges answers into the draft. Answers for any section are accepted
// so a client can resend an earlier page.
func (s *Session) Record(answers scoring.RawResponse) error {
	if s.status == StatusSubmitted {
		return ErrSessionSubmitted
	}
	s.answers.Merge(answers)
	return nil
}

func (s *Session) Next() error {
	if s.status == StatusSubmitted {
		return ErrSessionSubmitted
	}
	if s.current >= len(s.sections)-1 {
		return ErrNoNextSection
	}
	s.current++
	return nil
}

func (s *Session) Back() error {
	if s.status == StatusSubmitted {
		return ErrSessionSubmitted
	}
	if s.current == 0 {
		return ErrNoPreviousSection
	}
	s.current--
	return nil
}

// Submit freezes the session and returns the snapshot to score.
func (s *Session) Submit() (scoring.RawResponse, error) {
	if s.status == StatusSubmitted {
		return nil, ErrSessionSubmitted
	}
	if s.current != len(s.sections)-1 {
		return nil, ErrNotAtLastSection
	}
	s.status = StatusSubmitted
	return s.answers.Clone(), nil
}

// SectionProgress counts answered questions in one section.
type SectionProgress struct {
	SectionID string `json:"section_id"`
	Title     string `json:"title"`
	Answered  int    `json:"answered"`
	Expected  int    `json:"expected"`
}

// Progress reports answered versus expected questions per section.
func (s *Session) Progress() []SectionProgress {
	out := make([]SectionProgress, 0, len(s.sections))
	for _, sec := range s.sections {
		p := SectionProgress{SectionID: sec.ID, Title: sec.Title, Expected: len(sec.Questions)}
		for _, q := range sec.Questions {
			if _, ok := s.answers[q]; ok {
				p.Answered++
			}
		}
		out = append(out, p)
	}
	return out
}
