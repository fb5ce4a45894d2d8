package models

import "time"

// Event is a workshop, hackathon or meetup listed on the activities page.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription"`
	Date            string    `json:"date"`
	Category        string    `json:"category"`
	Image           string    `json:"image"`
	Instructor      string    `json:"instructor"`
	Duration        string    `json:"duration"`
	Level           string    `json:"level"`
	MaxParticipants *int      `json:"maxParticipants"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (e Event) Key() string { return e.ID }

// EventInput is the insertable event shape.
type EventInput struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	FullDescription string `json:"fullDescription" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Category        string `json:"category" validate:"required"`
	Image           string `json:"image" validate:"required"`
	Instructor      string `json:"instructor" validate:"required"`
	Duration        string `json:"duration" validate:"required"`
	Level           string `json:"level" validate:"required"`
	MaxParticipants *int   `json:"maxParticipants" validate:"omitempty,min=1"`
}

func (in EventInput) Build(id string, at time.Time) Event {
	return Event{
		ID:              id,
		Title:           in.Title,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		Date:            in.Date,
		Category:        in.Category,
		Image:           in.Image,
		Instructor:      in.Instructor,
		Duration:        in.Duration,
		Level:           in.Level,
		MaxParticipants: copyPtr(in.MaxParticipants),
		CreatedAt:       at,
	}
}

// EventPatch is the partial event shape accepted by PUT.
type EventPatch struct {
	Title           *string `json:"title" validate:"omitempty,min=1"`
	Description     *string `json:"description" validate:"omitempty,min=1"`
	FullDescription *string `json:"fullDescription" validate:"omitempty,min=1"`
	Date            *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Category        *string `json:"category" validate:"omitempty,min=1"`
	Image           *string `json:"image" validate:"omitempty,min=1"`
	Instructor      *string `json:"instructor" validate:"omitempty,min=1"`
	Duration        *string `json:"duration" validate:"omitempty,min=1"`
	Level           *string `json:"level" validate:"omitempty,min=1"`
	MaxParticipants *int    `json:"maxParticipants" validate:"omitempty,min=1"`
}

func (p EventPatch) Apply(e Event) Event {
	set(&e.Title, p.Title)
	set(&e.Description, p.Description)
	set(&e.FullDescription, p.FullDescription)
	set(&e.Date, p.Date)
	set(&e.Category, p.Category)
	set(&e.Image, p.Image)
	set(&e.Instructor, p.Instructor)
	set(&e.Duration, p.Duration)
	set(&e.Level, p.Level)
	if p.MaxParticipants != nil {
		e.MaxParticipants = copyPtr(p.MaxParticipants)
	}
	return e
}
