package models

import "time"

// Resource types.
const (
	ResourceVideos   = "videos"
	ResourcePDFs     = "pdfs"
	ResourceArticles = "articles"
	ResourceCourses  = "courses"
)

// Resource is a learning resource on the learning page.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Duration    string    `json:"duration"`
	Level       string    `json:"level"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r Resource) Key() string { return r.ID }

type ResourceInput struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=videos pdfs articles courses"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Link        string `json:"link" validate:"required"`
}

func (in ResourceInput) Build(id string, at time.Time) Resource {
	return Resource{
		ID:          id,
		Title:       in.Title,
		Type:        in.Type,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Duration:    in.Duration,
		Level:       in.Level,
		Link:        in.Link,
		CreatedAt:   at,
	}
}

type ResourcePatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=videos pdfs articles courses"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Image       *string `json:"image" validate:"omitempty,min=1"`
	Duration    *string `json:"duration" validate:"omitempty,min=1"`
	Level       *string `json:"level" validate:"omitempty,min=1"`
	Link        *string `json:"link" validate:"omitempty,min=1"`
}

func (p ResourcePatch) Apply(r Resource) Resource {
	set(&r.Title, p.Title)
	set(&r.Type, p.Type)
	set(&r.Category, p.Category)
	set(&r.Description, p.Description)
	set(&r.Image, p.Image)
	set(&r.Duration, p.Duration)
	set(&r.Level, p.Level)
	set(&r.Link, p.Link)
	return r
}
