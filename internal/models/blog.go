package models

import "time"

// Blog is a member blog post. Unpublished posts are still listed; the client
// decides what to show.
type Blog struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Image         string     `json:"image"`
	PublishedDate string     `json:"publishedDate"`
	Tags          StringList `json:"tags"`
	ReadTime      string     `json:"readTime"`
	IsPublished   bool       `json:"isPublished"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (b Blog) Key() string { return b.ID }

type BlogInput struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	Category      string     `json:"category" validate:"required"`
	Image         string     `json:"image" validate:"required"`
	PublishedDate string     `json:"publishedDate" validate:"required,datetime=2006-01-02"`
	Tags          StringList `json:"tags" validate:"required,dive,required"`
	ReadTime      string     `json:"readTime" validate:"required"`
	IsPublished   *bool      `json:"isPublished"`
}

func (in BlogInput) Build(id string, at time.Time) Blog {
	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}
	return Blog{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Content:       in.Content,
		Author:        in.Author,
		Category:      in.Category,
		Image:         in.Image,
		PublishedDate: in.PublishedDate,
		Tags:          in.Tags.clone(),
		ReadTime:      in.ReadTime,
		IsPublished:   published,
		CreatedAt:     at,
	}
}

type BlogPatch struct {
	Title         *string     `json:"title" validate:"omitempty,min=1"`
	Description   *string     `json:"description" validate:"omitempty,min=1"`
	Content       *string     `json:"content" validate:"omitempty,min=1"`
	Author        *string     `json:"author" validate:"omitempty,min=1"`
	Category      *string     `json:"category" validate:"omitempty,min=1"`
	Image         *string     `json:"image" validate:"omitempty,min=1"`
	PublishedDate *string     `json:"publishedDate" validate:"omitempty,datetime=2006-01-02"`
	Tags          *StringList `json:"tags" validate:"omitempty,dive,required"`
	ReadTime      *string     `json:"readTime" validate:"omitempty,min=1"`
	IsPublished   *bool       `json:"isPublished"`
}

func (p BlogPatch) Apply(b Blog) Blog {
	set(&b.Title, p.Title)
	set(&b.Description, p.Description)
	set(&b.Content, p.Content)
	set(&b.Author, p.Author)
	set(&b.Category, p.Category)
	set(&b.Image, p.Image)
	set(&b.PublishedDate, p.PublishedDate)
	if p.Tags != nil {
		b.Tags = p.Tags.clone()
	}
	set(&b.ReadTime, p.ReadTime)
	set(&b.IsPublished, p.IsPublished)
	return b
}
