package models

import "time"

// Publication is a research paper or article by a member.
type Publication struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Image         string     `json:"image"`
	PublishedDate string     `json:"publishedDate"`
	Tags          StringList `json:"tags"`
	PDFURL        *string    `json:"pdfUrl"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (p Publication) Key() string { return p.ID }

type PublicationInput struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	Author        string     `json:"author" validate:"required"`
	Category      string     `json:"category" validate:"required"`
	Image         string     `json:"image" validate:"required"`
	PublishedDate string     `json:"publishedDate" validate:"required,datetime=2006-01-02"`
	Tags          StringList `json:"tags" validate:"required,dive,required"`
	PDFURL        *string    `json:"pdfUrl" validate:"omitempty,url"`
}

func (in PublicationInput) Build(id string, at time.Time) Publication {
	return Publication{
		ID:            id,
		Title:         in.Title,
		Description:   in.Description,
		Content:       in.Content,
		Author:        in.Author,
		Category:      in.Category,
		Image:         in.Image,
		PublishedDate: in.PublishedDate,
		Tags:          in.Tags.clone(),
		PDFURL:        copyPtr(in.PDFURL),
		CreatedAt:     at,
	}
}

type PublicationPatch struct {
	Title         *string     `json:"title" validate:"omitempty,min=1"`
	Description   *string     `json:"description" validate:"omitempty,min=1"`
	Content       *string     `json:"content" validate:"omitempty,min=1"`
	Author        *string     `json:"author" validate:"omitempty,min=1"`
	Category      *string     `json:"category" validate:"omitempty,min=1"`
	Image         *string     `json:"image" validate:"omitempty,min=1"`
	PublishedDate *string     `json:"publishedDate" validate:"omitempty,datetime=2006-01-02"`
	Tags          *StringList `json:"tags" validate:"omitempty,dive,required"`
	PDFURL        *string     `json:"pdfUrl" validate:"omitempty,url"`
}

func (p PublicationPatch) Apply(pub Publication) Publication {
	set(&pub.Title, p.Title)
	set(&pub.Description, p.Description)
	set(&pub.Content, p.Content)
	set(&pub.Author, p.Author)
	set(&pub.Category, p.Category)
	set(&pub.Image, p.Image)
	set(&pub.PublishedDate, p.PublishedDate)
	if p.Tags != nil {
		pub.Tags = p.Tags.clone()
	}
	if p.PDFURL != nil {
		pub.PDFURL = copyPtr(p.PDFURL)
	}
	return pub
}
