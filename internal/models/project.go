package models

import "time"

// Project statuses.
const (
	ProjectActive     = "Active"
	ProjectInProgress = "In Progress"
	ProjectCompleted  = "Completed"
)

// Project is a member project showcased on the activities page.
type Project struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	FullDescription string     `json:"fullDescription"`
	Category        string     `json:"category"`
	Image           string     `json:"image"`
	Technologies    StringList `json:"technologies"`
	GithubURL       *string    `json:"githubUrl"`
	DemoURL         *string    `json:"demoUrl"`
	Author          string     `json:"author"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (p Project) Key() string { return p.ID }

// ProjectInput is the insertable project shape.
type ProjectInput struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	FullDescription string     `json:"fullDescription" validate:"required"`
	Category        string     `json:"category" validate:"required"`
	Image           string     `json:"image" validate:"required"`
	Technologies    StringList `json:"technologies" validate:"required,dive,required"`
	GithubURL       *string    `json:"githubUrl" validate:"omitempty,url"`
	DemoURL         *string    `json:"demoUrl" validate:"omitempty,url"`
	Author          string     `json:"author" validate:"required"`
	Status          string     `json:"status" validate:"omitempty,oneof=Active 'In Progress' Completed"`
}

func (in ProjectInput) Build(id string, at time.Time) Project {
	status := in.Status
	if status == "" {
		status = ProjectActive
	}
	return Project{
		ID:              id,
		Title:           in.Title,
		Description:     in.Description,
		FullDescription: in.FullDescription,
		Category:        in.Category,
		Image:           in.Image,
		Technologies:    in.Technologies.clone(),
		GithubURL:       copyPtr(in.GithubURL),
		DemoURL:         copyPtr(in.DemoURL),
		Author:          in.Author,
		Status:          status,
		CreatedAt:       at,
	}
}

// ProjectPatch is the partial project shape accepted by PUT.
type ProjectPatch struct {
	Title           *string     `json:"title" validate:"omitempty,min=1"`
	Description     *string     `json:"description" validate:"omitempty,min=1"`
	FullDescription *string     `json:"fullDescription" validate:"omitempty,min=1"`
	Category        *string     `json:"category" validate:"omitempty,min=1"`
	Image           *string     `json:"image" validate:"omitempty,min=1"`
	Technologies    *StringList `json:"technologies" validate:"omitempty,dive,required"`
	GithubURL       *string     `json:"githubUrl" validate:"omitempty,url"`
	DemoURL         *string     `json:"demoUrl" validate:"omitempty,url"`
	Author          *string     `json:"author" validate:"omitempty,min=1"`
	Status          *string     `json:"status" validate:"omitempty,oneof=Active 'In Progress' Completed"`
}

func (p ProjectPatch) Apply(pr Project) Project {
	set(&pr.Title, p.Title)
	set(&pr.Description, p.Description)
	set(&pr.FullDescription, p.FullDescription)
	set(&pr.Category, p.Category)
	set(&pr.Image, p.Image)
	if p.Technologies != nil {
		pr.Technologies = p.Technologies.clone()
	}
	if p.GithubURL != nil {
		pr.GithubURL = copyPtr(p.GithubURL)
	}
	if p.DemoURL != nil {
		pr.DemoURL = copyPtr(p.DemoURL)
	}
	set(&pr.Author, p.Author)
	set(&pr.Status, p.Status)
	return pr
}
