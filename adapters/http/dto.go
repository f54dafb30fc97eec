package http

import (
	"time"

	"github.com/ojunaidi/portfolio/internal/domain/about"
	"github.com/ojunaidi/portfolio/internal/domain/experience"
	"github.com/ojunaidi/portfolio/internal/domain/project"
	"github.com/ojunaidi/portfolio/internal/domain/skill"
	"github.com/ojunaidi/portfolio/internal/domain/tag"
	"github.com/ojunaidi/portfolio/internal/domain/userinfo"
)

// Field names follow the public wire format the pages consume: camelCase,
// date fields as plain strings.

// UserInfo DTOs

type UserInfoDTO struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	JobTitle  string    `json:"jobTitle"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	BirthDate string    `json:"birthDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpdateUserInfoRequest struct {
	FullName  string `json:"fullName"`
	JobTitle  string `json:"jobTitle"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	BirthDate string `json:"birthDate"`
}

func ToUserInfoDTO(u *userinfo.UserInfo) UserInfoDTO {
	return UserInfoDTO{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		JobTitle:  u.JobTitle,
		Email:     u.Email,
		Phone:     u.Phone,
		Location:  u.Location,
		BirthDate: u.BirthDate,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// About DTOs

type AboutDTO struct {
	ID         string    `json:"id"`
	MainIntro  string    `json:"mainIntro"`
	Paragraph1 string    `json:"paragraph1"`
	Paragraph2 string    `json:"paragraph2"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UpdateAboutRequest struct {
	MainIntro  string `json:"mainIntro"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
}

func ToAboutDTO(a *about.About) AboutDTO {
	return AboutDTO{
		ID:         a.ID.String(),
		MainIntro:  a.MainIntro,
		Paragraph1: a.Paragraph1,
		Paragraph2: a.Paragraph2,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// Skill DTOs

type SkillDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

func ToSkillDTO(s *skill.Skill) SkillDTO {
	return SkillDTO{
		ID:        s.ID.String(),
		Name:      s.Name,
		Category:  s.Category,
		Icon:      s.Icon,
		SortOrder: s.SortOrder,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Experience DTOs

type ExperienceDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	IsCurrent   bool      `json:"isCurrent"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateExperienceRequest struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	IsCurrent   bool    `json:"isCurrent"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID.String(),
		Title:       e.Title,
		Company:     e.Company,
		Description: e.Description,
		IsCurrent:   e.IsCurrent,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		SortOrder:   e.SortOrder,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Project DTOs

type TagDTO struct {
	ID        string `json:"id"`
	Tag       string `json:"tag"`
	ProjectID string `json:"projectId"`
}

type ProjectDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	URL         *string   `json:"url"`
	SortOrder   int       `json:"sortOrder"`
	Tags        []TagDTO  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	URL         *string  `json:"url"`
	Tags        []string `json:"tags"`
}

func ToProjectDTO(p *project.Project, tags []tag.Tag) ProjectDTO {
	tagDTOs := make([]TagDTO, len(tags))
	for i, t := range tags {
		tagDTOs[i] = TagDTO{
			ID:        t.ID.String(),
			Tag:       t.Tag,
			ProjectID: t.ProjectID.String(),
		}
	}
	return ProjectDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		URL:         p.URL,
		SortOrder:   p.SortOrder,
		Tags:        tagDTOs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
