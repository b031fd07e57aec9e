package v1

import (
	"time"

	"go-resume-builder/internal/domain"
)

const dateLayout = "2006-01-02"

// Resource shapes returned to clients. Child collection fields are slice
// pointers: nil means the collection was not loaded and is omitted from the
// JSON entirely, while a loaded-but-empty collection serializes as [].

type ResumeResource struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  *string   `json:"location"`
	Linkedin  *string   `json:"linkedin"`
	Github    *string   `json:"github"`
	Summary   *string   `json:"summary"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Experiences    *[]ExperienceResource    `json:"experiences,omitempty"`
	Projects       *[]ProjectResource       `json:"projects,omitempty"`
	Skills         *[]SkillResource         `json:"skills,omitempty"`
	Educations     *[]EducationResource     `json:"educations,omitempty"`
	Certifications *[]CertificationResource `json:"certifications,omitempty"`
}

type ExperienceResource struct {
	ID               int64     `json:"id"`
	ResumeID         int64     `json:"resume_id"`
	JobTitle         string    `json:"job_title"`
	Company          string    `json:"company"`
	StartDate        string    `json:"start_date"`
	EndDate          *string   `json:"end_date"`
	CurrentlyWorking bool      `json:"currently_working"`
	Description      string    `json:"description"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ProjectResource struct {
	ID           int64     `json:"id"`
	ResumeID     int64     `json:"resume_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	Link         *string   `json:"link"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SkillResource struct {
	ID        int64     `json:"id"`
	ResumeID  int64     `json:"resume_id"`
	Category  string    `json:"category"`
	Items     string    `json:"items"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EducationResource struct {
	ID             int64     `json:"id"`
	ResumeID       int64     `json:"resume_id"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"field_of_study"`
	School         string    `json:"school"`
	GraduationYear int       `json:"graduation_year"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CertificationResource struct {
	ID        int64     `json:"id"`
	ResumeID  int64     `json:"resume_id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	Date      string    `json:"date"`
	Link      *string   `json:"link"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newResumeResource(r *domain.Resume) ResumeResource {
	return ResumeResource{
		ID:        r.ID,
		Title:     r.Title,
		Email:     r.Email,
		Phone:     r.Phone,
		Location:  r.Location,
		Linkedin:  r.Linkedin,
		Github:    r.Github,
		Summary:   r.Summary,
		IsDefault: r.IsDefault,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newResumeWithSectionsResource(r *domain.ResumeWithSections) ResumeResource {
	res := newResumeResource(&r.Resume)

	experiences := make([]ExperienceResource, 0, len(r.Experiences))
	for i := range r.Experiences {
		experiences = append(experiences, newExperienceResource(&r.Experiences[i]))
	}
	res.Experiences = &experiences

	projects := make([]ProjectResource, 0, len(r.Projects))
	for i := range r.Projects {
		projects = append(projects, newProjectResource(&r.Projects[i]))
	}
	res.Projects = &projects

	skills := make([]SkillResource, 0, len(r.Skills))
	for i := range r.Skills {
		skills = append(skills, newSkillResource(&r.Skills[i]))
	}
	res.Skills = &skills

	educations := make([]EducationResource, 0, len(r.Educations))
	for i := range r.Educations {
		educations = append(educations, newEducationResource(&r.Educations[i]))
	}
	res.Educations = &educations

	certifications := make([]CertificationResource, 0, len(r.Certifications))
	for i := range r.Certifications {
		certifications = append(certifications, newCertificationResource(&r.Certifications[i]))
	}
	res.Certifications = &certifications

	return res
}

func newExperienceResource(e *domain.Experience) ExperienceResource {
	var endDate *string
	if e.EndDate != nil {
		s := e.EndDate.Format(dateLayout)
		endDate = &s
	}
	return ExperienceResource{
		ID:               e.ID,
		ResumeID:         e.ResumeID,
		JobTitle:         e.JobTitle,
		Company:          e.Company,
		StartDate:        e.StartDate.Format(dateLayout),
		EndDate:          endDate,
		CurrentlyWorking: e.CurrentlyWorking,
		Description:      e.Description,
		Order:            e.Order,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func newProjectResource(p *domain.Project) ProjectResource {
	return ProjectResource{
		ID:           p.ID,
		ResumeID:     p.ResumeID,
		Name:         p.Name,
		Description:  p.Description,
		Technologies: p.Technologies,
		Link:         p.Link,
		Order:        p.Order,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newSkillResource(s *domain.Skill) SkillResource {
	return SkillResource{
		ID:        s.ID,
		ResumeID:  s.ResumeID,
		Category:  s.Category,
		Items:     s.Items,
		Order:     s.Order,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func newEducationResource(e *domain.Education) EducationResource {
	return EducationResource{
		ID:             e.ID,
		ResumeID:       e.ResumeID,
		Degree:         e.Degree,
		FieldOfStudy:   e.FieldOfStudy,
		School:         e.School,
		GraduationYear: e.GraduationYear,
		Order:          e.Order,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func newCertificationResource(c *domain.Certification) CertificationResource {
	return CertificationResource{
		ID:        c.ID,
		ResumeID:  c.ResumeID,
		Name:      c.Name,
		Issuer:    c.Issuer,
		Date:      c.Date.Format(dateLayout),
		Link:      c.Link,
		Order:     c.Order,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
