package view

// Content is the declarative payload rendered into the page. It carries no
// behavior.
type Content struct {
	FirstName    string
	LastName     string
	Roles        []string
	Intro        string
	About        string
	ProfileImage string
	Email        string
	GitHub       string
	LinkedIn     string
	Location     string

	Skills     []SkillCategory
	Projects   []Project
	Experience []Position
	Education  []Position
	Leadership []Position
}

// SkillCategory groups related skills under one heading.
type SkillCategory struct {
	Title  string
	Icon   string
	Skills []string
}

// Project is one portfolio project card.
type Project struct {
	Title string
	Desc  string
	Tech  []string
	Icon  string
	Live  string
	Code  string
}

// Position is a job, degree, certification or leadership role.
type Position struct {
	Title        string
	Organization string
	Start        string
	End          string
	Logo         string
	Bullets      []string
}

// Dates formats the position's date range.
func (p Position) Dates() string {
	switch {
	case p.Start == "" && p.End == "":
		return ""
	case p.End == "":
		return p.Start
	default:
		return p.Start + " – " + p.End
	}
}
