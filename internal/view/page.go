// Package view renders the portfolio page markup with gomponents. Every
// animated section is emitted in its hidden state and tagged so the
// browser client can observe it.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/reveal"
)

// DOM hooks shared with the wasm client.
const (
	StarsID         = "stars"
	ProgressID      = "scroll-progress"
	ContactFormID   = "contact-form"
	ResumeButtonID  = "resume-download"
	ConfigScriptID  = "engine-config"
	GroupAttr       = "data-reveal-group"
	AmountAttr      = "data-reveal-amount"
	ChildAttr       = "data-reveal-child"
	heroAmount      = 0.4
	sectionAmount   = 0.2
	hiddenChildCSS  = "opacity:0;transform:translateY(%gpx)"
	defaultOffsetPx = 30
)

type group struct {
	name     string
	amount   float64
	class    string
	children []g.Node
}

// Groups returns the reveal groups the page renders, in page order.
func Groups(c Content) []reveal.Group {
	specs := groups(c, config.Client{})
	out := make([]reveal.Group, len(specs))
	for i, s := range specs {
		out[i] = reveal.Group{Name: s.name, Amount: s.amount, Children: len(s.children)}
	}
	return out
}

// Render writes the full page.
func Render(w io.Writer, c Content, cfg config.Client) error {
	return Page(c, cfg, time.Now()).Render(w)
}

// Page builds the page node. now stamps the footer year.
func Page(c Content, cfg config.Client, now time.Time) g.Node {
	offset := cfg.Reveal.Offset
	if offset == 0 {
		offset = defaultOffsetPx
	}
	name := c.FirstName + " " + c.LastName

	sections := groups(c, cfg)
	body := []g.Node{
		h.Class("portfolio"),
		h.Div(h.Class("scroll-progress"), h.ID(ProgressID), g.Attr("style", "transform:scaleX(0)")),
		h.Div(h.Class("stars"), h.ID(StarsID)),
		h.Div(h.Class("floating-shapes"),
			h.Div(h.Class("shape shape-1")), h.Div(h.Class("shape shape-2")), h.Div(h.Class("shape shape-3"))),
		nav(c, sections),
	}
	for _, s := range sections {
		body = append(body, renderGroup(s, offset))
	}
	body = append(body,
		footer(c, now),
		h.Div(h.ID("toast-root")),
		configScript(cfg),
		h.Script(h.Src("/static/wasm_exec.js")),
		h.Script(h.Src("/static/boot.js"), h.Defer()),
	)

	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(name+" | Portfolio")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/portfolio.css")),
			),
			h.Body(h.Div(body...)),
		),
	)
}

func renderGroup(s group, offset float64) g.Node {
	children := make([]g.Node, 0, len(s.children)+3)
	children = append(children,
		h.ID(s.name),
		h.Class(s.class),
		g.Attr(GroupAttr, s.name),
		g.Attr(AmountAttr, fmt.Sprintf("%g", s.amount)),
	)
	for i, child := range s.children {
		children = append(children, h.Div(
			g.Attr(ChildAttr, fmt.Sprintf("%d", i)),
			g.Attr("style", fmt.Sprintf(hiddenChildCSS, offset)),
			child,
		))
	}
	return h.Section(children...)
}

func groups(c Content, cfg config.Client) []group {
	out := []group{{
		name:   "home",
		amount: heroAmount,
		class:  "hero-section",
		children: []g.Node{
			h.Div(h.Class("profile-image-wrapper"),
				h.Img(h.Src(c.ProfileImage), h.Alt(c.FirstName+" "+c.LastName), h.Class("profile-image"))),
			h.H1(h.Class("hero-title"), h.Span(h.Class("title-gradient"), g.Text(c.FirstName+" "+c.LastName))),
			h.P(h.Class("hero-subtitle"), g.Text(strings.Join(c.Roles, " · "))),
			h.P(h.Class("hero-description"), g.Text(c.Intro)),
			h.Div(h.Class("hero-buttons"),
				h.A(h.Href("#projects"), h.Class("btn btn-primary"), g.Text("View My Projects")),
				h.A(h.Href("#contact"), h.Class("btn btn-secondary"), g.Text("Get In Touch")),
				h.Button(h.ID(ResumeButtonID), h.Type("button"), h.Class("btn btn-secondary"), g.Text("Download Resume")),
			),
		},
	}}

	if c.About != "" {
		out = append(out, group{
			name: "about", amount: sectionAmount, class: "about-section",
			children: []g.Node{sectionHeader("About Me", ""), h.P(h.Class("about-text"), g.Text(c.About))},
		})
	}
	if len(c.Skills) > 0 {
		out = append(out, group{
			name: "skills", amount: sectionAmount, class: "skills-section",
			children: g.Map(c.Skills, skillCard),
		})
	}
	if len(c.Projects) > 0 {
		out = append(out, group{
			name: "projects", amount: sectionAmount, class: "projects-section",
			children: g.Map(c.Projects, projectCard),
		})
	}
	if len(c.Experience) > 0 {
		out = append(out, group{
			name: "experience", amount: sectionAmount, class: "experience-section",
			children: g.Map(c.Experience, positionCard),
		})
	}
	if len(c.Education) > 0 {
		out = append(out, group{
			name: "education", amount: sectionAmount, class: "education-section",
			children: g.Map(c.Education, positionCard),
		})
	}
	if len(c.Leadership) > 0 {
		out = append(out, group{
			name: "leadership", amount: sectionAmount, class: "leadership-section",
			children: g.Map(c.Leadership, positionCard),
		})
	}
	out = append(out, group{
		name: "contact", amount: sectionAmount, class: "contact-section",
		children: []g.Node{contactInfo(c, cfg), contactForm()},
	})
	return out
}

// nav links only the sections that were rendered.
func nav(c Content, sections []group) g.Node {
	return h.Nav(h.Class("portfolio-nav"),
		h.Div(h.Class("nav-container"),
			h.Div(h.Class("logo"), g.Text(c.FirstName), h.Span(g.Text(c.LastName))),
			h.Div(h.Class("nav-links"), g.Map(sections, func(s group) g.Node {
				return h.A(h.Href("#"+s.name), g.Text(strings.ToUpper(s.name[:1])+s.name[1:]))
			})),
		),
	)
}

func sectionHeader(title, sub string) g.Node {
	return h.Div(h.Class("section-header"),
		h.H2(g.Text(title)),
		g.If(sub != "", h.P(g.Text(sub))),
	)
}

func skillCard(s SkillCategory) g.Node {
	return h.Div(h.Class("skill-category"),
		h.Div(h.Class("skill-icon"), h.I(h.Class(s.Icon))),
		h.H3(g.Text(s.Title)),
		h.Div(h.Class("skills-list"), g.Map(s.Skills, func(skill string) g.Node {
			return h.Span(h.Class("skill-tag"), g.Text(skill))
		})),
	)
}

func projectCard(p Project) g.Node {
	return h.Div(h.Class("project-card"),
		h.Div(h.Class("project-icon"), h.I(h.Class(p.Icon))),
		h.H3(g.Text(p.Title)),
		h.P(g.Text(p.Desc)),
		h.Div(h.Class("project-tech"), g.Map(p.Tech, func(t string) g.Node { return h.Span(g.Text(t)) })),
		h.Div(h.Class("project-links"),
			g.If(p.Live != "", h.A(h.Href(p.Live), h.Class("project-link"), h.Target("_blank"), h.Rel("noreferrer"), g.Text("Live Demo"))),
			g.If(p.Code != "", h.A(h.Href(p.Code), h.Class("project-link"), h.Target("_blank"), h.Rel("noreferrer"), g.Text("Code"))),
		),
	)
}

func positionCard(p Position) g.Node {
	return h.Div(h.Class("position-card"),
		g.If(p.Logo != "", h.Img(h.Src(p.Logo), h.Alt(p.Organization), h.Class("position-logo"))),
		h.H3(g.Text(p.Title)),
		h.H4(g.Text(p.Organization)),
		g.If(p.Dates() != "", h.P(h.Class("position-dates"), g.Text(p.Dates()))),
		h.Ul(g.Map(p.Bullets, func(b string) g.Node { return h.Li(g.Text(b)) })),
	)
}

func contactInfo(c Content, cfg config.Client) g.Node {
	return h.Div(h.Class("contact-info"),
		sectionHeader("Get In Touch", "Feel free to reach out for collaborations or just a friendly hello"),
		h.Div(h.Class("contact-item"), h.H3(g.Text("Email")), h.A(h.Href("mailto:"+c.Email), g.Text(c.Email))),
		g.If(c.GitHub != "", h.Div(h.Class("contact-item"), h.H3(g.Text("GitHub")), h.A(h.Href(c.GitHub), h.Target("_blank"), h.Rel("noreferrer"), g.Text(c.GitHub)))),
		g.If(c.LinkedIn != "", h.Div(h.Class("contact-item"), h.H3(g.Text("LinkedIn")), h.A(h.Href(c.LinkedIn), h.Target("_blank"), h.Rel("noreferrer"), g.Text(c.LinkedIn)))),
		h.Div(h.Class("contact-item"), h.H3(g.Text("Resume")),
			h.A(h.Href(cfg.Resume.Path), g.Attr("download", cfg.Resume.Filename), g.Text("Download my CV"))),
		g.If(c.Location != "", h.Div(h.Class("contact-item"), h.H3(g.Text("Location")), h.P(g.Text(c.Location)))),
	)
}

func contactForm() g.Node {
	return g.El("form", h.ID(ContactFormID), h.Class("contact-form"),
		h.Input(h.Name(contact.FieldName), h.Type("text"), h.Placeholder("Your Name"), h.Required()),
		h.Input(h.Name(contact.FieldEmail), h.Type("email"), h.Placeholder("Your Email"), h.Required()),
		h.Input(h.Name(contact.FieldSubject), h.Type("text"), h.Placeholder("Subject"), h.Required()),
		h.Textarea(h.Name(contact.FieldMessage), h.Placeholder("Your Message"), g.Attr("rows", "5"), h.Required()),
		h.Button(h.Type("submit"), h.Class("btn btn-primary"), g.Text("Send Message")),
	)
}

func footer(c Content, now time.Time) g.Node {
	return h.Footer(h.Class("portfolio-footer"),
		h.P(h.Class("copyright"), g.Textf("© %d %s %s. Built with Go.", now.Year(), c.FirstName, c.LastName)),
	)
}

func configScript(cfg config.Client) g.Node {
	data, err := json.Marshal(cfg)
	if err != nil {
		data = []byte("{}")
	}
	// keep the payload from closing the script element early
	safe := strings.ReplaceAll(string(data), "</", `<\/`)
	return h.Script(h.Type("application/json"), h.ID(ConfigScriptID), g.Raw(safe))
}
