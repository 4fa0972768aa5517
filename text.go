package main

import "github.com/Zachkp/portfolio/internal/view"

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a
	different language, experimenting with tools, or solving tricky problems.
	When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends,
	or chasing down a new challenge outside the screen.`

	ProjectOne = `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`

	ProjectTwo = `A terminal-based music streaming application built in Go with an elegant TUI
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	ProjectThree = `A machine learning-powered web application that uses TF-IDF vectorization and cosine
	similarity to recommend games based on content analysis, featuring interactive data visualizations and
	real-time filtering by user reviews and ratings.`

	ProjectFour = `A portfolio website served by Gin, rendered with gomponents and animated by a
	Go WebAssembly engine: a starfield background, a spring-smoothed scroll bar and staggered reveals.`
)

// Portfolio is the page content.
var Portfolio = view.Content{
	FirstName:    "Zach",
	LastName:     "Kordas-Potter",
	Roles:        []string{"Software Developer", "Go Enthusiast", "Lifelong Learner"},
	Intro:        "I build terminal tools, web apps and the occasional machine learning experiment.",
	About:        AboutMe,
	ProfileImage: "/images/profile.jpg",
	Email:        "zachkordaspotter@gmail.com",
	GitHub:       "https://github.com/Zachkp",
	Location:     "Minnesota, USA",

	Skills: []view.SkillCategory{
		{Title: "Languages", Icon: "fas fa-code", Skills: []string{"Go", "Python", "JavaScript", "SQL", "HTML/CSS"}},
		{Title: "Web", Icon: "fas fa-globe", Skills: []string{"Gin", "HTMX", "Tailwind CSS", "Alpine.js", "WebAssembly"}},
		{Title: "Tools", Icon: "fas fa-terminal", Skills: []string{"Git", "Linux", "Docker", "SQLite", "Charmbracelet"}},
	},

	Projects: []view.Project{
		{Title: "Terminal Mail", Desc: ProjectOne, Tech: []string{"Go", "Bubble Tea", "go-imap"}, Icon: "fas fa-envelope", Code: "https://github.com/Zachkp"},
		{Title: "Terminal Music", Desc: ProjectTwo, Tech: []string{"Go", "Bubble Tea", "yt-dlp", "mpv"}, Icon: "fas fa-music", Code: "https://github.com/Zachkp"},
		{Title: "Game Recommender", Desc: ProjectThree, Tech: []string{"Python", "scikit-learn", "TF-IDF"}, Icon: "fas fa-gamepad", Code: "https://github.com/Zachkp"},
		{Title: "Portfolio", Desc: ProjectFour, Tech: []string{"Go", "Gin", "gomponents", "WebAssembly"}, Icon: "fas fa-laptop-code", Code: "https://github.com/Zachkp"},
	},

	Experience: []view.Position{
		{
			Title:        "Presentation Expert",
			Organization: "Target",
			Start:        "Aug 2023",
			End:          "Present",
			Logo:         "/images/TargetLogo.jpg",
			Bullets: []string{
				"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
				"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
				"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
			},
		},
		{
			Title:        "Manager",
			Organization: "Jasons Catered Events",
			Start:        "Aug 2016",
			End:          "Present",
			Logo:         "/images/jasonsCateringLogo.png",
			Bullets: []string{
				"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
				"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
				"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
			},
		},
	},

	Education: []view.Position{
		{
			Title:        "Bachelor of Computer Science",
			Organization: "Western Governors University",
			Start:        "Sept 2019",
			End:          "May 2023",
			Logo:         "/images/WGU-logo.png",
			Bullets: []string{
				"Graduated Magna Cum Laude with 3.8 GPA",
				"Relevant coursework: Data Structures, Algorithms, Web Development",
				"Senior project: Machine Learning recommendation system",
			},
		},
		{
			Title:        "Project Management",
			Organization: "Comptia",
			Start:        "July 2022",
			End:          "Present",
			Logo:         "/images/comptiaCert.png",
			Bullets: []string{
				"Certified in agile project management methodology",
				"Verification code: SRRRPGBSWBRQCCDJ",
			},
		},
	},
}
