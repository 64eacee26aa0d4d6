package models

// Portfolio is the fixed content rendered on the home page
type Portfolio struct {
	Name         string
	Title        string
	About        string
	Skills       []string
	Projects     []Project
	ContactEmail string
}

// Project is one entry in the portfolio project list
type Project struct {
	Name         string
	Description  string
	Technologies []string
	GitHubURL    string
	LiveURL      string
}

// DefaultPortfolio returns the site's static content
func DefaultPortfolio() Portfolio {
	return Portfolio{
		Name:  "Philani Dlamini",
		Title: "Full Stack Developer",
		About: "I'm a developer who enjoys solving hard problems and turning them into " +
			"small, dependable tools. Most of my work lives somewhere between a database and a browser.",
		Skills: []string{
			"Go",
			"Python",
			"Rust",
			"PostgreSQL",
			"SQLite",
			"Redis",
			"MongoDB",
			"React",
			"Docker",
		},
		Projects: []Project{
			{
				Name:         "Portfolio Web App",
				Description:  "This site: server-rendered pages, a contact form and a small admin dashboard.",
				Technologies: []string{"Go", "chi", "SQLite", "HTML", "CSS"},
				GitHubURL:    "https://github.com/Killjoy99/portfolio-rs",
			},
			{
				Name:         "Kivy Lazy Loading Template",
				Description:  "A KivyMD starter template for Android apps with lazy-loaded screens and Cython builds.",
				Technologies: []string{"Python", "Kivy", "KivyMD", "Cython"},
				GitHubURL:    "https://github.com/Killjoy99/kivymd-lazy-loading-template",
			},
			{
				Name:         "Sage 200 Python API",
				Description:  "A minimal HTTP API in front of the Sage 200 SDK.",
				Technologies: []string{"Python", "pythonnet", "FastAPI", "SQLAlchemy"},
				GitHubURL:    "https://github.com/Killjoy99/sage_integration",
			},
		},
		ContactEmail: "philani.dlamini@outlook.com",
	}
}
