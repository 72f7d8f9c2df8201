package content

// SiteTitle is the document title of every page.
const SiteTitle = "The BAM Portfolio - AI & Cybersecurity Focus"

// Link is a labelled outbound link.
type Link struct {
	Label string
	URL   string
}

// Project is a portfolio entry on the projects page.
type Project struct {
	Title       string
	Description string
	Tags        []string
	URL         string
}

// StaticPage is the copy of a marketing page.
type StaticPage struct {
	Route      string
	Title      string
	Lead       string
	Paragraphs []string
	Skills     []string
	Links      []Link
	Projects   []Project
	Closing    string
}

var navigation = []Link{
	{"Projects", "/projects"},
	{"Blog", "/blog"},
	{"About", "/about"},
	{"Contact", "/contact"},
}

// Navigation returns the header links.
func Navigation() []Link {
	return append([]Link(nil), navigation...)
}

var staticPages = map[string]StaticPage{
	"home": {
		Route: "/",
		Title: "Welcome to the BAM DevRel Portfolio",
		Lead:  "Building bridges between technology and people, with a focus on AI & Cybersecurity.",
		Links: []Link{{"Explore My Projects", "/projects"}},
	},
	"about": {
		Route: "/about",
		Title: "About Me & My DevRel Journey",
		Paragraphs: []string{
			"Hello! I'm passionate about the intersection of technology, education, and community. My journey in tech has led me to explore fascinating areas like **Artificial Intelligence** and **Cybersecurity**, where I love to build innovative solutions that simplify complex problems.",
			"As an aspiring Developer Advocate, I thrive on empowering other developers. This means not only building robust applications but also crafting **clear, easy-to-follow guides**, providing **insightful explanations of technical choices**, and fostering vibrant communities where knowledge is shared freely.",
			"My experience with building interactive web applications, often featuring AI integration, has honed my ability to translate technical concepts into engaging experiences. I believe in continuous learning, open-source contributions, and the power of well-crafted documentation.",
		},
		Skills: []string{
			"**Technical Writing & Documentation:** Creating comprehensive and accessible documentation (READMEs, API docs, tutorials) that enables developers to quickly understand and utilize tools.",
			"**Technical Content Creation:** Producing engaging blog posts, articles, and potentially video scripts that explain complex topics and demonstrate practical applications.",
			"**Community Engagement:** Actively participating in developer communities, answering questions, and contributing to discussions.",
			"**Problem Solving & Solution Architecture:** Designing and implementing technical solutions that address real-world problems.",
			"**Cross-functional Collaboration:** Bridging the gap between engineering, product, and marketing teams.",
			"**Public Speaking & Presentations (Aspiring):** Eager to share knowledge through talks and workshops.",
		},
		Closing: "I'm always looking for exciting opportunities to connect with the developer community and contribute to impactful projects.",
	},
	"contact": {
		Route: "/contact",
		Title: "Get in Touch",
		Lead:  "I'm always open to discussing new opportunities, collaborations, or simply connecting with fellow developers. Feel free to reach out through any of the channels below:",
		Links: []Link{
			{"Email", "mailto:a@awews.com"},
			{"LinkedIn", "https://l.awews.com/brand-am-linkedin"},
			{"GitHub", "https://i.til.show/dapperauteur-github"},
			{"TikTok", "https://i.til.show/tilshow-tiktok"},
			{"YouTube", "https://i.brandanthonymcdonald.com/bam-youtube"},
		},
		Closing: "Looking forward to connecting!",
	},
	"projects": {
		Route: "/projects",
		Title: "My Projects",
		Lead:  "This section showcases my work in AI, Cybersecurity, and interactive web development, demonstrating my technical versatility and problem-solving skills.",
		Projects: []Project{{
			Title:       "Project Alpha (Placeholder)",
			Description: "A brief description of Project Alpha, highlighting its AI integration and innovative approach to data visualization.",
			Tags:        []string{"AI", "Web Dev", "Data Viz"},
			URL:         "#",
		}},
	},
	"blog": {
		Route: "/blog",
		Title: "My Blog & Articles",
		Lead:  "Here you'll find tutorials, technical deep dives, and reflections on my projects and technology, especially focusing on AI, Cybersecurity, and developer best practices.",
	},
}

// StaticPages returns the marketing pages keyed by name (home, about,
// contact, projects, blog).
func StaticPages() map[string]StaticPage {
	out := make(map[string]StaticPage, len(staticPages))
	for k, v := range staticPages {
		out[k] = v
	}
	return out
}

// Static returns one marketing page by name.
func Static(name string) (StaticPage, bool) {
	p, ok := staticPages[name]
	return p, ok
}
