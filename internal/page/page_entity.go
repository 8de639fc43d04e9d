package page

const (
	SlugHome         = "home"
	SlugDashboard    = "dashboard"
	SlugAbout        = "about"
	SlugContact      = "contact"
	SlugPPEEnquiries = "ppe-enquiries"
)

type NavItem struct {
	Slug  string
	Path  string
	Label string
}

// Nav is the site navigation in display order.
var Nav = []NavItem{
	{Slug: SlugHome, Path: "/", Label: "Home"},
	{Slug: SlugDashboard, Path: "/dashboard", Label: "Dashboard"},
	{Slug: SlugAbout, Path: "/about", Label: "About"},
	{Slug: SlugContact, Path: "/contact", Label: "Contact"},
	{Slug: SlugPPEEnquiries, Path: "/ppe-enquiries", Label: "PPE Enquiries"},
}

type Card struct {
	Title       string
	Description string
}

type Section struct {
	Title string
	Body  string
	Cards []Card
	List  []string
}

type Page struct {
	Slug     string
	Title    string
	Heading  string
	Tagline  string
	Sections []Section
}

var content = map[string]Page{
	SlugHome: {
		Slug:    SlugHome,
		Title:   "VisionMines",
		Heading: "PPE Management System",
		Tagline: "Ensuring Safety Through Innovation and Technology",
		Sections: []Section{
			{
				Title: "Comprehensive Safety Solutions",
				Body: "Our integrated platform ensures every worker has access to proper protective equipment " +
					"and maintains the highest safety standards in mining operations.",
				Cards: []Card{
					{Title: "PPE Management", Description: "Comprehensive tracking and management of personal protective equipment"},
					{Title: "Employee Safety", Description: "Monitor and ensure compliance across all mining operations"},
					{Title: "Real-time Analytics", Description: "Data-driven insights for improved safety performance"},
				},
			},
		},
	},
	SlugDashboard: {
		Slug:    SlugDashboard,
		Title:   "Dashboard",
		Heading: "Safety Dashboard",
		Tagline: "Employee roster and PPE compliance by team.",
	},
	SlugAbout: {
		Slug:    SlugAbout,
		Title:   "About",
		Heading: "About Vision Mines",
		Tagline: "Leading the future of mining operations through innovative safety management " +
			"and cutting-edge technology solutions.",
		Sections: []Section{
			{
				Title: "Our Mission",
				Body: "To revolutionize mining safety through comprehensive PPE management systems, " +
					"ensuring every worker returns home safely while maintaining operational excellence " +
					"and environmental responsibility.",
			},
			{
				Title: "Our Vision",
				Body: "To be the global leader in mining safety technology, setting new standards " +
					"for worker protection and operational efficiency through innovative digital " +
					"solutions and data-driven insights.",
			},
			{
				Title: "Primary Goals",
				List: []string{
					"Implement comprehensive PPE tracking and management system",
					"Monitor real-time compliance across all mining operations",
					"Reduce workplace incidents through proactive safety measures",
					"Streamline PPE procurement and distribution processes",
				},
			},
			{
				Title: "Key Features",
				List: []string{
					"Digital employee management dashboard",
					"Automated PPE compliance reporting",
					"Online PPE requisition and tracking system",
					"Advanced analytics and performance insights",
				},
			},
			{
				Title: "Our Core Values",
				Cards: []Card{
					{Title: "Safety First", Description: "Safety is our top priority in every operation and decision we make."},
					{Title: "Team Excellence", Description: "Our dedicated professionals ensure the highest standards of performance."},
					{Title: "Innovation", Description: "We leverage cutting-edge technology to improve mining operations."},
					{Title: "Quality Standards", Description: "We maintain exceptional quality in all our processes and deliverables."},
				},
			},
		},
	},
	SlugContact: {
		Slug:    SlugContact,
		Title:   "Contact",
		Heading: "Contact Us",
		Tagline: "Get in touch with our team for any inquiries about our mining safety solutions " +
			"or PPE management systems.",
		Sections: []Section{
			{
				Title: "Get In Touch",
				Body: "Our team is here to help you implement the best safety solutions for your mining operations. " +
					"Reach out to us through any of the following channels.",
			},
		},
	},
	SlugPPEEnquiries: {
		Slug:    SlugPPEEnquiries,
		Title:   "PPE Enquiries",
		Heading: "PPE Enquiries",
		Tagline: "Request personal protective equipment for your mining operations. " +
			"Complete the form below to submit your PPE requirements.",
	},
}

// Lookup returns the static content of a page.
func Lookup(slug string) (Page, bool) {
	p, ok := content[slug]
	return p, ok
}
