package seed

import (
	"time"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProjectSeed is a project plus the file name of its image under the source image directory.
type ProjectSeed struct {
	models.Project
	ImageName string
}

// Dataset is a literal set of records to load.
type Dataset struct {
	Projects    []ProjectSeed
	Skills      []models.Skill
	Experiences []models.Experience
	Education   []models.Education
}

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func datePtr(year int, month time.Month, day int) *datatypes.Date {
	d := date(year, month, day)
	return &d
}

func str(s string) *string {
	return &s
}

var noGPA = decimal.NullDecimal{}

// ResetDataset is loaded by the destructive seed.
func ResetDataset() Dataset {
	return Dataset{
		Projects: []ProjectSeed{
			{Project: models.Project{
				Title:        "E-Commerce Website",
				Description:  "A full-featured e-commerce platform built with Django and React. Features include user authentication, product catalog, shopping cart, payment integration with Stripe, order management, and admin dashboard. Responsive design with modern UI/UX.",
				Technologies: "Django, React, PostgreSQL, Stripe API, Bootstrap, JavaScript",
				GithubURL:    str("https://github.com/yourusername/ecommerce-site"),
				LiveURL:      str("https://your-ecommerce-demo.com"),
				Featured:     true,
			}, ImageName: "project1.jpg"},
			{Project: models.Project{
				Title:        "Task Manager App",
				Description:  "A collaborative task management application with real-time updates. Users can create projects, assign tasks, set deadlines, and track progress. Features drag-and-drop interface, notifications, and team collaboration tools.",
				Technologies: "Django, WebSockets, JavaScript, Bootstrap, SQLite",
				GithubURL:    str("https://github.com/yourusername/task-manager"),
				LiveURL:      str("https://your-taskmanager-demo.com"),
				Featured:     true,
			}, ImageName: "project2.jpg"},
			{Project: models.Project{
				Title:        "Weather Dashboard",
				Description:  "A responsive weather application that displays current weather conditions and forecasts. Features location-based weather data, interactive maps, weather alerts, and historical data visualization with charts and graphs.",
				Technologies: "JavaScript, Chart.js, OpenWeather API, HTML5, CSS3",
				GithubURL:    str("https://github.com/yourusername/weather-dashboard"),
				LiveURL:      str("https://your-weather-demo.com"),
				Featured:     false,
			}, ImageName: "project3.jpg"},
			{Project: models.Project{
				Title:        "Blog Platform",
				Description:  "A modern blogging platform with rich text editor, comment system, and social sharing. Features include user profiles, post categories, search functionality, SEO optimization, and responsive design.",
				Technologies: "Django, TinyMCE, PostgreSQL, Bootstrap, JavaScript",
				GithubURL:    str("https://github.com/yourusername/blog-platform"),
				LiveURL:      str("https://your-blog-demo.com"),
				Featured:     true,
			}, ImageName: "project4.jpg"},
			{Project: models.Project{
				Title:        "Portfolio Website",
				Description:  "This very portfolio website you're viewing! Built with Django and Bootstrap, featuring responsive design, admin panel for content management, contact form with email notifications, and optimized for deployment on AWS EC2.",
				Technologies: "Django, Bootstrap, JavaScript, AWS EC2, Nginx, Gunicorn",
				GithubURL:    str("https://github.com/yourusername/portfolio-website"),
				LiveURL:      str("https://your-portfolio.com"),
				Featured:     false,
			}, ImageName: "project5.jpg"},
			{Project: models.Project{
				Title:        "Chat Application",
				Description:  "Real-time chat application with multiple rooms, private messaging, file sharing, and emoji support. Built with WebSockets for instant messaging and includes user authentication and message history.",
				Technologies: "Django Channels, WebSockets, Redis, JavaScript, Bootstrap",
				GithubURL:    str("https://github.com/yourusername/chat-app"),
				LiveURL:      str("https://your-chat-demo.com"),
				Featured:     false,
			}, ImageName: "project6.jpg"},
		},
		Skills: []models.Skill{
			{Name: "Python", Proficiency: 90, Category: "Programming Languages"},
			{Name: "JavaScript", Proficiency: 85, Category: "Programming Languages"},
			{Name: "HTML5", Proficiency: 95, Category: "Programming Languages"},
			{Name: "CSS3", Proficiency: 90, Category: "Programming Languages"},
			{Name: "SQL", Proficiency: 80, Category: "Programming Languages"},

			{Name: "Django", Proficiency: 90, Category: "Frameworks"},
			{Name: "React", Proficiency: 75, Category: "Frameworks"},
			{Name: "Bootstrap", Proficiency: 85, Category: "Frameworks"},
			{Name: "jQuery", Proficiency: 80, Category: "Frameworks"},

			{Name: "PostgreSQL", Proficiency: 80, Category: "Databases"},
			{Name: "MySQL", Proficiency: 75, Category: "Databases"},
			{Name: "SQLite", Proficiency: 85, Category: "Databases"},
			{Name: "Redis", Proficiency: 70, Category: "Databases"},

			{Name: "Git", Proficiency: 85, Category: "Tools & Technologies"},
			{Name: "AWS", Proficiency: 75, Category: "Tools & Technologies"},
			{Name: "Docker", Proficiency: 70, Category: "Tools & Technologies"},
			{Name: "Nginx", Proficiency: 75, Category: "Tools & Technologies"},
			{Name: "Linux", Proficiency: 80, Category: "Tools & Technologies"},
		},
		Experiences: []models.Experience{
			{
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Full Stack Developer",
				Description: "Led development of web applications using Django and React. Managed a team of 3 developers, implemented CI/CD pipelines, and improved application performance by 40%. Collaborated with product managers and designers to deliver high-quality solutions.",
				StartDate:   date(2022, time.January, 1),
				Location:    "San Francisco, CA",
			},
			{
				Company:     "Digital Innovations LLC",
				Position:    "Full Stack Developer",
				Description: "Developed and maintained multiple client websites and web applications. Worked with Django, JavaScript, and various APIs. Implemented responsive designs and optimized database queries for better performance.",
				StartDate:   date(2020, time.June, 1),
				EndDate:     datePtr(2021, time.December, 31),
				Location:    "Remote",
			},
			{
				Company:     "StartupXYZ",
				Position:    "Junior Web Developer",
				Description: "Built frontend components using HTML, CSS, and JavaScript. Assisted in backend development with Python and Django. Participated in code reviews and learned best practices for web development.",
				StartDate:   date(2019, time.March, 1),
				EndDate:     datePtr(2020, time.May, 31),
				Location:    "New York, NY",
			},
		},
		Education: []models.Education{
			{
				Institution:  "University of Technology",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    date(2015, time.September, 1),
				EndDate:      datePtr(2019, time.May, 31),
				GPA:          models.NewGPA(3.75),
			},
			{
				Institution:  "Online Learning Platform",
				Degree:       "Certificate",
				FieldOfStudy: "Full Stack Web Development",
				StartDate:    date(2018, time.January, 1),
				EndDate:      datePtr(2018, time.December, 31),
				GPA:          noGPA,
			},
		},
	}
}

// UpsertDataset is loaded by the non-destructive seed.
func UpsertDataset() Dataset {
	return Dataset{
		Projects: []ProjectSeed{
			{Project: models.Project{
				Title: "E-Commerce Platform",
				Description: `A full-stack e-commerce platform built with Django and React. Features include user authentication, product catalog, shopping cart, payment integration with Stripe, order management, and admin dashboard.

Key Features:
• User registration and authentication
• Product catalog with search and filtering
• Shopping cart and checkout process
• Payment processing with Stripe
• Order tracking and management
• Admin dashboard for inventory management
• Responsive design for mobile and desktop`,
				Technologies: "Django, React, PostgreSQL, Redis, Stripe API, Docker, AWS",
				GithubURL:    str("https://github.com/yourusername/ecommerce-platform"),
				LiveURL:      str("https://your-ecommerce-demo.com"),
				Featured:     true,
			}},
			{Project: models.Project{
				Title: "Task Management API",
				Description: `RESTful API for task management application built with Django REST Framework. Includes user authentication, CRUD operations for tasks, team collaboration features, and real-time notifications.

Key Features:
• JWT-based authentication
• CRUD operations for tasks and projects
• Team collaboration and permissions
• Real-time notifications with WebSockets
• File attachments and comments
• API documentation with Swagger
• Comprehensive test coverage`,
				Technologies: "Django REST Framework, PostgreSQL, Celery, Redis, WebSockets",
				GithubURL:    str("https://github.com/yourusername/task-api"),
				LiveURL:      str("https://task-api-demo.herokuapp.com"),
				Featured:     true,
			}},
			{Project: models.Project{
				Title: "Weather Dashboard",
				Description: `Interactive weather dashboard built with React and Django. Displays current weather conditions, forecasts, and historical data with beautiful visualizations.

Key Features:
• Current weather conditions for any location
• 7-day weather forecast
• Interactive charts and graphs
• Location-based weather alerts
• Historical weather data
• Responsive design
• Dark/light theme toggle`,
				Technologies: "React, Django, Chart.js, OpenWeather API, Bootstrap",
				GithubURL:    str("https://github.com/yourusername/weather-dashboard"),
				LiveURL:      str("https://weather-dashboard-demo.netlify.app"),
				Featured:     true,
			}},
			{Project: models.Project{
				Title: "Blog Platform",
				Description: `A modern blog platform with content management system. Features include rich text editor, comment system, social sharing, and SEO optimization.

Key Features:
• Rich text editor for content creation
• Comment system with moderation
• Social media sharing integration
• SEO optimization
• Tag and category system
• User profiles and author pages
• Search functionality`,
				Technologies: "Django, TinyMCE, PostgreSQL, Bootstrap, jQuery",
				GithubURL:    str("https://github.com/yourusername/blog-platform"),
				Featured:     false,
			}},
			{Project: models.Project{
				Title: "Portfolio Website",
				Description: `This very portfolio website you're viewing! Built with Django and Bootstrap, featuring a responsive design, admin panel for content management, and optimized for deployment on AWS EC2.

Key Features:
• Responsive design with Bootstrap 5
• Admin panel for content management
• Contact form with email notifications
• Project showcase with filtering
• Skills and experience sections
• SEO optimized
• Production-ready deployment configuration`,
				Technologies: "Django, Bootstrap, JavaScript, Nginx, Gunicorn, AWS EC2",
				GithubURL:    str("https://github.com/yourusername/portfolio-website"),
				Featured:     false,
			}},
		},
		Skills: []models.Skill{
			{Name: "Python", Proficiency: 90, Category: "Programming Languages"},
			{Name: "JavaScript", Proficiency: 85, Category: "Programming Languages"},
			{Name: "TypeScript", Proficiency: 75, Category: "Programming Languages"},
			{Name: "Java", Proficiency: 70, Category: "Programming Languages"},
			{Name: "SQL", Proficiency: 80, Category: "Programming Languages"},

			{Name: "Django", Proficiency: 90, Category: "Frameworks & Libraries"},
			{Name: "Django REST Framework", Proficiency: 85, Category: "Frameworks & Libraries"},
			{Name: "React", Proficiency: 80, Category: "Frameworks & Libraries"},
			{Name: "Vue.js", Proficiency: 70, Category: "Frameworks & Libraries"},
			{Name: "Bootstrap", Proficiency: 85, Category: "Frameworks & Libraries"},
			{Name: "jQuery", Proficiency: 75, Category: "Frameworks & Libraries"},

			{Name: "PostgreSQL", Proficiency: 85, Category: "Databases"},
			{Name: "MySQL", Proficiency: 80, Category: "Databases"},
			{Name: "SQLite", Proficiency: 90, Category: "Databases"},
			{Name: "Redis", Proficiency: 70, Category: "Databases"},
			{Name: "MongoDB", Proficiency: 65, Category: "Databases"},

			{Name: "Git", Proficiency: 90, Category: "Tools & Technologies"},
			{Name: "Docker", Proficiency: 75, Category: "Tools & Technologies"},
			{Name: "AWS", Proficiency: 70, Category: "Tools & Technologies"},
			{Name: "Nginx", Proficiency: 75, Category: "Tools & Technologies"},
			{Name: "Linux", Proficiency: 80, Category: "Tools & Technologies"},
			{Name: "Postman", Proficiency: 85, Category: "Tools & Technologies"},
		},
		Experiences: []models.Experience{
			{
				Company:  "Tech Solutions Inc.",
				Position: "Senior Full Stack Developer",
				Description: `Lead developer responsible for designing and implementing scalable web applications using Django and React. Collaborated with cross-functional teams to deliver high-quality software solutions.

Key Responsibilities:
• Developed and maintained multiple Django-based web applications
• Built responsive frontend interfaces using React and modern JavaScript
• Designed and optimized database schemas for improved performance
• Implemented RESTful APIs and integrated third-party services
• Mentored junior developers and conducted code reviews
• Participated in agile development processes and sprint planning`,
				StartDate: date(2022, time.January, 15),
				Location:  "San Francisco, CA (Remote)",
			},
			{
				Company:  "Digital Innovations LLC",
				Position: "Full Stack Developer",
				Description: `Developed and maintained web applications for various clients using Django, React, and PostgreSQL. Worked closely with designers and project managers to deliver projects on time and within budget.

Key Responsibilities:
• Built custom web applications from requirements to deployment
• Integrated payment gateways and third-party APIs
• Optimized application performance and database queries
• Implemented automated testing and CI/CD pipelines
• Provided technical support and maintenance for existing applications`,
				StartDate: date(2020, time.June, 1),
				EndDate:   datePtr(2021, time.December, 31),
				Location:  "Austin, TX",
			},
			{
				Company:  "StartupXYZ",
				Position: "Junior Web Developer",
				Description: `Entry-level position where I gained hands-on experience with web development technologies. Contributed to the development of the company's main product and learned best practices in software development.

Key Responsibilities:
• Assisted in developing features for the main web application
• Fixed bugs and implemented minor enhancements
• Wrote unit tests and participated in code reviews
• Collaborated with senior developers on complex features
• Learned and applied modern web development practices`,
				StartDate: date(2019, time.August, 1),
				EndDate:   datePtr(2020, time.May, 31),
				Location:  "New York, NY",
			},
		},
		Education: []models.Education{
			{
				Institution:  "University of Technology",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    date(2015, time.September, 1),
				EndDate:      datePtr(2019, time.May, 31),
				GPA:          models.NewGPA(3.75),
			},
			{
				Institution:  "Online Learning Platform",
				Degree:       "Certificate",
				FieldOfStudy: "Full Stack Web Development",
				StartDate:    date(2019, time.January, 1),
				EndDate:      datePtr(2019, time.June, 30),
				GPA:          noGPA,
			},
			{
				Institution:  "AWS Training Center",
				Degree:       "AWS Certified Solutions Architect",
				FieldOfStudy: "Cloud Computing",
				StartDate:    date(2021, time.March, 1),
				EndDate:      datePtr(2021, time.April, 30),
				GPA:          noGPA,
			},
		},
	}
}
