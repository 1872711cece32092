package seed

import "github.com/nexus-blend/showcase-api/internal/content/domain"

func str(s string) *string { return &s }

func num(n int) *int { return &n }

func flag(b bool) *bool { return &b }

func list(items ...string) *[]string { return &items }

// projects are listed oldest first; the store shows them newest first.
var projects = []domain.ProjectInput{
	{
		Title:        str("ShopHub E-commerce Platform"),
		Description:  str("A modern e-commerce platform with seamless shopping experience, advanced product filtering, and secure payment integration."),
		Category:     str("E-commerce"),
		Image:        str("/attached_assets/generated_images/E-commerce_platform_website_mockup_2ca066b6.png"),
		Technologies: list("React", "Node.js", "MongoDB", "Stripe"),
		LiveURL:      str("https://shophub.example.com"),
		Featured:     flag(true),
	},
	{
		Title:        str("FinanceFlow Banking App"),
		Description:  str("Secure mobile banking application with real-time transactions, budget tracking, and financial insights dashboard."),
		Category:     str("Fintech"),
		Image:        str("/attached_assets/generated_images/Fintech_mobile_banking_app_a8b24e45.png"),
		Technologies: list("React Native", "Express", "PostgreSQL", "AWS"),
		LiveURL:      str("https://financeflow.example.com"),
		Featured:     flag(true),
	},
	{
		Title:        str("PropertyHub Real Estate"),
		Description:  str("Comprehensive real estate platform featuring advanced property search, virtual tours, and appointment scheduling."),
		Category:     str("Real Estate"),
		Image:        str("/attached_assets/generated_images/Real_estate_platform_mockup_d24d2764.png"),
		Technologies: list("Next.js", "GraphQL", "PostgreSQL", "Google Maps API"),
		LiveURL:      str("https://propertyhub.example.com"),
		Featured:     flag(true),
	},
	{
		Title:        str("MediConnect Telemedicine"),
		Description:  str("Healthcare platform connecting patients with doctors through secure video consultations and digital prescriptions."),
		Category:     str("Healthcare"),
		Image:        str("/attached_assets/generated_images/Healthcare_telemedicine_platform_mockup_9ec0c5ec.png"),
		Technologies: list("Vue.js", "Django", "WebRTC", "PostgreSQL"),
		LiveURL:      str("https://mediconnect.example.com"),
		Featured:     flag(false),
	},
	{
		Title:        str("TaskFlow Project Manager"),
		Description:  str("Team collaboration tool with kanban boards, time tracking, and real-time updates for project management."),
		Category:     str("SaaS"),
		Image:        str("/attached_assets/generated_images/SaaS_project_management_tool_3d04317f.png"),
		Technologies: list("React", "Node.js", "MongoDB", "Socket.io"),
		LiveURL:      str("https://taskflow.example.com"),
		Featured:     flag(false),
	},
	{
		Title:        str("Gourmet Restaurant Portal"),
		Description:  str("Elegant restaurant website with online reservations, menu management, and customer review system."),
		Category:     str("Web App"),
		Image:        str("/attached_assets/generated_images/Premium_restaurant_website_mockup_d194160c.png"),
		Technologies: list("Next.js", "Prisma", "PostgreSQL", "Stripe"),
		LiveURL:      str("https://gourmet.example.com"),
		Featured:     flag(false),
	},
	{
		Title:        str("FitTrack Wellness App"),
		Description:  str("Fitness tracking mobile app with workout plans, nutrition tracking, and progress analytics."),
		Category:     str("Mobile"),
		Image:        str("/attached_assets/generated_images/Fitness_wellness_app_mockup_3040722e.png"),
		Technologies: list("React Native", "Firebase", "TensorFlow", "HealthKit"),
		LiveURL:      str("https://fittrack.example.com"),
		Featured:     flag(false),
	},
	{
		Title:        str("LearnHub E-Learning"),
		Description:  str("Online learning platform with interactive courses, video streaming, and student progress tracking."),
		Category:     str("Web App"),
		Image:        str("/attached_assets/generated_images/Online_learning_platform_mockup_197e2560.png"),
		Technologies: list("Angular", "Express", "MongoDB", "AWS S3"),
		LiveURL:      str("https://learnhub.example.com"),
		Featured:     flag(false),
	},
	{
		Title:        str("CryptoTrade Exchange"),
		Description:  str("Cryptocurrency trading platform with real-time charts, secure wallet integration, and advanced trading features."),
		Category:     str("Fintech"),
		Image:        str("/attached_assets/generated_images/Crypto_trading_platform_mockup_78383d50.png"),
		Technologies: list("React", "Node.js", "Redis", "WebSocket"),
		LiveURL:      str("https://cryptotrade.example.com"),
		Featured:     flag(false),
	},
}

var services = []domain.ServiceInput{
	{
		Title:       str("Web Development"),
		Description: str("Custom websites and web applications built with cutting-edge technologies"),
		Features:    list(
			"Responsive design for all devices",
			"SEO optimization",
			"Performance optimization",
			"Custom CMS integration",
			"E-commerce solutions",
		),
		Icon:        str("Code"),
		Order:       num(1),
	},
	{
		Title:       str("UI/UX Design"),
		Description: str("Beautiful and intuitive interfaces that users love"),
		Features:    list(
			"User research and testing",
			"Wireframing and prototyping",
			"Visual design systems",
			"Interaction design",
			"Accessibility compliance",
		),
		Icon:        str("Palette"),
		Order:       num(2),
	},
	{
		Title:       str("Mobile App Development"),
		Description: str("Native and cross-platform mobile applications"),
		Features:    list(
			"iOS and Android development",
			"React Native expertise",
			"App Store optimization",
			"Push notifications",
			"Offline functionality",
		),
		Icon:        str("Smartphone"),
		Order:       num(3),
	},
	{
		Title:       str("Digital Marketing"),
		Description: str("Strategic marketing to grow your online presence"),
		Features:    list(
			"SEO and SEM strategies",
			"Social media management",
			"Content marketing",
			"Analytics and reporting",
			"Email campaigns",
		),
		Icon:        str("TrendingUp"),
		Order:       num(4),
	},
}

var team = []domain.TeamMemberInput{
	{
		Name:        str("Sarah Chen"),
		Role:        str("CEO & Founder"),
		Bio:         str("Visionary leader with 15+ years in tech, passionate about creating digital excellence."),
		Image:       str("/attached_assets/generated_images/Tech_CEO_headshot_ee04c5a7.png"),
		LinkedinURL: str("https://linkedin.com/in/sarachen"),
		TwitterURL:  str("https://twitter.com/sarachen"),
		GithubURL:   nil,
		Order:       num(1),
	},
	{
		Name:        str("Marcus Rodriguez"),
		Role:        str("Creative Director"),
		Bio:         str("Award-winning designer who brings creativity and innovation to every project."),
		Image:       str("/attached_assets/generated_images/Creative_director_headshot_acc2e206.png"),
		LinkedinURL: str("https://linkedin.com/in/marcusr"),
		TwitterURL:  str("https://twitter.com/marcusr"),
		GithubURL:   nil,
		Order:       num(2),
	},
	{
		Name:        str("David Kim"),
		Role:        str("Lead Developer"),
		Bio:         str("Full-stack expert specializing in scalable architectures and clean code."),
		Image:       str("/attached_assets/generated_images/Lead_developer_headshot_9286ec5e.png"),
		LinkedinURL: str("https://linkedin.com/in/davidkim"),
		TwitterURL:  nil,
		GithubURL:   str("https://github.com/davidkim"),
		Order:       num(3),
	},
	{
		Name:        str("Emily Johnson"),
		Role:        str("UX Designer"),
		Bio:         str("User-centered designer crafting intuitive experiences that delight."),
		Image:       str("/attached_assets/generated_images/UX_designer_headshot_9a22b576.png"),
		LinkedinURL: str("https://linkedin.com/in/emilyjohnson"),
		TwitterURL:  str("https://twitter.com/emilyjohnson"),
		GithubURL:   nil,
		Order:       num(4),
	},
	{
		Name:        str("Alex Morgan"),
		Role:        str("Marketing Director"),
		Bio:         str("Strategic marketer driving growth through data-driven campaigns."),
		Image:       str("/attached_assets/generated_images/Marketing_director_headshot_4b9b1ee6.png"),
		LinkedinURL: str("https://linkedin.com/in/alexmorgan"),
		TwitterURL:  str("https://twitter.com/alexmorgan"),
		GithubURL:   nil,
		Order:       num(5),
	},
	{
		Name:        str("Jordan Lee"),
		Role:        str("Senior Engineer"),
		Bio:         str("Backend specialist building robust and efficient systems."),
		Image:       str("/attached_assets/generated_images/Senior_engineer_headshot_8829536e.png"),
		LinkedinURL: str("https://linkedin.com/in/jordanlee"),
		TwitterURL:  nil,
		GithubURL:   str("https://github.com/jordanlee"),
		Order:       num(6),
	},
	{
		Name:        str("Rachel Martinez"),
		Role:        str("Project Manager"),
		Bio:         str("Organized professional ensuring projects deliver on time and exceed expectations."),
		Image:       str("/attached_assets/generated_images/Project_manager_headshot_dd05acfe.png"),
		LinkedinURL: str("https://linkedin.com/in/rachelmartinez"),
		TwitterURL:  nil,
		GithubURL:   nil,
		Order:       num(7),
	},
	{
		Name:        str("Kevin Patel"),
		Role:        str("Operations Director"),
		Bio:         str("Streamlining processes and optimizing workflows for maximum efficiency."),
		Image:       str("/attached_assets/generated_images/Operations_director_headshot_fa8e7024.png"),
		LinkedinURL: str("https://linkedin.com/in/kevinpatel"),
		TwitterURL:  nil,
		GithubURL:   nil,
		Order:       num(8),
	},
}

var testimonials = []domain.TestimonialInput{
	{
		ClientName:    str("Jennifer Williams"),
		ClientRole:    str("CEO"),
		ClientCompany: str("TechStart Inc"),
		Content:       str("Nexus Blend transformed our online presence completely. Their attention to detail and innovative approach exceeded all our expectations. The team was professional, responsive, and delivered exactly what we envisioned."),
		Rating:        num(5),
		Image:         str("/attached_assets/generated_images/Client_testimonial_portrait_1_27fc4be2.png"),
	},
	{
		ClientName:    str("Michael Thompson"),
		ClientRole:    str("Founder"),
		ClientCompany: str("GreenEarth Solutions"),
		Content:       str("Working with Nexus Blend was an absolute pleasure. They took our complex requirements and created a beautiful, user-friendly platform that our customers love. Highly recommended!"),
		Rating:        num(5),
		Image:         str("/attached_assets/generated_images/Client_testimonial_portrait_2_9a22527d.png"),
	},
	{
		ClientName:    str("Lisa Anderson"),
		ClientRole:    str("Marketing Director"),
		ClientCompany: str("Fashion Forward"),
		Content:       str("The e-commerce platform they built for us has increased our online sales by 250%. The design is stunning and the functionality is flawless. Best investment we have made!"),
		Rating:        num(5),
		Image:         str("/attached_assets/generated_images/Client_testimonial_portrait_3_4d761665.png"),
	},
	{
		ClientName:    str("Robert Chang"),
		ClientRole:    str("CTO"),
		ClientCompany: str("DataDrive Analytics"),
		Content:       str("Nexus Blend is technical expertise meets creative excellence. They built us a complex SaaS platform that scales beautifully. Their code quality is outstanding."),
		Rating:        num(5),
		Image:         str("/attached_assets/generated_images/Client_testimonial_portrait_4_e2c0752f.png"),
	},
	{
		ClientName:    str("Amanda Foster"),
		ClientRole:    str("Product Manager"),
		ClientCompany: str("HealthPlus"),
		Content:       str("From concept to launch, Nexus Blend guided us every step of the way. Their collaborative approach and deep understanding of user experience made all the difference."),
		Rating:        num(5),
		Image:         str("/attached_assets/generated_images/Client_testimonial_portrait_5_bd1ed4f0.png"),
	},
	{
		ClientName:    str("David Park"),
		ClientRole:    str("VP of Operations"),
		ClientCompany: str("LogiTech Solutions"),
		Content:       str("The team at Nexus Blend delivered our project ahead of schedule without compromising on quality. Their project management and communication were exceptional throughout."),
		Rating:        num(5),
		Image:         str("/attached_assets/generated_images/Client_testimonial_portrait_6_fcc2d5f2.png"),
	},
}
