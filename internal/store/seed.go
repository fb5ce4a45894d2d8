package store

import (
	"log"

	"github.com/cyberhub/community-platform/backend/internal/models"
)

// Seed inserts the site's sample content through the regular Create path.
// Seeded records are indistinguishable from ones created later.
func Seed(s *Store) {
	for _, in := range sampleEvents() {
		s.Events.Create(in)
	}
	for _, in := range sampleProjects() {
		s.Projects.Create(in)
	}
	for _, in := range samplePublications() {
		s.Publications.Create(in)
	}
	for _, in := range sampleBlogs() {
		s.Blogs.Create(in)
	}
	for _, in := range sampleLeaderboard() {
		s.Leaderboard.Create(in)
	}
	for _, in := range sampleResources() {
		s.Resources.Create(in)
	}
	log.Printf("seeded %d events, %d projects, %d publications, %d blogs, %d leaderboard entries, %d resources",
		s.Events.Len(), s.Projects.Len(), s.Publications.Len(),
		s.Blogs.Len(), s.Leaderboard.Len(), s.Resources.Len())
}

func ptr[V any](v V) *V { return &v }

const unsplash = "https://images.unsplash.com/"
const imgParams = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"

func sampleEvents() []models.EventInput {
	return []models.EventInput{
		{
			Title:           "AI & Machine Learning Workshop",
			Description:     "Dive deep into artificial intelligence and machine learning fundamentals with hands-on projects.",
			FullDescription: "Join us for an intensive 6-hour workshop covering the fundamentals of AI and ML. You'll learn about neural networks, data preprocessing, and build your first ML model.",
			Date:            "2024-12-28",
			Category:        "Workshop",
			Image:           unsplash + "photo-1522202176988-66273c2fd55f" + imgParams,
			Instructor:      "Dr. Sarah Chen",
			Duration:        "6 hours",
			Level:           "Beginner to Intermediate",
			MaxParticipants: ptr(50),
		},
		{
			Title:           "CyberHack 2025",
			Description:     "48-hour hackathon focused on sustainable technology solutions. Win amazing prizes!",
			FullDescription: "Our biggest hackathon of the year! Teams of 2-4 will compete to build innovative solutions for environmental challenges. Prizes worth $10,000+",
			Date:            "2025-01-15",
			Category:        "Hackathon",
			Image:           unsplash + "photo-1531482615713-2afd69097998" + imgParams,
			Instructor:      "CyberHub Team",
			Duration:        "48 hours",
			Level:           "All Levels",
			MaxParticipants: ptr(100),
		},
		{
			Title:           "Tech Industry Meetup",
			Description:     "Connect with industry professionals, share experiences, and explore career opportunities.",
			FullDescription: "Network with 200+ tech professionals from top companies. Includes panel discussions, workshops, and networking sessions.",
			Date:            "2025-02-05",
			Category:        "Networking",
			Image:           unsplash + "photo-1515187029135-18ee286d815b" + imgParams,
			Instructor:      "Industry Experts",
			Duration:        "4 hours",
			Level:           "All Levels",
			MaxParticipants: ptr(200),
		},
	}
}

func sampleProjects() []models.ProjectInput {
	return []models.ProjectInput{
		{
			Title:           "Smart Campus IoT System",
			Description:     "IoT-based campus management system with real-time monitoring and analytics",
			FullDescription: "A comprehensive IoT system designed for smart campus management featuring real-time sensor monitoring, automated alerts, energy management, and predictive analytics for optimal resource utilization.",
			Category:        "IoT",
			Image:           unsplash + "photo-1518709268805-4e9042af2176" + imgParams,
			Technologies:    models.StringList{"Python", "Raspberry Pi", "MongoDB", "React", "Node.js"},
			GithubURL:       ptr("https://github.com/cyberhub/smart-campus"),
			DemoURL:         ptr("https://smart-campus-demo.vercel.app"),
			Author:          "Alex Chen",
			Status:          models.ProjectActive,
		},
		{
			Title:           "AI-Powered Study Assistant",
			Description:     "Machine learning application that helps students optimize their study schedules",
			FullDescription: "An intelligent study assistant using machine learning algorithms to analyze learning patterns, recommend optimal study schedules, and provide personalized content recommendations based on individual learning styles.",
			Category:        "AI/ML",
			Image:           unsplash + "photo-1555949963-aa79dcee981c" + imgParams,
			Technologies:    models.StringList{"Python", "TensorFlow", "Flask", "Vue.js", "PostgreSQL"},
			GithubURL:       ptr("https://github.com/cyberhub/study-assistant"),
			DemoURL:         ptr("https://study-assistant-ai.herokuapp.com"),
			Author:          "Sarah Rodriguez",
			Status:          models.ProjectInProgress,
		},
		{
			Title:           "Blockchain Voting Platform",
			Description:     "Secure, transparent voting system built on blockchain technology",
			FullDescription: "A decentralized voting platform leveraging blockchain technology to ensure vote integrity, transparency, and security. Features include voter authentication, real-time vote tracking, and immutable vote records.",
			Category:        "Blockchain",
			Image:           unsplash + "photo-1639762681485-074b7f938ba0" + imgParams,
			Technologies:    models.StringList{"Solidity", "Web3.js", "React", "Node.js", "IPFS"},
			GithubURL:       ptr("https://github.com/cyberhub/blockchain-voting"),
			DemoURL:         ptr("https://secure-vote.netlify.app"),
			Author:          "Michael Thompson",
			Status:          models.ProjectCompleted,
		},
		{
			Title:           "Green Energy Monitor",
			Description:     "Real-time monitoring dashboard for renewable energy systems",
			FullDescription: "A comprehensive monitoring solution for renewable energy systems featuring real-time data visualization, performance analytics, predictive maintenance alerts, and energy optimization recommendations.",
			Category:        "Web Development",
			Image:           unsplash + "photo-1466611653911-95081537e5b7" + imgParams,
			Technologies:    models.StringList{"React", "D3.js", "Node.js", "InfluxDB", "Docker"},
			GithubURL:       ptr("https://github.com/cyberhub/green-energy-monitor"),
			DemoURL:         ptr("https://green-monitor.cyberhub.dev"),
			Author:          "Emily Zhang",
			Status:          models.ProjectActive,
		},
	}
}

func samplePublications() []models.PublicationInput {
	return []models.PublicationInput{
		{
			Title:         "Machine Learning in Cybersecurity: A Comprehensive Review",
			Description:   "An in-depth analysis of ML applications in cybersecurity, covering threat detection, anomaly detection, and predictive security measures.",
			Content:       "This comprehensive review examines the current state and future prospects of machine learning applications in cybersecurity...",
			Author:        "Dr. Sarah Chen",
			Category:      "Research Paper",
			Image:         unsplash + "photo-1555949963-aa79dcee981c" + imgParams,
			PublishedDate: "2024-11-15",
			Tags:          models.StringList{"Machine Learning", "Cybersecurity", "AI", "Threat Detection"},
			PDFURL:        ptr("https://cyberhub.edu/papers/ml-cybersecurity-review.pdf"),
		},
		{
			Title:         "Sustainable Computing: Green Algorithms for Energy Efficiency",
			Description:   "Research on developing energy-efficient algorithms and their impact on sustainable computing practices.",
			Content:       "The growing concern for environmental sustainability has prompted researchers to focus on green computing...",
			Author:        "Prof. Michael Thompson",
			Category:      "Research Paper",
			Image:         unsplash + "photo-1441974231531-c6227db76b6e" + imgParams,
			PublishedDate: "2024-10-22",
			Tags:          models.StringList{"Green Computing", "Energy Efficiency", "Algorithms", "Sustainability"},
			PDFURL:        ptr("https://cyberhub.edu/papers/sustainable-computing.pdf"),
		},
	}
}

func sampleBlogs() []models.BlogInput {
	return []models.BlogInput{
		{
			Title:         "Getting Started with React Hooks: A Beginner's Guide",
			Description:   "Learn the fundamentals of React Hooks and how they can simplify your component logic",
			Content:       "React Hooks have revolutionized how we write React components. In this comprehensive guide, we'll explore useState, useEffect, and custom hooks...",
			Author:        "Alex Chen",
			Category:      "Tutorial",
			Image:         unsplash + "photo-1633356122544-f134324a6cee" + imgParams,
			PublishedDate: "2024-12-01",
			Tags:          models.StringList{"React", "JavaScript", "Frontend", "Tutorial"},
			ReadTime:      "8 min read",
		},
		{
			Title:         "The Future of AI in Education",
			Description:   "Exploring how artificial intelligence is transforming educational experiences",
			Content:       "Artificial Intelligence is reshaping the educational landscape in unprecedented ways...",
			Author:        "Dr. Sarah Chen",
			Category:      "Opinion",
			Image:         unsplash + "photo-1488190211105-8b0e65b80b4e" + imgParams,
			PublishedDate: "2024-11-28",
			Tags:          models.StringList{"AI", "Education", "Technology", "Future"},
			ReadTime:      "12 min read",
		},
		{
			Title:         "Cybersecurity Best Practices for Developers",
			Description:   "Essential security practices every developer should implement in their projects",
			Content:       "Security should be a fundamental consideration in every development project...",
			Author:        "Michael Thompson",
			Category:      "Tutorial",
			Image:         unsplash + "photo-1555949963-aa79dcee981c" + imgParams,
			PublishedDate: "2024-11-25",
			Tags:          models.StringList{"Cybersecurity", "Development", "Best Practices", "Security"},
			ReadTime:      "15 min read",
		},
	}
}

func sampleLeaderboard() []models.LeaderboardInput {
	return []models.LeaderboardInput{
		{Name: "Alex Chen", Event: "CyberHack 2024", Score: ptr(2847), Date: "2024-11-15"},
		{Name: "Sarah Rodriguez", Event: "AI Workshop Series", Score: ptr(2756), Date: "2024-11-20"},
		{Name: "Michael Thompson", Event: "Security Challenge", Score: ptr(2698), Date: "2024-11-18"},
		{Name: "Emily Zhang", Event: "Web Dev Bootcamp", Score: ptr(2634), Date: "2024-11-22"},
		{Name: "David Kim", Event: "Mobile App Contest", Score: ptr(2587), Date: "2024-11-10"},
	}
}

func sampleResources() []models.ResourceInput {
	return []models.ResourceInput{
		{
			Title:       "JavaScript Fundamentals",
			Type:        models.ResourceVideos,
			Category:    "Programming",
			Description: "Master the basics of JavaScript with this comprehensive video series.",
			Image:       unsplash + "photo-1627398242454-45a1465c2479" + imgParams,
			Duration:    "4 hours",
			Level:       "Beginner",
			Link:        "https://youtube.com/watch?v=example",
		},
		{
			Title:       "React Best Practices Guide",
			Type:        models.ResourcePDFs,
			Category:    "Frontend",
			Description: "Comprehensive PDF guide covering React patterns and best practices.",
			Image:       unsplash + "photo-1633356122544-f134324a6cee" + imgParams,
			Duration:    "45 pages",
			Level:       "Intermediate",
			Link:        "#",
		},
		{
			Title:       "Building Scalable APIs",
			Type:        models.ResourceArticles,
			Category:    "Backend",
			Description: "Learn how to design and build APIs that can handle millions of requests.",
			Image:       unsplash + "photo-1558494949-ef010cbdcc31" + imgParams,
			Duration:    "15 min read",
			Level:       "Advanced",
			Link:        "#",
		},
	}
}
