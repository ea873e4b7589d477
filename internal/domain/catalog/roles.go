package catalog

import (
	"github.com/okian/pathway/internal/domain/types"
)

// defaultRoles returns the reference deployment's role table.
func defaultRoles() []Role {
	return []Role{
		{
			Name:   "Frontend Developer",
			Skills: []string{"HTML", "CSS", "JavaScript", "React", "Git"},
			Roadmap: []types.Phase{
				{
					Phase:  "Phase 1 (1-2 months)",
					Topics: []string{"HTML basics", "CSS fundamentals", "JavaScript basics", "Git version control"},
				},
				{
					Phase:  "Phase 2 (2 months)",
					Topics: []string{"React fundamentals", "Component architecture", "State management", "API integration"},
				},
				{
					Phase:  "Phase 3 (1-2 months)",
					Topics: []string{"Advanced React patterns", "Performance optimization", "Testing", "Build tools"},
				},
			},
		},
		{
			Name:   "Backend Developer",
			Skills: []string{"Java", "Spring Boot", "SQL", "APIs", "Git"},
			Roadmap: []types.Phase{
				{
					Phase:  "Phase 1 (1-2 months)",
					Topics: []string{"Java basics", "OOP concepts", "Git version control", "Basic algorithms"},
				},
				{
					Phase:  "Phase 2 (2 months)",
					Topics: []string{"Spring Boot framework", "SQL databases", "RESTful APIs", "Database design"},
				},
				{
					Phase:  "Phase 3 (1-2 months)",
					Topics: []string{"Deployment & DevOps", "System design basics", "Microservices", "Security practices"},
				},
			},
		},
		{
			Name:   "Data Analyst",
			Skills: []string{"Excel", "SQL", "Python", "Dashboards", "Statistics"},
			Roadmap: []types.Phase{
				{
					Phase:  "Phase 1 (1-2 months)",
					Topics: []string{"Excel advanced functions", "SQL basics", "Data cleaning", "Basic statistics"},
				},
				{
					Phase:  "Phase 2 (2 months)",
					Topics: []string{"Python for data analysis", "Pandas & NumPy", "Data visualization", "Dashboard creation"},
				},
				{
					Phase:  "Phase 3 (1-2 months)",
					Topics: []string{"Advanced analytics", "Machine learning basics", "Data storytelling", "Business intelligence"},
				},
			},
		},
	}
}
