package analysis

import (
	"fmt"
	"net/url"
)

// Resource points a candidate at learning material for one skill.
type Resource struct {
	Skill string `json:"skill"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

var resourceMap = map[string]Resource{
	"python":           {Name: "Python 3 Docs", URL: "https://docs.python.org/3/"},
	"java":             {Name: "Oracle Java Tutorials", URL: "https://docs.oracle.com/javase/tutorial/"},
	"javascript":       {Name: "MDN Web Docs", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
	"react":            {Name: "React Official Docs", URL: "https://react.dev/"},
	"sql":              {Name: "W3Schools SQL", URL: "https://www.w3schools.com/sql/"},
	"docker":           {Name: "Docker Get Started", URL: "https://www.docker.com/get-started/"},
	"aws":              {Name: "AWS Training", URL: "https://aws.amazon.com/training/"},
	"machine learning": {Name: "Google Machine Learning Crash Course", URL: "https://developers.google.com/machine-learning/crash-course"},
}

// LearningResources maps missing skills to learning material, falling back to
// a course search for unknown skills.
func LearningResources(missing []string) []Resource {
	out := make([]Resource, 0, len(missing))
	for _, skill := range missing {
		if r, ok := resourceMap[skill]; ok {
			r.Skill = skill
			out = append(out, r)
			continue
		}
		out = append(out, Resource{
			Skill: skill,
			Name:  fmt.Sprintf("Search '%s' on Coursera", skill),
			URL:   "https://www.coursera.org/search?query=" + url.QueryEscape(skill),
		})
	}
	return out
}
