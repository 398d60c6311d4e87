package analysis

import "fmt"

const maxInterviewQuestions = 10

var questionBank = map[string][]string{
	"python": {
		"Explain the difference between list and tuple.",
		"What are decorators and how are they used?",
		"How does memory management work in Python?",
	},
	"java": {
		"What is the difference between JDK, JRE, and JVM?",
		"Explain the concept of OOP.",
		"What is the difference between a checked and an unchecked exception?",
	},
	"javascript": {
		"Explain closures in JavaScript.",
		"What is the difference between `==` and `===`?",
		"Explain the event loop.",
	},
	"sql": {
		"What is the difference between INNER JOIN and LEFT JOIN?",
		"Explain ACID properties.",
		"How do you optimize a slow query?",
	},
	"react": {
		"What are hooks and why do we use them?",
		"Explain the Virtual DOM.",
		"What is the difference between state and props?",
	},
	"docker": {
		"What is the difference between an image and a container?",
		"Explain the Dockerfile instructions.",
		"How do you manage data in Docker?",
	},
	"aws": {
		"What is the difference between S3 and EBS?",
		"Explain the concept of VPC.",
		"What is a Lambda function?",
	},
	"machine learning": {
		"What is the difference between supervised and unsupervised learning?",
		"Explain the bias-variance tradeoff.",
		"How do you handle overfitting?",
	},
}

// InterviewQuestions returns up to 10 preparation questions covering the
// missing skills: two per skill from the question bank, generic prompts for
// skills the bank does not know.
func InterviewQuestions(missing []string) []string {
	questions := make([]string, 0, maxInterviewQuestions)
	for _, skill := range missing {
		if bank, ok := questionBank[skill]; ok {
			n := 2
			if len(bank) < n {
				n = len(bank)
			}
			questions = append(questions, bank[:n]...)
		} else {
			questions = append(questions,
				fmt.Sprintf("Can you describe your experience with %s?", skill),
				fmt.Sprintf("What was the most challenging project you built using %s?", skill),
			)
		}
	}
	if len(questions) > maxInterviewQuestions {
		questions = questions[:maxInterviewQuestions]
	}
	return questions
}
