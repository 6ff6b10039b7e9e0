package models

// TestCase et BugReport alimentent la page de documentation QA.
// Les données sont statiques, jamais modifiées par l'API.

type TestCase struct {
	ID             string   `json:"id"`
	Module         string   `json:"module"`
	Title          string   `json:"title"`
	Priority       string   `json:"priority"` // "LOW", "MEDIUM", "HIGH"
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expectedResult"`
}

type BugReport struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Severity    string   `json:"severity"` // "CRITICAL", "MAJOR", "MINOR"
	Status      string   `json:"status"`   // "OPEN", "IN_PROGRESS", "RESOLVED"
	Description string   `json:"description"`
	ReproSteps  []string `json:"reproSteps"`
}
