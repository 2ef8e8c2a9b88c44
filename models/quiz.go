package models

// Quiz is the definition fetched from the external quiz service for
// embedding inside a quiz block. Embedded quizzes render in a
// non-navigable mode: there is nowhere to "go back" to inside an embed.
type Quiz struct {
	ID        int            `json:"id"`
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Choices []string `json:"choices"`
}
