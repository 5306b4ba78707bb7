package models

// QuizQuestion is a multiple choice question with one correct option.
type QuizQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"` // easy, medium, hard
}
