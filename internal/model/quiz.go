package model

// Quiz is an ordered set of questions embedded in a lesson.
type Quiz struct {
	BaseModel
	LessonID  uint           `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"lessonId"`
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion holds the question text, at least two options, and the index
// of the single correct option. CorrectOption is stripped from
// student-facing payloads until the quiz has been graded.
type QuizQuestion struct {
	BaseModel
	QuizID        uint     `gorm:"index;type:bigint unsigned;not null" json:"quizId"`
	Text          string   `gorm:"type:text;not null" json:"text"`
	Options       []string `gorm:"type:json;serializer:json" json:"options"`
	CorrectOption int      `gorm:"not null" json:"-"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
