package model

// Course is a catalog entry. Modules (and their lessons) keep creation
// order, which is the order the player presents them in.
type Course struct {
	BaseModel
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null;default:0" json:"price"`
	ImageURL    string         `gorm:"size:512" json:"imageUrl"`
	Modules     []CourseModule `gorm:"foreignKey:CourseID" json:"modules"`
}

func (Course) TableName() string {
	return "courses"
}

type CourseModule struct {
	BaseModel
	CourseID uint     `gorm:"index;type:bigint unsigned;not null" json:"courseId"`
	Title    string   `gorm:"size:255;not null" json:"title"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID" json:"lessons"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

// Lesson is the atomic content unit. A lesson with a Quiz is graded: it is
// completed only by a passing submission, never by manual toggle.
type Lesson struct {
	BaseModel
	ModuleID    uint               `gorm:"index;type:bigint unsigned;not null" json:"moduleId"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	Content     string             `gorm:"type:text" json:"content"`
	VideoURL    string             `gorm:"size:512" json:"videoUrl,omitempty"`
	Attachments []LessonAttachment `gorm:"foreignKey:LessonID" json:"attachments,omitempty"`
	Quiz        *Quiz              `gorm:"foreignKey:LessonID" json:"quiz,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// HasQuiz reports whether the lesson is graded.
func (l *Lesson) HasQuiz() bool {
	return l.Quiz != nil && len(l.Quiz.Questions) > 0
}

type LessonAttachment struct {
	BaseModel
	LessonID uint   `gorm:"index;type:bigint unsigned;not null" json:"lessonId"`
	Name     string `gorm:"size:255;not null" json:"name"`
	URL      string `gorm:"size:512;not null" json:"url"`
}

func (LessonAttachment) TableName() string {
	return "lesson_attachments"
}
