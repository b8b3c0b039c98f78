package curriculum

// Module is a static soft-skills lesson.
type Module struct {
	ID             string         `yaml:"id" json:"id"`
	Week           int            `yaml:"week" json:"week"`
	Title          string         `yaml:"title" json:"title"`
	Description    string         `yaml:"description" json:"description"`
	Content        string         `yaml:"content" json:"content"`
	LearningPoints []string       `yaml:"learning_points" json:"learningPoints"`
	Examples       []string       `yaml:"examples" json:"examples"`
	Quizzes        []QuizQuestion `yaml:"quizzes" json:"quizzes"`
	SkillsFocus    []string       `yaml:"skills_focus" json:"skillsFocus"`
}

// QuizQuestion is a single multiple-choice check within a module.
type QuizQuestion struct {
	ID            string   `yaml:"id" json:"id"`
	Question      string   `yaml:"question" json:"question"`
	Options       []string `yaml:"options" json:"options"`
	CorrectAnswer int      `yaml:"correct_answer" json:"correctAnswer"`
}

// DailyTask is a one-question micro-assessment prompt.
type DailyTask struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Skill       string `yaml:"skill" json:"skill"`
}

// EvolvedSuffix marks an AI-evolved variant of a module.
const EvolvedSuffix = "_v2"

// EvolvedID returns the catalog ID an evolved variant of the given module takes.
func EvolvedID(moduleID string) string {
	return moduleID + EvolvedSuffix
}
