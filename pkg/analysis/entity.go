package analysis

// Result — результат сравнения навыков пользователя с одной профессией.
type Result struct {
	Career       string   `json:"career"`
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	MatchPercent float64  `json:"match_percent"`
	Courses      []string `json:"courses"`
}

// Source describes where the user's skills came from.
type Source string

const (
	SourceDocument Source = "document"
	SourceManual   Source = "manual"
	SourceNone     Source = "none"
)

// Outcome — ответ сценария анализа: распознанные навыки и результаты по профессиям.
type Outcome struct {
	Source Source   `json:"source"`
	Skills []string `json:"skills"`
	Jobs   []Result `json:"jobs"`
}
