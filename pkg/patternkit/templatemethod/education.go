// Package templatemethod fixes the order of education steps while letting
// each institution fill them in.
package templatemethod

// Education is the set of steps Learn runs.
type Education interface {
	Enter() string
	Study() []string
	PassExams() string
	GetDocument() string
}

// DefaultExams provides the PassExams step for institutions without a
// special exam.
type DefaultExams struct{}

func (DefaultExams) PassExams() string { return "pass final exams" }

// Learn runs the steps of e in their fixed order and returns what happened.
func Learn(e Education) []string {
	steps := []string{e.Enter()}
	steps = append(steps, e.Study()...)
	steps = append(steps, e.PassExams(), e.GetDocument())
	return steps
}

// School uses the default exams.
type School struct {
	DefaultExams
}

func (School) Enter() string { return "go to first grade" }

func (School) Study() []string {
	return []string{"attend lessons and do homework"}
}

func (School) GetDocument() string { return "receive school certificate" }

// University has an entrance exam, an internship and a specialty exam.
type University struct{}

func (University) Enter() string { return "pass entrance exams and enroll" }

func (University) Study() []string {
	return []string{"attend lectures", "complete internship"}
}

func (University) PassExams() string { return "pass specialty exam" }

func (University) GetDocument() string { return "receive university diploma" }
