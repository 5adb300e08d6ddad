package templatemethod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLearn(t *testing.T) {
	tests := []struct {
		name string
		e    Education
		want []string
	}{
		{
			name: "school",
			e:    School{},
			want: []string{
				"go to first grade",
				"attend lessons and do homework",
				"pass final exams",
				"receive school certificate",
			},
		},
		{
			name: "university",
			e:    University{},
			want: []string{
				"pass entrance exams and enroll",
				"attend lectures",
				"complete internship",
				"pass specialty exam",
				"receive university diploma",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Learn(tt.e))
		})
	}
}

func TestTemplateMethod(t *testing.T) {
	assert.Equal(t, []string{"operation 1", "operation 2"}, TemplateMethod(ConcreteClass{}))
}
