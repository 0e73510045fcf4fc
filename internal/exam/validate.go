package exam

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/openlearn/coach/internal/content"
)

var validate = validator.New()

// CreateForm is the wizard's submit payload. Exercises is the ordered
// selection as the picker shows it; order matters for round-robin
// assignment. Bounds that the builder itself does not enforce live here
// as the form-validation contract.
type CreateForm struct {
	Title         string             `json:"title" validate:"required,max=100"`
	QuestionCount int                `json:"question_count" validate:"required,gt=0,lte=50"`
	Collection    string             `json:"collection" validate:"required"`
	Exercises     []content.Exercise `json:"exercises" validate:"required,min=1,unique=ID"`
	Seed          *int               `json:"seed,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks the static form rules plus the coverage rule: the
// question count must not exceed the total assessment items available
// across the selected exercises.
func (f CreateForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	total := 0
	for _, ex := range f.Exercises {
		total += ex.NumAssessments
	}
	if f.QuestionCount > total {
		return fmt.Errorf("question_count %d exceeds available assessment items (%d)",
			f.QuestionCount, total)
	}
	return nil
}

// UpdateForm carries the partial-save fields: rename, activate,
// archive. Seed and question sources are immutable after creation.
type UpdateForm struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Active  *bool   `json:"active,omitempty"`
	Archive *bool   `json:"archive,omitempty"`
}

func (f UpdateForm) Validate() error {
	return validate.Struct(f)
}
