package gpa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps every form validation failure.
var ErrInvalidInput = errors.New("invalid input")

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return IsGrade(fl.Field().String())
	})
	return v
}

type subjectFields struct {
	Name    string `validate:"required"`
	Credits int    `validate:"min=1"`
	Grade   string `validate:"grade"`
}

type semesterFields struct {
	Name    string  `validate:"required"`
	GPA     float64 `validate:"gte=0,lte=4"`
	Credits int     `validate:"min=1"`
}

// ParseSubject builds a Subject from raw form text.
func ParseSubject(id, name, credits, grade string) (Subject, error) {
	c, err := parseCredits(credits)
	if err != nil {
		return Subject{}, err
	}
	f := subjectFields{Name: strings.TrimSpace(name), Credits: c, Grade: grade}
	if err := validate.Struct(f); err != nil {
		return Subject{}, describe(err)
	}
	return Subject{ID: id, Name: f.Name, Credits: f.Credits, Grade: f.Grade}, nil
}

// ParseSemester builds a Semester from raw form text.
func ParseSemester(id, name, gpa, credits string) (Semester, error) {
	g, err := parseGPA(gpa)
	if err != nil {
		return Semester{}, err
	}
	c, err := parseCredits(credits)
	if err != nil {
		return Semester{}, err
	}
	f := semesterFields{Name: strings.TrimSpace(name), GPA: g, Credits: c}
	if err := validate.Struct(f); err != nil {
		return Semester{}, describe(err)
	}
	return Semester{ID: id, Name: f.Name, GPA: f.GPA, Credits: f.Credits}, nil
}

// ValidateName checks a single name field.
func ValidateName(s string) error {
	if err := validate.Var(strings.TrimSpace(s), "required"); err != nil {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

// ValidateCredits checks a single credits field.
func ValidateCredits(s string) error {
	c, err := parseCredits(s)
	if err != nil {
		return err
	}
	if err := validate.Var(c, "min=1"); err != nil {
		return fmt.Errorf("%w: credits must be at least 1", ErrInvalidInput)
	}
	return nil
}

// ValidateGPA checks a single GPA field.
func ValidateGPA(s string) error {
	g, err := parseGPA(s)
	if err != nil {
		return err
	}
	if err := validate.Var(g, "gte=0,lte=4"); err != nil {
		return fmt.Errorf("%w: gpa must be between 0 and 4", ErrInvalidInput)
	}
	return nil
}

func parseCredits(s string) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: credits must be a whole number", ErrInvalidInput)
	}
	return c, nil
}

func parseGPA(s string) (float64, error) {
	g, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: gpa must be a number", ErrInvalidInput)
	}
	return g, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Name":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case "Credits":
		return fmt.Errorf("%w: credits must be at least 1", ErrInvalidInput)
	case "Grade":
		return fmt.Errorf("%w: unknown grade %q", ErrInvalidInput, fe.Value())
	case "GPA":
		return fmt.Errorf("%w: gpa must be between 0 and 4", ErrInvalidInput)
	}
	return fmt.Errorf("%w: %s failed %s", ErrInvalidInput, fe.Field(), fe.Tag())
}
