package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
)

func validTask() model.TaskInput {
	return model.TaskInput{
		Title:    "title1",
		Content:  "content",
		Status:   model.StatusNotStarted,
		Priority: model.PriorityLow,
	}
}

func TestCheck_TaskSchema(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*model.TaskInput)
		wantValid  bool
		wantFields []string
	}{
		{name: "valid", mutate: func(*model.TaskInput) {}, wantValid: true},
		{name: "title at lower bound", mutate: func(in *model.TaskInput) { in.Title = "abc" }, wantValid: true},
		{name: "title at upper bound", mutate: func(in *model.TaskInput) { in.Title = strings.Repeat("a", 50) }, wantValid: true},
		{name: "title too short", mutate: func(in *model.TaskInput) { in.Title = "ab" }, wantFields: []string{"title"}},
		{name: "title too long", mutate: func(in *model.TaskInput) { in.Title = strings.Repeat("a", 51) }, wantFields: []string{"title"}},
		{name: "missing content", mutate: func(in *model.TaskInput) { in.Content = "" }, wantFields: []string{"content"}},
		{name: "unknown status", mutate: func(in *model.TaskInput) { in.Status = "not started" }, wantFields: []string{"status"}},
		{name: "unknown priority", mutate: func(in *model.TaskInput) { in.Priority = "critical" }, wantFields: []string{"priority"}},
		{name: "every status accepted", mutate: func(in *model.TaskInput) { in.Status = model.StatusComplete }, wantValid: true},
		{name: "every priority accepted", mutate: func(in *model.TaskInput) { in.Priority = model.PriorityUrgent }, wantValid: true},
		{
			name:       "violations in field order",
			mutate:     func(in *model.TaskInput) { *in = model.TaskInput{} },
			wantFields: []string{"title", "content", "status", "priority"},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validTask()
			tt.mutate(&in)

			res := v.Check(&in)

			assert.Equal(t, tt.wantValid, res.Valid)
			fields := make([]string, 0, len(res.Errors))
			for _, e := range res.Errors {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			if tt.wantValid {
				assert.Empty(t, fields)
			} else {
				assert.Equal(t, tt.wantFields, fields)
			}
		})
	}
}

func TestCheck_RegisterSchema(t *testing.T) {
	valid := model.RegisterInput{
		FirstName: "firstname",
		LastName:  "lastname",
		Email:     "email@email.com",
		Password:  "aA12345678",
	}

	v := New()
	assert.True(t, v.Check(valid).Valid)

	in := valid
	in.FirstName = ""
	in.LastName = strings.Repeat("x", 31)
	in.Email = "not-an-email"
	res := v.Check(in)

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "first_name", res.Errors[0].Field)
	assert.Equal(t, "first_name is required", res.Errors[0].Message)
	assert.Equal(t, "last_name", res.Errors[1].Field)
	assert.Equal(t, "email", res.Errors[2].Field)
	assert.Equal(t, "email must be a valid email", res.Errors[2].Message)
}

func TestCheck_LoginSchema(t *testing.T) {
	v := New()

	assert.True(t, v.Check(model.LoginInput{Email: "email@email.com", Password: "aA12345678"}).Valid)

	res := v.Check(model.LoginInput{Email: "email@email.com", Password: "a12345678"})
	require.False(t, res.Valid)
	assert.Equal(t, "password", res.Errors[0].Field)
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"aA12345678", true},
		{"a12345678", false},   // no uppercase
		{"AbcdefghijK", false}, // no digit
		{"ABCDEFG123", false},  // no lowercase
		{"aA1bcde", false},     // too short
		{"aA1bcdef", true},
		{"aA1" + strings.Repeat("b", 47), true},
		{"aA1" + strings.Repeat("b", 48), false}, // too long
		{"aA1!@#$%^&", true},
		{"aA!@#$%^&*", false}, // symbols do not stand in for a digit
		{"ab!@#$%^&1", false}, // nor for an uppercase letter
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password))
		})
	}
}

func TestValidate_ReturnsValidationError(t *testing.T) {
	v := New()

	err := v.Validate(&model.TaskInput{Title: "ok title"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	verr, ok := err.(*apperrors.ValidationError)
	require.True(t, ok)
	assert.Len(t, verr.Violations, 3)

	assert.NoError(t, v.Validate(validTask()))
}

func TestCheck_NonStruct(t *testing.T) {
	res := New().Check("just a string")

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
}
