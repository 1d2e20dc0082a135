package model

// TaskInput is the body accepted when creating or replacing a task.
// Fields such as id or user_id sent by a client are ignored.
type TaskInput struct {
	Title    string   `json:"title" validate:"required,min=3,max=50"`
	Content  string   `json:"content" validate:"required"`
	Status   Status   `json:"status" validate:"required,task_status"`
	Priority Priority `json:"priority" validate:"required,task_priority"`
}

// RegisterInput is the body accepted by user registration.
type RegisterInput struct {
	FirstName string `json:"first_name" validate:"required,min=3,max=30"`
	LastName  string `json:"last_name" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,min=3,max=50,email"`
	Password  string `json:"password" validate:"required,password_complexity"`
}

// LoginInput is the body accepted by login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,min=3,max=50,email"`
	Password string `json:"password" validate:"required,password_complexity"`
}
