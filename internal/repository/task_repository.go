package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktracker/internal/model"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts task and fills in its generated id.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return translateGormError(r.db.WithContext(ctx).Create(task).Error)
}

// ListByUser returns the user's tasks in insertion order.
func (r *taskRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, translateGormError(err)
	}
	return tasks, nil
}

// FindByIDAndUser finds a task by id owned by userID.
func (r *taskRepository) FindByIDAndUser(ctx context.Context, id, userID int64) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &task, nil
}

// Update replaces the editable fields of the stored task. Owner, id and
// creation time are never written.
func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return translateGormError(r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]interface{}{
			"title":    task.Title,
			"content":  task.Content,
			"status":   task.Status,
			"priority": task.Priority,
		}).Error)
}

// Delete removes the task if it belongs to userID.
func (r *taskRepository) Delete(ctx context.Context, id, userID int64) error {
	return translateGormError(r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{}).Error)
}
