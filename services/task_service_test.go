package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/repository"
)

func newTaskTestEnv(t *testing.T) TaskService {
	t.Helper()

	store := repository.NewMemoryStore()
	return NewTaskService(
		repository.NewMemoryTaskRepo(store),
		repository.NewMemoryAccountRepo(store),
		repository.NewMemoryProjectRepo(store),
		nil,
	)
}

func TestTaskStatusTransitions_AllDirectionsAllowed(t *testing.T) {
	taskSvc := newTaskTestEnv(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, &models.CreateTaskRequest{
		Title:    "Teklif revizyonu hazırla",
		Priority: models.TaskPriorityHigh,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)

	// İleri: todo → in-progress → completed
	for _, status := range []models.TaskStatus{models.TaskStatusInProgress, models.TaskStatusCompleted} {
		task, err = taskSvc.UpdateStatus(ctx, task.ID, &models.UpdateTaskStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, task.Status)
	}

	// Geri: completed → todo da serbesttir
	task, err = taskSvc.UpdateStatus(ctx, task.ID, &models.UpdateTaskStatusRequest{Status: models.TaskStatusTodo})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
}

func TestTaskUpdateStatus_AdvancesUpdatedAt(t *testing.T) {
	taskSvc := newTaskTestEnv(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, &models.CreateTaskRequest{Title: "Fatura kes"}, nil)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := taskSvc.UpdateStatus(ctx, task.ID, &models.UpdateTaskStatusRequest{
		Status: models.TaskStatusInProgress,
	})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(task.UpdatedAt))
	assert.Equal(t, task.CreatedAt, updated.CreatedAt) // created_at sabit kalır
}

func TestTaskUpdateStatus_InvalidStatus(t *testing.T) {
	taskSvc := newTaskTestEnv(t)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, &models.CreateTaskRequest{Title: "Görev"}, nil)
	require.NoError(t, err)

	_, err = taskSvc.UpdateStatus(ctx, task.ID, &models.UpdateTaskStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestTaskUpdateStatus_Missing(t *testing.T) {
	taskSvc := newTaskTestEnv(t)

	_, err := taskSvc.UpdateStatus(context.Background(), 77, &models.UpdateTaskStatusRequest{
		Status: models.TaskStatusCompleted,
	})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestTaskCreate_RejectsUnknownProject(t *testing.T) {
	taskSvc := newTaskTestEnv(t)

	projectID := int64(12)
	_, err := taskSvc.Create(context.Background(), &models.CreateTaskRequest{
		Title:     "Proje görevi",
		ProjectID: &projectID,
	}, nil)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestTaskCreate_SetsCreatedBy(t *testing.T) {
	taskSvc := newTaskTestEnv(t)

	userID := int64(3)
	task, err := taskSvc.Create(context.Background(), &models.CreateTaskRequest{Title: "Arama yap"}, &userID)
	require.NoError(t, err)

	require.NotNil(t, task.CreatedBy)
	assert.Equal(t, userID, *task.CreatedBy)
}
