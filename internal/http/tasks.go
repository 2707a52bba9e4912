package http

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/bookmarks/internal/rpc"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// TaskTypeInfo describes a task that can be triggered manually.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

type runnableTask struct {
	description string
	build       func() backlite.Task
}

var runnableTasks = map[string]runnableTask{
	"optimize_database": {
		description: "Refresh query planner statistics on the bookmarks database",
		build:       func() backlite.Task { return tasks.OptimizeDatabaseTask{Reason: "manual"} },
	},
}

// TasksController exposes the maintenance task queue.
type TasksController struct {
	client *tasks.Client
}

func NewTasksController(client *tasks.Client) *TasksController {
	return &TasksController{client: client}
}

// ListTaskTypes handles GET /api/tasks/types
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := make([]TaskTypeInfo, 0, len(runnableTasks))
	for name, task := range runnableTasks {
		types = append(types, TaskTypeInfo{
			Type:        name,
			Description: task.description,
			Queue:       task.build().Config().Name,
		})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Type < types[j].Type })

	c.JSON(http.StatusOK, gin.H{"task_types": types})
}

// GetTaskStatus handles GET /api/tasks/:id
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	taskID := c.Param("id")
	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondRPCError(c, rpc.FromError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusName(status),
	})
}

// RunTask handles POST /api/tasks/:type/run
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")
	task, ok := runnableTasks[taskType]
	if !ok {
		respondRPCError(c, rpc.BadRequest(fmt.Sprintf("unknown task type: %s", taskType)))
		return
	}

	id, err := tc.client.Enqueue(c.Request.Context(), task.build())
	if err != nil {
		respondRPCError(c, rpc.FromError(err))
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"task_id": id,
		"type":    taskType,
	})
}

var taskStatusNames = map[backlite.TaskStatus]string{
	backlite.TaskStatusPending:  "pending",
	backlite.TaskStatusRunning:  "running",
	backlite.TaskStatusSuccess:  "success",
	backlite.TaskStatusFailure:  "failure",
	backlite.TaskStatusNotFound: "not_found",
}

func taskStatusName(status backlite.TaskStatus) string {
	if name, ok := taskStatusNames[status]; ok {
		return name
	}
	return "unknown"
}
