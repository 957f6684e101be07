package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"easytasks/internal/adapter/http/dto"
	"easytasks/internal/adapter/http/mapper"
	"easytasks/internal/adapter/http/middleware"
	"easytasks/internal/adapter/http/validation"
	"easytasks/internal/core/domain"
	"easytasks/internal/core/ports"
	"easytasks/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, middleware.GetUserID(c))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, validationMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskCreated, lang),
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	trashed := false
	switch c.Query("isTrashed") {
	case "", "false":
	case "true":
		trashed = true
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	filter := domain.ListTasksFilter{
		Trashed: trashed,
		Stage:   domain.Stage(strings.ToLower(c.Query("stage"))),
		Search:  c.Query("search"),
	}

	tasks, err := h.taskService.List(c.Request.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{Status: true, Tasks: mapper.ToTaskItems(tasks)})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Status: true, Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	// Bind twice over the buffered body: once into the typed request and
	// once into a raw map, so omitted fields stay distinguishable from
	// fields explicitly set to their zero value.
	var req dto.UpdateTaskRequest
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, validationMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskUpdated, lang),
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) TrashTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.Trash(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to trash task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTrashTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskTrashed, lang),
	})
}

// DeleteRestoreTask dispatches on actionType: the bulk actions run
// without an id, the single-task actions require one.
func (h *TaskHandler) DeleteRestoreTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	actionType := domain.TrashAction(c.Query("actionType"))
	idParam := c.Param("id")

	switch actionType {
	case domain.ActionDeleteAll, domain.ActionRestoreAll:
		if idParam != "" {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionType, lang),
			)
			return
		}
		h.bulkDeleteRestore(c, actionType, lang)
	case domain.ActionDelete, domain.ActionRestore:
		taskID, err := strconv.ParseUint(idParam, 10, 64)
		if err != nil || taskID == 0 {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
			)
			return
		}
		h.singleDeleteRestore(c, actionType, taskID, lang)
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionType, lang),
		)
	}
}

func (h *TaskHandler) bulkDeleteRestore(c *gin.Context, action domain.TrashAction, lang string) {
	ownerID := middleware.GetUserID(c)

	var count int64
	var err error
	msgKey := apierrors.MsgTasksDeleted
	failKey := apierrors.MsgFailDeleteTask

	if action == domain.ActionDeleteAll {
		count, err = h.taskService.DeleteAllTrashed(c.Request.Context(), ownerID)
	} else {
		count, err = h.taskService.RestoreAllTrashed(c.Request.Context(), ownerID)
		msgKey = apierrors.MsgTasksRestored
		failKey = apierrors.MsgFailRestoreTask
	}

	if err != nil {
		zap.L().Error("failed bulk trash action", zap.String("action", string(action)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TrashActionResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(msgKey, lang),
		Count:   count,
	})
}

func (h *TaskHandler) singleDeleteRestore(c *gin.Context, action domain.TrashAction, taskID uint64, lang string) {
	var err error
	msgKey := apierrors.MsgTaskDeleted
	failKey := apierrors.MsgFailDeleteTask

	if action == domain.ActionDelete {
		err = h.taskService.Delete(c.Request.Context(), taskID)
	} else {
		err = h.taskService.Restore(c.Request.Context(), taskID)
		msgKey = apierrors.MsgTaskRestored
		failKey = apierrors.MsgFailRestoreTask
	}

	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed trash action",
			zap.String("action", string(action)), zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TrashActionResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(msgKey, lang),
		Count:   1,
	})
}

func (h *TaskHandler) CreateSubTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.CreateSubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgSubTaskTitle, lang),
		)
		return
	}

	input, err := validation.BuildSubTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, validationMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.AddSubTask(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to add subtask", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAddSubTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgSubTaskAdded, lang),
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) PostActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgActivityText, lang),
		)
		return
	}

	input, err := validation.BuildActivityInput(req, middleware.GetUserID(c))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, validationMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.AddActivity(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to post activity", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAddActivity, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Status:  true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgActivityAdded, lang),
		Task:    mapper.ToTaskItem(task),
	})
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}

func validationMsgKey(err error) string {
	switch {
	case errors.Is(err, validation.ErrTitleRequired):
		return apierrors.MsgTitleRequired
	case errors.Is(err, validation.ErrInvalidStage):
		return apierrors.MsgInvalidStage
	case errors.Is(err, validation.ErrInvalidPriority):
		return apierrors.MsgInvalidPriority
	case errors.Is(err, validation.ErrInvalidActivityType):
		return apierrors.MsgInvalidActivityType
	case errors.Is(err, validation.ErrSubTaskTitleRequired):
		return apierrors.MsgSubTaskTitle
	case errors.Is(err, validation.ErrActivityTextRequired):
		return apierrors.MsgActivityText
	default:
		return apierrors.MsgInvalidTaskPayload
	}
}
