package apierrors

const (
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidAuthPayload  = "invalidAuthPayload"
	MsgInvalidActionType   = "invalidActionType"
	MsgTitleRequired       = "titleRequired"
	MsgInvalidStage        = "invalidStage"
	MsgInvalidPriority     = "invalidPriority"
	MsgInvalidActivityType = "invalidActivityType"
	MsgSubTaskTitle        = "subtaskTitleRequired"
	MsgActivityText        = "activityTextRequired"

	MsgTaskNotFound       = "taskNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgUserExists         = "userAlreadyExists"
	MsgInvalidCredentials = "invalidCredentials"
	MsgMissingToken       = "missingToken"
	MsgInvalidToken       = "invalidToken"

	MsgFailCreateTask  = "failCreateTask"
	MsgFailListTasks   = "failListTasks"
	MsgFailGetTask     = "failGetTask"
	MsgFailUpdateTask  = "failUpdateTask"
	MsgFailTrashTask   = "failTrashTask"
	MsgFailDeleteTask  = "failDeleteTask"
	MsgFailRestoreTask = "failRestoreTask"
	MsgFailAddSubTask  = "failAddSubtask"
	MsgFailAddActivity = "failAddActivity"
	MsgFailDashboard   = "failDashboard"
	MsgFailRegister    = "failRegister"
	MsgFailLogin       = "failLogin"
	MsgFailProfile     = "failProfile"

	MsgTaskCreated    = "taskCreated"
	MsgTaskUpdated    = "taskUpdated"
	MsgTaskTrashed    = "taskTrashed"
	MsgTaskDeleted    = "taskDeleted"
	MsgTaskRestored   = "taskRestored"
	MsgTasksDeleted   = "tasksDeleted"
	MsgTasksRestored  = "tasksRestored"
	MsgSubTaskAdded   = "subtaskAdded"
	MsgActivityAdded  = "activityAdded"
	MsgUserRegistered = "userRegistered"
	MsgLoginSuccess   = "loginSuccess"
)
