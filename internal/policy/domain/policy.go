package domain

// Action names a permission-checked operation on a project or one of its tasks.
type Action string

const (
	ActionProjectView    Action = "project.view"
	ActionProjectUpdate  Action = "project.update"
	ActionProjectDelete  Action = "project.delete"
	ActionProjectStatus  Action = "project.status"
	ActionMemberAdd      Action = "member.add"
	ActionTaskView       Action = "task.view"
	ActionTaskCreate     Action = "task.create"
	ActionTaskUpdate     Action = "task.update"
	ActionTaskStatus     Action = "task.status"
	ActionTaskAssign     Action = "task.assign"
	ActionCommentCreate  Action = "comment.create"
	ActionActivityView   Action = "activity.view"
	ActionActivityCreate Action = "activity.create"
)

// Actions lists every action the role policy must answer for.
var Actions = []Action{
	ActionProjectView, ActionProjectUpdate, ActionProjectDelete, ActionProjectStatus, ActionMemberAdd,
	ActionTaskView, ActionTaskCreate, ActionTaskUpdate, ActionTaskStatus, ActionTaskAssign,
	ActionCommentCreate, ActionActivityView, ActionActivityCreate,
}

func (a Action) String() string { return string(a) }
