package event_bus

const (
	TaskCreated EventType = "task.created"
	TaskUpdated EventType = "task.updated"
	TaskDeleted EventType = "task.deleted"
)

// TaskMutation is the payload carried by task.* events. It names the
// operation and the affected entity so subscribers can audit mutations
// without reaching back into the task package.
type TaskMutation struct {
	Operation string
	TaskID    string
	OwnerUID  string
}
