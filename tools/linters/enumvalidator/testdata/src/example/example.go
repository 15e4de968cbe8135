package example

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "TODO"
	TaskStatusDone TaskStatus = "DONE"
)

type TaskEventType string

const (
	TaskEventCompleted TaskEventType = "task_completed"
)

type Task struct {
	Key    string
	Status TaskStatus
}

type TaskEvent struct {
	Type TaskEventType
}

func bad() {
	t := &Task{}
	t.Status = "DONE" // want "enum field Status assigned string literal"

	e := TaskEvent{
		Type: "task_done", // want "enum field Type assigned string literal"
	}
	_ = e
}

func good() {
	t := &Task{}
	t.Status = TaskStatusDone // OK: using constant
	t.Key = "PROJ-1"          // OK: not an enum

	e := TaskEvent{Type: TaskEventCompleted}
	_ = e
}

func alsoGood() {
	// OK: Variable, not literal
	status := TaskStatusTodo
	t := &Task{Status: status}
	_ = t
}
