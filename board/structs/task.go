package structs

// Task is a reusable task type that can be scheduled.
type Task struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	IconName     string  `json:"icon_name"`
	ColorClasses string  `json:"color_classes"`
	DefaultHours float64 `json:"default_hours"`
}

// TaskBody is the payload for adding or updating a task.
// DefaultHours falls back to the configured default when nil.
type TaskBody struct {
	Name         string   `json:"name" validate:"required,max=50"`
	IconName     string   `json:"icon_name" validate:"required"`
	ColorClasses string   `json:"color_classes" validate:"required"`
	DefaultHours *float64 `json:"default_hours,omitempty"`
}
