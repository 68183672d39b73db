package firestore

const (
	pathSchedules = "schedules"
	pathUsers     = "users"
)
