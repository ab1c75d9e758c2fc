package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	PostingHandler     *PostingHandler
	ApplicationHandler *ApplicationHandler
	ShiftHandler       *ShiftHandler
	ProfileHandler     *ProfileHandler
	HealthHandler      *HealthHandler
}
