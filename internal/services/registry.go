package services

// ServiceContainer holds every service the application wires up.
type ServiceContainer struct {
	PostingService     *PostingService
	ApplicationService *ApplicationService
	ShiftService       *ShiftService
	ProfileService     *ProfileService
}
