package services

// ServiceContainer holds the application services handed to the HTTP layer.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
}
