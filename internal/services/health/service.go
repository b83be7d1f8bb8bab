package health

// Version is the static version string reported by the health endpoint.
const Version = "1.0.0"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the liveness payload.
func (s *Service) Status() map[string]string {
	return map[string]string{
		"status":  "healthy",
		"version": Version,
		"service": "Finergize Recommender API",
	}
}
