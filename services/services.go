package services

import (
	"github.com/blogem/canvass-dashboard/repositories"
)

// Services holds all service instances
type Services struct {
	Auth     AuthService
	Voter    VoterService
	Analysis AnalysisService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, opts AnalysisOptions) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User),
		Voter:    NewVoterService(repos.Voter, repos.EditLog),
		Analysis: NewAnalysisService(repos.Voter, repos.EditLog, opts),
	}
}
